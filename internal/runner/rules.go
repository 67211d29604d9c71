package runner

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/agentrig/agentrig/pkg/types"
)

// Decision is the outcome of evaluating a tool invocation against the
// permission rules.
type Decision int

const (
	// DecisionAsk means no rule matched; the caller should prompt.
	DecisionAsk Decision = iota
	// DecisionAllow means an allow rule matched.
	DecisionAllow
	// DecisionDeny means a deny rule matched.
	DecisionDeny
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionDeny:
		return "deny"
	default:
		return "ask"
	}
}

// MatchesRule reports whether a tool invocation matches a permission rule.
// Rules are glob patterns over the invocation string, e.g. "Bash(git diff:*)",
// "Read", or "mcp__*".
func MatchesRule(rule, invocation string) bool {
	if rule == invocation {
		return true
	}
	ok, err := doublestar.Match(rule, invocation)
	return err == nil && ok
}

// Evaluate checks a tool invocation against the permission rules. Deny rules
// take precedence over allow rules; with no match the decision is ask.
func Evaluate(perms *types.PermissionRules, invocation string) Decision {
	if perms == nil {
		return DecisionAsk
	}
	for _, rule := range perms.Deny {
		if MatchesRule(rule, invocation) {
			return DecisionDeny
		}
	}
	for _, rule := range perms.Allow {
		if MatchesRule(rule, invocation) {
			return DecisionAllow
		}
	}
	return DecisionAsk
}
