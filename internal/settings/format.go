package settings

import (
	"fmt"
	"strings"
)

// DocsURL points at the settings reference appended to every schema diagnostic.
const DocsURL = "https://agentrig.dev/docs/settings"

// Canonical example snippets shown for frequently-misconfigured areas.
const (
	examplePermissions = `    "permissions": {
      "allow": ["Bash(git diff:*)", "Read"],
      "deny": ["WebFetch"]
    }`
	exampleHooks = `    "hooks": {
      "PreToolUse": [
        {
          "matcher": "Bash",
          "hooks": [{"type": "command", "command": "echo about-to-run"}]
        }
      ]
    }`
	exampleEnv = `    "env": {
      "NODE_ENV": "production",
      "DEBUG": "true"
    }`
)

// formatSyntaxError builds the display message for malformed JSON. A fixed
// set of heuristics runs against both the decoder message and the raw text;
// every hint that fires is appended, so a single message can carry several.
func formatSyntaxError(source, raw string, err error) string {
	msg := err.Error()
	lower := strings.ToLower(msg)

	var hints []string

	trailingComma := strings.Contains(raw, ",]") || strings.Contains(raw, ",}") ||
		strings.Contains(lower, "comma")
	if trailingComma {
		hints = append(hints, "Remove the trailing comma before the closing brace or bracket.")
	}

	// Go's decoder reports unquoted keys as an unexpected character while
	// looking for an object key. A trailing comma in an object trips the
	// same message, so only hint about quoting when no comma pattern fired.
	if strings.Contains(msg, "looking for beginning of object key string") && !trailingComma {
		hints = append(hints, "Property names must be wrapped in double quotes.")
	}

	if strings.Contains(lower, "unterminated") {
		hints = append(hints, "Check that every string has matching opening and closing quotes.")
	}

	if strings.Contains(lower, "unexpected end") {
		hints = append(hints, "Check for unbalanced braces or brackets.")
	}

	if strings.Contains(raw, "'") || strings.Contains(msg, `'\''`) {
		hints = append(hints, "Use double quotes instead of single quotes.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s JSON syntax error: %s", source, msg)
	for _, h := range hints {
		b.WriteString("\n  Hint: ")
		b.WriteString(h)
	}
	return b.String()
}

// formatViolations builds the display message for a well-formed document
// that does not match the settings shape. Violations are listed one per
// field path, followed by example snippets for recognized problem areas
// (each area at most once) and a pointer to the reference docs.
func formatViolations(source string, violations []Violation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Invalid settings in %s:\n", source)

	seen := make(map[string]bool)
	var needPermissions, needHooks, needEnv bool
	for _, v := range violations {
		path := v.Path
		if path == "" {
			path = "(root)"
		}
		if seen[path] {
			continue
		}
		seen[path] = true

		fmt.Fprintf(&b, "  \u2022 %s: %s", path, v.Message)
		if v.Expected != "" {
			fmt.Fprintf(&b, " (expected %s, got %s)", v.Expected, v.Actual)
		}
		b.WriteString("\n")

		switch {
		case strings.HasPrefix(v.Path, "permissions.allow") || strings.HasPrefix(v.Path, "permissions.deny"):
			needPermissions = true
		case strings.HasPrefix(v.Path, "hooks"):
			needHooks = true
		case v.Path == "env" || strings.HasPrefix(v.Path, "env."):
			needEnv = true
		}
	}

	if needPermissions {
		b.WriteString("\n  Example:\n")
		b.WriteString(examplePermissions)
		b.WriteString("\n")
	}
	if needHooks {
		b.WriteString("\n  Example:\n")
		b.WriteString(exampleHooks)
		b.WriteString("\n")
	}
	if needEnv {
		b.WriteString("\n  Example:\n")
		b.WriteString(exampleEnv)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nSee %s for the settings reference.", DocsURL)
	return b.String()
}
