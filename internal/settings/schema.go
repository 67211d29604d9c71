package settings

import (
	"fmt"
	"sort"
)

// Violation is a single field-level problem found in a settings document.
type Violation struct {
	// Path is the dot-joined location of the field ("" means the root).
	Path string
	// Message describes the problem.
	Message string
	// Expected and Actual carry JSON type names for type mismatches,
	// empty otherwise.
	Expected string
	Actual   string
}

// jsonTypeName reports the JSON type of a decoded value.
func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return "unknown"
}

func mustBe(typeName string) string {
	switch typeName {
	case "array", "object":
		return "must be an " + typeName
	default:
		return "must be a " + typeName
	}
}

// collector aggregates violations so a single pass reports every problem.
type collector struct {
	violations []Violation
}

func (c *collector) add(path, msg string) {
	c.violations = append(c.violations, Violation{Path: path, Message: msg})
}

func (c *collector) mismatch(path, expected string, got any) {
	c.violations = append(c.violations, Violation{
		Path:     path,
		Message:  mustBe(expected),
		Expected: expected,
		Actual:   jsonTypeName(got),
	})
}

// Validate applies the settings schema to a decoded JSON value and returns
// every violation found. It never panics on structurally wrong input, and it
// does not short-circuit: all fields are checked independently. Unrecognized
// top-level keys are not violations.
func Validate(value any) []Violation {
	c := &collector{}

	obj, ok := value.(map[string]any)
	if !ok {
		c.mismatch("", "object", value)
		return c.violations
	}

	if v, present := obj["model"]; present {
		validateNonEmptyString(c, "model", v)
	}
	if v, present := obj["env"]; present {
		validateEnv(c, v)
	}
	if v, present := obj["permissions"]; present {
		validatePermissions(c, v)
	}
	if v, present := obj["hooks"]; present {
		validateHooks(c, v)
	}
	if v, present := obj["enableAllProjectMcpServers"]; present {
		validateBool(c, "enableAllProjectMcpServers", v)
	}
	if v, present := obj["includeCoAuthoredBy"]; present {
		validateBool(c, "includeCoAuthoredBy", v)
	}

	return c.violations
}

func validateNonEmptyString(c *collector, path string, v any) {
	s, ok := v.(string)
	if !ok {
		c.mismatch(path, "string", v)
		return
	}
	if s == "" {
		c.add(path, "must be a non-empty string")
	}
}

func validateBool(c *collector, path string, v any) {
	if _, ok := v.(bool); !ok {
		c.mismatch(path, "boolean", v)
	}
}

func validateEnv(c *collector, v any) {
	m, ok := v.(map[string]any)
	if !ok {
		c.mismatch("env", "object", v)
		return
	}
	// Deterministic ordering for stable diagnostics.
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := m[k].(string); !ok {
			c.mismatch("env."+k, "string", m[k])
		}
	}
}

func validatePermissions(c *collector, v any) {
	m, ok := v.(map[string]any)
	if !ok {
		c.mismatch("permissions", "object", v)
		return
	}
	if allow, present := m["allow"]; present {
		validateRuleList(c, "permissions.allow", allow)
	}
	if deny, present := m["deny"]; present {
		validateRuleList(c, "permissions.deny", deny)
	}
}

func validateRuleList(c *collector, path string, v any) {
	arr, ok := v.([]any)
	if !ok {
		c.mismatch(path, "array", v)
		return
	}
	for i, el := range arr {
		validateNonEmptyString(c, fmt.Sprintf("%s.%d", path, i), el)
	}
}

func validateHooks(c *collector, v any) {
	m, ok := v.(map[string]any)
	if !ok {
		c.mismatch("hooks", "object", v)
		return
	}
	pre, present := m["PreToolUse"]
	if !present {
		return
	}
	arr, ok := pre.([]any)
	if !ok {
		c.mismatch("hooks.PreToolUse", "array", pre)
		return
	}
	for i, el := range arr {
		validateHookMatcher(c, fmt.Sprintf("hooks.PreToolUse.%d", i), el)
	}
}

func validateHookMatcher(c *collector, path string, v any) {
	m, ok := v.(map[string]any)
	if !ok {
		c.mismatch(path, "object", v)
		return
	}

	if matcher, present := m["matcher"]; present {
		validateNonEmptyString(c, path+".matcher", matcher)
	} else {
		c.add(path+".matcher", "is required")
	}

	hooks, present := m["hooks"]
	if !present {
		c.add(path+".hooks", "is required")
		return
	}
	arr, ok := hooks.([]any)
	if !ok {
		c.mismatch(path+".hooks", "array", hooks)
		return
	}
	if len(arr) == 0 {
		c.add(path+".hooks", "must not be empty")
	}
	for i, el := range arr {
		validateHookCommand(c, fmt.Sprintf("%s.hooks.%d", path, i), el)
	}
}

func validateHookCommand(c *collector, path string, v any) {
	m, ok := v.(map[string]any)
	if !ok {
		c.mismatch(path, "object", v)
		return
	}

	if typ, present := m["type"]; present {
		validateNonEmptyString(c, path+".type", typ)
	} else {
		c.add(path+".type", "is required")
	}

	if cmd, present := m["command"]; present {
		validateNonEmptyString(c, path+".command", cmd)
	}
}
