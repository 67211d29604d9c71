package types

import "encoding/json"

// settingsKnownKeys are the top-level keys the settings schema declares.
// Everything else is preserved verbatim in Extra.
var settingsKnownKeys = []string{
	"model",
	"env",
	"permissions",
	"hooks",
	"enableAllProjectMcpServers",
	"includeCoAuthoredBy",
}

// KnownSettingsKeys returns the declared top-level settings keys.
func KnownSettingsKeys() []string {
	return settingsKnownKeys
}

// Settings represents an agent settings document.
// The record is open: unrecognized top-level keys are kept byte-for-byte
// in Extra so newer configuration versions survive a round trip.
type Settings struct {
	// Model selection (e.g. "claude-sonnet-4")
	Model string `json:"-"`

	// Environment variables injected into the agent process
	Env map[string]string `json:"-"`

	// Tool permission rules
	Permissions *PermissionRules `json:"-"`

	// Lifecycle hooks
	Hooks *HookSettings `json:"-"`

	// Feature toggles
	EnableAllProjectMcpServers *bool `json:"-"`
	IncludeCoAuthoredBy        *bool `json:"-"`

	// Extra holds unrecognized top-level keys, unmodified.
	Extra map[string]json.RawMessage `json:"-"`
}

// PermissionRules holds ordered allow and deny tool rules.
type PermissionRules struct {
	Allow []string `json:"allow,omitempty"`
	Deny  []string `json:"deny,omitempty"`
}

// HookSettings holds lifecycle hook configuration.
// Hook events other than PreToolUse are preserved in Extra.
type HookSettings struct {
	PreToolUse []HookMatcher `json:"-"`

	Extra map[string]json.RawMessage `json:"-"`
}

// HookMatcher pairs a tool matcher with the hooks to run for it.
type HookMatcher struct {
	Matcher string        `json:"matcher"`
	Hooks   []HookCommand `json:"hooks"`
}

// HookCommand describes a single hook invocation.
type HookCommand struct {
	Type    string `json:"type"`
	Command string `json:"command,omitempty"`
}

// UnmarshalJSON decodes a settings document, splitting declared fields from
// passthrough keys.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["model"]; ok {
		if err := json.Unmarshal(v, &s.Model); err != nil {
			return err
		}
	}
	if v, ok := raw["env"]; ok {
		if err := json.Unmarshal(v, &s.Env); err != nil {
			return err
		}
	}
	if v, ok := raw["permissions"]; ok {
		if err := json.Unmarshal(v, &s.Permissions); err != nil {
			return err
		}
	}
	if v, ok := raw["hooks"]; ok {
		if err := json.Unmarshal(v, &s.Hooks); err != nil {
			return err
		}
	}
	if v, ok := raw["enableAllProjectMcpServers"]; ok {
		if err := json.Unmarshal(v, &s.EnableAllProjectMcpServers); err != nil {
			return err
		}
	}
	if v, ok := raw["includeCoAuthoredBy"]; ok {
		if err := json.Unmarshal(v, &s.IncludeCoAuthoredBy); err != nil {
			return err
		}
	}

	for _, k := range settingsKnownKeys {
		delete(raw, k)
	}
	if len(raw) > 0 {
		s.Extra = raw
	}
	return nil
}

// MarshalJSON re-merges declared fields with passthrough keys.
func (s Settings) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s.Extra)+6)
	for k, v := range s.Extra {
		out[k] = v
	}

	set := func(key string, value any) error {
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		out[key] = data
		return nil
	}

	if s.Model != "" {
		if err := set("model", s.Model); err != nil {
			return nil, err
		}
	}
	if s.Env != nil {
		if err := set("env", s.Env); err != nil {
			return nil, err
		}
	}
	if s.Permissions != nil {
		if err := set("permissions", s.Permissions); err != nil {
			return nil, err
		}
	}
	if s.Hooks != nil {
		if err := set("hooks", s.Hooks); err != nil {
			return nil, err
		}
	}
	if s.EnableAllProjectMcpServers != nil {
		if err := set("enableAllProjectMcpServers", s.EnableAllProjectMcpServers); err != nil {
			return nil, err
		}
	}
	if s.IncludeCoAuthoredBy != nil {
		if err := set("includeCoAuthoredBy", s.IncludeCoAuthoredBy); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes hook settings, keeping unrecognized hook events.
func (h *HookSettings) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["PreToolUse"]; ok {
		if err := json.Unmarshal(v, &h.PreToolUse); err != nil {
			return err
		}
		delete(raw, "PreToolUse")
	}
	if len(raw) > 0 {
		h.Extra = raw
	}
	return nil
}

// MarshalJSON re-merges PreToolUse with other hook events.
func (h HookSettings) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(h.Extra)+1)
	for k, v := range h.Extra {
		out[k] = v
	}
	if h.PreToolUse != nil {
		data, err := json.Marshal(h.PreToolUse)
		if err != nil {
			return nil, err
		}
		out["PreToolUse"] = data
	}
	return json.Marshal(out)
}
