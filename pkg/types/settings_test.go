package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsUnmarshalDeclaredFields(t *testing.T) {
	doc := `{
		"model": "claude-sonnet-4",
		"env": {"DEBUG": "true", "NODE_ENV": "production"},
		"permissions": {"allow": ["Bash(git:*)", "Read"], "deny": ["WebFetch"]},
		"hooks": {
			"PreToolUse": [
				{"matcher": "Bash", "hooks": [{"type": "command", "command": "echo hi"}]}
			]
		},
		"enableAllProjectMcpServers": true,
		"includeCoAuthoredBy": false
	}`

	var s Settings
	require.NoError(t, json.Unmarshal([]byte(doc), &s))

	assert.Equal(t, "claude-sonnet-4", s.Model)
	assert.Equal(t, map[string]string{"DEBUG": "true", "NODE_ENV": "production"}, s.Env)

	require.NotNil(t, s.Permissions)
	assert.Equal(t, []string{"Bash(git:*)", "Read"}, s.Permissions.Allow)
	assert.Equal(t, []string{"WebFetch"}, s.Permissions.Deny)

	require.NotNil(t, s.Hooks)
	require.Len(t, s.Hooks.PreToolUse, 1)
	assert.Equal(t, "Bash", s.Hooks.PreToolUse[0].Matcher)
	require.Len(t, s.Hooks.PreToolUse[0].Hooks, 1)
	assert.Equal(t, "command", s.Hooks.PreToolUse[0].Hooks[0].Type)
	assert.Equal(t, "echo hi", s.Hooks.PreToolUse[0].Hooks[0].Command)

	require.NotNil(t, s.EnableAllProjectMcpServers)
	assert.True(t, *s.EnableAllProjectMcpServers)
	require.NotNil(t, s.IncludeCoAuthoredBy)
	assert.False(t, *s.IncludeCoAuthoredBy)

	assert.Empty(t, s.Extra)
}

func TestSettingsPassthroughKeysPreserved(t *testing.T) {
	doc := `{
		"model": "claude-sonnet-4",
		"apiKeyHelper": "/bin/get-key",
		"statusLine": {"type": "command", "command": "my-status"},
		"futureListField": [1, 2, 3]
	}`

	var s Settings
	require.NoError(t, json.Unmarshal([]byte(doc), &s))

	// Unknown keys land in Extra byte-for-byte
	require.Len(t, s.Extra, 3)
	assert.JSONEq(t, `"/bin/get-key"`, string(s.Extra["apiKeyHelper"]))
	assert.JSONEq(t, `{"type": "command", "command": "my-status"}`, string(s.Extra["statusLine"]))
	assert.Equal(t, `[1, 2, 3]`, string(s.Extra["futureListField"]))
}

func TestSettingsRoundTrip(t *testing.T) {
	doc := `{
		"model": "claude-sonnet-4",
		"env": {"A": "1"},
		"permissions": {"allow": ["Read"]},
		"hooks": {"PreToolUse": [{"matcher": "Bash", "hooks": [{"type": "command"}]}]},
		"includeCoAuthoredBy": true,
		"someFutureKey": {"nested": [true, null, "x"]}
	}`

	var s Settings
	require.NoError(t, json.Unmarshal([]byte(doc), &s))

	out, err := json.Marshal(s)
	require.NoError(t, err)

	var reparsed Settings
	require.NoError(t, json.Unmarshal(out, &reparsed))

	assert.Equal(t, s.Model, reparsed.Model)
	assert.Equal(t, s.Env, reparsed.Env)
	assert.Equal(t, s.Permissions, reparsed.Permissions)
	assert.Equal(t, s.Hooks, reparsed.Hooks)
	assert.Equal(t, s.IncludeCoAuthoredBy, reparsed.IncludeCoAuthoredBy)

	// The residual key survives both directions unchanged
	assert.JSONEq(t, `{"nested": [true, null, "x"]}`, string(reparsed.Extra["someFutureKey"]))
}

func TestHookSettingsPreserveOtherEvents(t *testing.T) {
	doc := `{
		"hooks": {
			"PreToolUse": [{"matcher": "*", "hooks": [{"type": "command", "command": "x"}]}],
			"PostToolUse": [{"matcher": "Edit", "hooks": [{"type": "command", "command": "fmt"}]}]
		}
	}`

	var s Settings
	require.NoError(t, json.Unmarshal([]byte(doc), &s))
	require.NotNil(t, s.Hooks)

	// PostToolUse is not declared but must survive a round trip
	require.Contains(t, s.Hooks.Extra, "PostToolUse")

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), "PostToolUse")
	assert.Contains(t, string(out), "PreToolUse")
}

func TestKnownSettingsKeys(t *testing.T) {
	keys := KnownSettingsKeys()
	assert.Contains(t, keys, "model")
	assert.Contains(t, keys, "env")
	assert.Contains(t, keys, "permissions")
	assert.Contains(t, keys, "hooks")
}
