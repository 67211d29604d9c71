package settings

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader is an in-memory FileReader recording every read attempt.
type fakeReader struct {
	files map[string][]byte
	errs  map[string]error
	reads []string
}

func (f *fakeReader) ReadFile(path string) ([]byte, error) {
	f.reads = append(f.reads, path)
	if err, ok := f.errs[path]; ok {
		return nil, err
	}
	if data, ok := f.files[path]; ok {
		return data, nil
	}
	return nil, fs.ErrNotExist
}

func TestResolveInlineValid(t *testing.T) {
	fr := &fakeReader{}
	s, err := ResolveInput(`{"model":"claude-opus","env":{"DEBUG":"true"}}`, fr)
	require.NoError(t, err)

	assert.Equal(t, "claude-opus", s.Model)
	assert.Equal(t, map[string]string{"DEBUG": "true"}, s.Env)
	assert.Empty(t, fr.reads, "valid inline JSON must not touch the filesystem")
}

func TestResolveInlineTrimsWhitespace(t *testing.T) {
	fr := &fakeReader{}
	s, err := ResolveInput("  \n {\"model\": \"claude-sonnet-4\"} \t ", fr)
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4", s.Model)
}

func TestResolveInlineInvalidShapeNeverFallsBackToFile(t *testing.T) {
	// The input is also a plausible file path, but well-formed JSON with the
	// wrong shape must fail as a schema violation, not become "file not found".
	fr := &fakeReader{files: map[string][]byte{
		`{"permissions":{"allow":"not-array"}}`: []byte(`{}`),
	}}

	_, err := ResolveInput(`{"permissions":{"allow":"not-array"}}`, fr)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, InlineSource, verr.Source)
	assert.Empty(t, fr.reads, "inline schema violations are terminal")

	msg := err.Error()
	assert.Contains(t, msg, "permissions.allow")
	assert.Contains(t, msg, "expected array, got string")
	assert.Contains(t, msg, `"allow": ["Bash(git diff:*)", "Read"]`)
}

func TestResolveFileValid(t *testing.T) {
	fr := &fakeReader{files: map[string][]byte{
		"/etc/agent/settings.json": []byte(`{"model":"claude-sonnet-4"}`),
	}}

	s, err := ResolveInput("/etc/agent/settings.json", fr)
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4", s.Model)
	assert.Equal(t, []string{"/etc/agent/settings.json"}, fr.reads)
}

func TestResolveFileSchemaViolationNamesFile(t *testing.T) {
	fr := &fakeReader{files: map[string][]byte{
		"settings.json": []byte(`{"model": 1}`),
	}}

	_, err := ResolveInput("settings.json", fr)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "settings.json", verr.Source)
}

func TestResolveFileSyntaxErrorNamesFile(t *testing.T) {
	fr := &fakeReader{files: map[string][]byte{
		"settings.json": []byte(`{"model":`),
	}}

	_, err := ResolveInput("settings.json", fr)

	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "settings.json", serr.Source)
	assert.Contains(t, err.Error(), "settings.json JSON syntax error")
}

func TestResolveJSONCFile(t *testing.T) {
	fr := &fakeReader{files: map[string][]byte{
		"settings.jsonc": []byte("{\n  // model choice\n  \"model\": \"claude-sonnet-4\"\n}\n"),
	}}

	s, err := ResolveInput("settings.jsonc", fr)
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4", s.Model)
}

func TestResolveNotFoundLooksLikeJSON(t *testing.T) {
	// Malformed but clearly intended as inline JSON: surface the original
	// syntax error, not a confusing file error.
	fr := &fakeReader{}
	_, err := ResolveInput(`{"model":"test",}`, fr)

	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, InlineSource, serr.Source)
	assert.Contains(t, err.Error(), "Remove the trailing comma")
}

func TestResolveNotFoundLooksLikeArrayJSON(t *testing.T) {
	fr := &fakeReader{}
	_, err := ResolveInput(`["Read",]`, fr)

	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, InlineSource, serr.Source)
}

func TestResolveNotFoundAmbiguous(t *testing.T) {
	fr := &fakeReader{}
	_, err := ResolveInput("no/such/settings.json", fr)

	var aerr *AmbiguousInputError
	require.ErrorAs(t, err, &aerr)
	assert.Contains(t, err.Error(), "neither valid JSON nor a readable file path")
}

func TestResolveOtherReadErrorsPropagate(t *testing.T) {
	permErr := fs.ErrPermission
	fr := &fakeReader{errs: map[string]error{
		"secret.json": permErr,
	}}

	_, err := ResolveInput("secret.json", fr)
	require.Error(t, err)

	// Not reclassified into the syntax or ambiguous taxonomy
	assert.True(t, errors.Is(err, permErr))
	var serr *SyntaxError
	assert.False(t, errors.As(err, &serr))
	var aerr *AmbiguousInputError
	assert.False(t, errors.As(err, &aerr))
}

func TestResolveEmptyInputIsAmbiguous(t *testing.T) {
	fr := &fakeReader{}
	_, err := ResolveInput("   ", fr)

	var aerr *AmbiguousInputError
	require.ErrorAs(t, err, &aerr)
}
