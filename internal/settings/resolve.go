package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/agentrig/agentrig/pkg/types"
)

// InlineSource labels diagnostics for settings passed as literal JSON.
const InlineSource = "settings"

// FileReader abstracts the single filesystem read the resolver performs, so
// the resolution logic is testable without touching disk.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// OSFileReader reads from the real filesystem.
type OSFileReader struct{}

func (OSFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Resolve interprets a raw input string as either inline JSON or a settings
// file path, using the real filesystem.
func Resolve(raw string) (*types.Settings, error) {
	return ResolveInput(raw, OSFileReader{})
}

// ResolveInput decides whether raw is an inline settings document or a file
// path, and validates whichever it turns out to be.
//
// The input is tried as inline JSON first. If it decodes but fails schema
// validation, that failure is terminal: a well-formed document with the
// wrong shape is never reinterpreted as a file path, since turning a real
// config mistake into "file not found" would point the user at the wrong
// problem. Only a JSON syntax error moves resolution on to the file branch.
//
// On the file branch, a missing file is reclassified based on the input's
// first character: text starting with '{' or '[' was clearly meant as
// inline JSON, so the original syntax error is surfaced; anything else gets
// the ambiguous-input diagnostic. Other read failures (permissions, I/O)
// propagate unchanged.
func ResolveInput(raw string, fr FileReader) (*types.Settings, error) {
	trimmed := strings.TrimSpace(raw)

	var value any
	synErr := json.Unmarshal([]byte(trimmed), &value)
	if synErr == nil {
		return Parse([]byte(trimmed), InlineSource)
	}

	data, readErr := fr.ReadFile(trimmed)
	if readErr == nil {
		return Parse(normalizeJSONC(data, trimmed), trimmed)
	}

	if errors.Is(readErr, fs.ErrNotExist) {
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			return nil, &SyntaxError{Source: InlineSource, Raw: trimmed, Err: synErr}
		}
		return nil, &AmbiguousInputError{Input: trimmed}
	}

	return nil, fmt.Errorf("reading settings file %s: %w", trimmed, readErr)
}
