package settings

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tidwall/jsonc"

	"github.com/agentrig/agentrig/internal/logging"
	"github.com/agentrig/agentrig/pkg/types"
)

// Parse decodes and validates a settings document. The returned Settings is
// fully typed, with unrecognized top-level keys preserved in Extra.
//
// A decode failure yields a SyntaxError; a shape failure yields a
// ValidationError carrying every violation found. Both render as
// self-contained display messages.
func Parse(data []byte, source string) (*types.Settings, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, &SyntaxError{Source: source, Raw: string(data), Err: err}
	}

	if violations := Validate(value); len(violations) > 0 {
		return nil, &ValidationError{Source: source, Violations: violations}
	}

	var s types.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding settings from %s: %w", source, err)
	}

	hintNearMisses(&s, source)
	return &s, nil
}

// ValidateExisting validates settings already resident on disk.
//
// Syntax errors are always fatal: an unparsable file cannot be used at all.
// Schema violations are fatal only when strict is set; otherwise the full
// diagnostic is logged as a warning and the original untyped parsed value is
// returned unchanged, so configurations predating schema tightening keep
// working. The returned Settings is nil in that downgraded case.
func ValidateExisting(data []byte, source string, strict bool) (any, *types.Settings, error) {
	data = normalizeJSONC(data, source)

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, nil, &SyntaxError{Source: source, Raw: string(data), Err: err}
	}

	if violations := Validate(value); len(violations) > 0 {
		verr := &ValidationError{Source: source, Violations: violations}
		if strict {
			return nil, nil, verr
		}
		logging.Warn().Str("source", source).Msg(verr.Error())
		return value, nil, nil
	}

	var s types.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, nil, fmt.Errorf("decoding settings from %s: %w", source, err)
	}

	hintNearMisses(&s, source)
	return value, &s, nil
}

// normalizeJSONC strips comments and trailing commas from .jsonc files
// before decoding. Plain JSON sources are left untouched so decoder errors
// refer to the bytes the user actually wrote.
func normalizeJSONC(data []byte, source string) []byte {
	if strings.HasSuffix(source, ".jsonc") {
		return jsonc.ToJSON(data)
	}
	return data
}

// hintNearMisses logs a notice for passthrough keys that look like typos of
// declared keys. Never a violation: the keys stay in Extra untouched.
func hintNearMisses(s *types.Settings, source string) {
	for key := range s.Extra {
		for _, known := range types.KnownSettingsKeys() {
			if key == known {
				continue
			}
			if levenshtein.ComputeDistance(strings.ToLower(key), strings.ToLower(known)) <= 2 {
				logging.Warn().
					Str("source", source).
					Str("key", key).
					Str("didYouMean", known).
					Msg("unknown settings key resembles a declared key")
				break
			}
		}
	}
}
