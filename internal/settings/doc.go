// Package settings validates agent settings documents and produces
// human-actionable diagnostics when they are wrong.
//
// A settings document is a JSON object controlling model selection,
// environment variables, tool permissions, and lifecycle hooks for an
// automated agent run. The record is open: top-level keys the schema does
// not declare are preserved byte-for-byte, so documents written for newer
// versions of the agent pass through untouched.
//
// # Validation
//
// Validate applies the schema to a decoded JSON value and returns every
// violation in one pass rather than stopping at the first, so a single run
// surfaces the complete set of problems:
//
//	var value any
//	json.Unmarshal(data, &value)
//	violations := settings.Validate(value)
//
// Parse combines decoding, validation, and typing:
//
//	s, err := settings.Parse(data, "settings.json")
//
// # Failure taxonomy
//
// Failures split into malformed text (SyntaxError) and well-formed but
// wrong-shaped structure (ValidationError). Both render display-ready,
// multi-line messages: syntax errors carry hints derived from the raw text
// (trailing commas, single quotes, unbalanced braces), schema errors list
// one line per field path and append canonical example snippets for the
// areas users most often get wrong (permissions lists, hooks, env).
// Callers surface these messages verbatim; they are not meant to be parsed.
//
// # Input resolution
//
// ResolveInput accepts a string that is either an inline JSON document or a
// path to a settings file, and decides which:
//
//	s, err := settings.Resolve(`{"model": "claude-sonnet-4"}`)
//	s, err = settings.Resolve("/path/to/settings.json")
//
// Inline documents that decode but fail validation are terminal failures —
// they are never reinterpreted as file paths. See ResolveInput for the full
// fallback rules. The file read goes through the FileReader interface so
// the state machine can be tested without a real filesystem.
//
// # Strict and lenient modes
//
// ValidateExisting checks settings already resident on disk. Syntax errors
// are always fatal. Schema violations are fatal under strict mode; lenient
// mode logs the same diagnostic as a warning and returns the original
// parsed value unchanged for backward compatibility.
//
// All functions are reentrant and touch no shared mutable state; calls for
// unrelated inputs are safe to run concurrently.
package settings
