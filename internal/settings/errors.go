package settings

// SyntaxError indicates the input text is not well-formed JSON.
// Its message is display-ready: it names the source, carries the decoder's
// own message, and appends any hints derived from the raw text.
type SyntaxError struct {
	// Source labels where the text came from ("settings" for inline input,
	// a file path otherwise).
	Source string
	// Raw is the offending text.
	Raw string
	// Err is the underlying decoder error.
	Err error
}

func (e *SyntaxError) Error() string {
	return formatSyntaxError(e.Source, e.Raw, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ValidationError indicates well-formed JSON that does not match the
// settings shape. It carries every violation found in the document.
type ValidationError struct {
	Source     string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return formatViolations(e.Source, e.Violations)
}

// AmbiguousInputError indicates an input string that is neither valid JSON
// nor a path to an existing file.
type AmbiguousInputError struct {
	Input string
}

func (e *AmbiguousInputError) Error() string {
	return "Settings input is neither valid JSON nor a readable file path: " +
		truncate(e.Input, 120) + "\n" +
		"Provide either an inline JSON document (e.g. '{\"model\": \"claude-sonnet-4\"}')\n" +
		"or the path to an existing settings file."
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
