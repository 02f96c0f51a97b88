package lint

// Runner provides access to the document under check during rule execution.
//
// A Runner is created per check call and discarded afterwards; rules must
// not keep references to it.
type Runner interface {
	// Text returns the full document content.
	Text() string

	// LanguageTag returns the classifier of the document (e.g., "python").
	LanguageTag() string

	// Lines returns the document split on "\n". A trailing newline yields
	// an empty last element, which counts as a line. The slice is computed
	// once per check and shared between rules; callers must not modify it.
	Lines() []string

	// EmitFinding reports a violation from the rule.
	//
	// Example:
	//
	//	if len(runner.Lines()) > max {
	//	    runner.EmitFinding(rule, "file too long", lint.Range{})
	//	}
	EmitFinding(rule Rule, message string, findingRange Range) error
}
