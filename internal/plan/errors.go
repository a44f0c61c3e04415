package plan

import "fmt"

// Error is the planner's structural/invariant error: it fails the whole
// plan, unlike a Diagnostic, which degrades a single leaf gracefully.
type Error struct {
	Kind    string
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("plan error (%v): %v", e.Kind, e.Message)
}

// MalformedEmission reports a post-emission check failure: a stray
// "(AND )", "(OR )", "( )", or a NEQ leaf at the start of a nested
// expression.
func MalformedEmission(message string) error {
	return Error{Kind: "MalformedEmission", Message: message}
}

// LimitsExceeded reports a type/tag clause exceeding its configured
// maximum length.
func LimitsExceeded(message string) error {
	return Error{Kind: "LimitsExceeded", Message: message}
}
