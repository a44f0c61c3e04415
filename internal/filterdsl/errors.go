package filterdsl

import "fmt"

// SyntaxError is raised for malformed input or an unrecognized operator
// token, mirroring the teacher's SyntaxError{Kind, Message} shape.
type SyntaxError struct {
	Kind    string
	Message string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("syntax error (%v): %v", e.Kind, e.Message)
}
