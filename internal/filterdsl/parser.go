package filterdsl

import "github.com/ritamzico/searchplan/internal/filterast"

// Parse compiles a textual filter expression into a filterast.Node.
func Parse(input string) (filterast.Node, error) {
	ast, err := filterParser.ParseString("", input)
	if err != nil {
		return nil, SyntaxError{Kind: "InvalidSyntax", Message: err.Error()}
	}
	return convertOr(ast.Or)
}
