package gremlin

import "github.com/ritamzico/searchplan/internal/filterast"

// stepTemplates renders one leaf's traversal step given its qualified
// attribute name and a reference to its bound parameter (e.g. "__bind_0").
// Data, not a switch, for the same exhaustiveness reason as the index
// emitter's template table.
var stepTemplates = map[filterast.Operator]func(qn, bindRef string) string{
	filterast.LT:         func(qn, b string) string { return `.has('` + qn + `', P.lt(` + b + `))` },
	filterast.GT:         func(qn, b string) string { return `.has('` + qn + `', P.gt(` + b + `))` },
	filterast.LTE:        func(qn, b string) string { return `.has('` + qn + `', P.lte(` + b + `))` },
	filterast.GTE:        func(qn, b string) string { return `.has('` + qn + `', P.gte(` + b + `))` },
	filterast.EQ:         func(qn, b string) string { return `.has('` + qn + `', ` + b + `)` },
	filterast.NEQ:        func(qn, b string) string { return `.has('` + qn + `', P.neq(` + b + `))` },
	filterast.IN:         func(qn, b string) string { return `.has('` + qn + `', P.within(` + b + `))` },
	filterast.LIKE:       func(qn, b string) string { return `.has('` + qn + `', TextP.containing(` + b + `))` },
	filterast.CONTAINS:   func(qn, b string) string { return `.has('` + qn + `', TextP.containing(` + b + `))` },
	filterast.STARTSWITH: func(qn, b string) string { return `.has('` + qn + `', TextP.startingWith(` + b + `))` },
	filterast.ENDSWITH:   func(qn, b string) string { return `.has('` + qn + `', TextP.endingWith(` + b + `))` },
}
