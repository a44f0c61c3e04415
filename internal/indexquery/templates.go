package indexquery

import "github.com/ritamzico/searchplan/internal/filterast"

// template renders one leaf's value portion, given the leaf's qualified
// name and escaped value, into the engine's Lucene-like syntax. The table
// is data, not a switch, so it can be checked for exhaustiveness against
// filterast's closed Operator enum.
//
// LIKE is treated as a parenthesized index term, matching the engine's
// own wildcard-free substring search; it is documented here rather than
// silently aliased to any one SQL-LIKE or regex interpretation (see the
// graph/Gremlin emitters, which instead treat LIKE as a regex fragment —
// the two backends are not required to agree on LIKE's exact semantics,
// only to each document their own).
var templates = map[filterast.Operator]func(qn, v string) string{
	filterast.LT:         func(qn, v string) string { return `v."` + qn + `": [* TO ` + v + `}` },
	filterast.GT:         func(qn, v string) string { return `v."` + qn + `": {` + v + ` TO *]` },
	filterast.LTE:        func(qn, v string) string { return `v."` + qn + `": [* TO ` + v + `]` },
	filterast.GTE:        func(qn, v string) string { return `v."` + qn + `": [` + v + ` TO *]` },
	filterast.EQ:         func(qn, v string) string { return `v."` + qn + `": ` + v },
	filterast.NEQ:        func(qn, v string) string { return `-v."` + qn + `": ` + v },
	filterast.IN:         func(qn, v string) string { return `v."` + qn + `": (` + v + `)` },
	filterast.LIKE:       func(qn, v string) string { return `v."` + qn + `": (` + v + `)` },
	filterast.STARTSWITH: func(qn, v string) string { return `v."` + qn + `": (` + v + `*)` },
	filterast.ENDSWITH:   func(qn, v string) string { return `v."` + qn + `": (*` + v + `)` },
	filterast.CONTAINS:   func(qn, v string) string { return `v."` + qn + `": (*` + v + `*)` },
}
