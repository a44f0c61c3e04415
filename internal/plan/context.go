// Package plan holds the planning session (the Search Context), the
// combined attribute classifier / pushdown analyzer, and the per-leaf
// diagnostics side channel described in the design's §4.1/§4.2/§5/§7.
package plan

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ritamzico/searchplan/internal/config"
	"github.com/ritamzico/searchplan/internal/indexcatalog"
	"github.com/ritamzico/searchplan/internal/schema"
)

// Diagnostic is a per-leaf data error that degrades gracefully: schema
// resolution failure, an operator unsupported by an emitter, or a value
// the Gremlin emitter cannot normalize. Structural failures
// (MalformedEmission / LimitsExceeded) are returned as Error instead and
// are not recorded here.
type Diagnostic struct {
	SessionID     uuid.UUID
	Kind          string
	AttributeName string
	Message       string
}

// orderedSet preserves first-reference insertion order while rejecting
// duplicates, matching "all ordered by insertion for deterministic
// emission" in the design.
type orderedSet struct {
	order []string
	seen  map[string]struct{}
}

func newOrderedSet() orderedSet {
	return orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(name string) {
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.order = append(s.order, name)
}

func (s *orderedSet) has(name string) bool {
	_, ok := s.seen[name]
	return ok
}

func (s orderedSet) values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// SearchContext is the planning session: it holds the schema and index
// catalog ports, the resolved root type, and accumulates the side outputs
// the classifier produces. It is owned by one planning session and must
// not be shared across concurrent requests.
type SearchContext struct {
	SessionID    uuid.UUID
	RootType     string
	Schema       schema.Port
	IndexCatalog indexcatalog.Port
	Limits       config.Limits
	Logger       *logrus.Logger

	entityAttributes orderedSet
	indexFiltered    orderedSet
	graphFiltered    orderedSet
	allAttributes    orderedSet
	diagnostics      []Diagnostic
}

// New constructs a SearchContext for one planning session.
func New(rootType string, sp schema.Port, ic indexcatalog.Port, limits config.Limits) *SearchContext {
	return &SearchContext{
		SessionID:        uuid.New(),
		RootType:         rootType,
		Schema:           sp,
		IndexCatalog:     ic,
		Limits:           limits,
		Logger:           logrus.StandardLogger(),
		entityAttributes: newOrderedSet(),
		indexFiltered:    newOrderedSet(),
		graphFiltered:    newOrderedSet(),
		allAttributes:    newOrderedSet(),
	}
}

// EntityAttributes returns the attributes referenced that belong to the
// entity (non-classification) root type, in first-reference order.
func (c *SearchContext) EntityAttributes() []string { return c.entityAttributes.values() }

// IndexFiltered returns the attributes resolved to a qualified name
// present in the index catalog, in first-reference order.
func (c *SearchContext) IndexFiltered() []string { return c.indexFiltered.values() }

// GraphFiltered returns the attributes referenced but not indexed, in
// first-reference order.
func (c *SearchContext) GraphFiltered() []string { return c.graphFiltered.values() }

// AllAttributes returns the union of IndexFiltered and GraphFiltered, in
// first-reference order.
func (c *SearchContext) AllAttributes() []string { return c.allAttributes.values() }

// IsIndexFiltered reports whether attrName was classified as index-
// eligible during this session.
func (c *SearchContext) IsIndexFiltered(attrName string) bool { return c.indexFiltered.has(attrName) }

// Diagnostics returns the accumulated per-leaf diagnostics for this
// session, in emission order.
func (c *SearchContext) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}

// Diagnose records a per-leaf diagnostic on behalf of an emitter package
// (index, graph, Gremlin) for a failure that degrades gracefully rather
// than failing the whole plan — e.g. an operator the emitter does not
// support.
func (c *SearchContext) Diagnose(kind, attrName, message string) {
	c.warn(kind, attrName, message)
}

func (c *SearchContext) warn(kind, attrName, message string) {
	d := Diagnostic{SessionID: c.SessionID, Kind: kind, AttributeName: attrName, Message: message}
	c.diagnostics = append(c.diagnostics, d)
	c.Logger.WithFields(logrus.Fields{
		"session":   c.SessionID,
		"kind":      kind,
		"attribute": attrName,
	}).Warn(message)
}

func (c *SearchContext) recordLeaf(attrName string, indexed bool) {
	c.allAttributes.add(attrName)
	if indexed {
		c.indexFiltered.add(attrName)
	} else {
		c.graphFiltered.add(attrName)
	}
	if c.Schema.IsEntityType(c.RootType) {
		c.entityAttributes.add(attrName)
	}
}
