// Package schema is the abstract view of entity and classification types
// the planner consumes: the Schema Port of the design.
package schema

import "fmt"

// ValueType is the normalized value type of an attribute.
type ValueType int

const (
	StringType ValueType = iota
	NumberType
	BooleanType
	DateType
)

// Port qualifies attribute names, resolves their value types, and
// enumerates subtype closures. Implementations are read-only collaborators
// borrowed for the duration of a planning session; they are assumed to be
// immutable snapshots.
type Port interface {
	// Qualify resolves attrName on typeName to its fully-qualified form.
	// The second return is false when the attribute is unknown.
	Qualify(typeName, attrName string) (qualifiedName string, ok bool)

	// IsEntityType reports whether typeName is an entity (not a
	// classification) type.
	IsEntityType(typeName string) bool

	// SubtypeClosure returns the pre-rendered "typeName and all its
	// subtypes" clause text, e.g. "(Table OR View)".
	SubtypeClosure(typeName string) string

	// AttributeValueType resolves the normalized value type of an
	// attribute. The second return is false when the attribute is unknown.
	AttributeValueType(typeName, attrName string) (ValueType, bool)

	// Normalize converts a raw string value into its canonical
	// representation for vt. Used only by the Gremlin emitter.
	Normalize(vt ValueType, raw string) (string, error)
}

// StaticPort is a fixed, in-memory Port snapshot suitable for tests, demos,
// and any caller that already has its schema loaded in memory.
type StaticPort struct {
	// EntityTypes marks a type name as an entity type. Types absent from
	// this set are treated as classification types.
	EntityTypes map[string]bool

	// Attributes maps typeName -> attrName -> qualifiedName. A lookup that
	// misses on typeName falls back to the "Asset" base type, mirroring
	// how common entity attributes (name, owner, state, ...) are declared
	// once on a shared supertype.
	Attributes map[string]map[string]string

	// ValueTypes maps a qualifiedName to its normalized ValueType.
	ValueTypes map[string]ValueType

	// Subtypes maps typeName -> pre-rendered subtype-closure clause text.
	Subtypes map[string]string
}

// NewStaticPort builds an empty StaticPort ready for its maps to be
// populated by the caller.
func NewStaticPort() *StaticPort {
	return &StaticPort{
		EntityTypes: make(map[string]bool),
		Attributes:  make(map[string]map[string]string),
		ValueTypes:  make(map[string]ValueType),
		Subtypes:    make(map[string]string),
	}
}

const baseEntityType = "Asset"

func (p *StaticPort) Qualify(typeName, attrName string) (string, bool) {
	if byAttr, ok := p.Attributes[typeName]; ok {
		if qn, ok := byAttr[attrName]; ok {
			return qn, true
		}
	}
	if byAttr, ok := p.Attributes[baseEntityType]; ok {
		if qn, ok := byAttr[attrName]; ok {
			return qn, true
		}
	}
	return "", false
}

func (p *StaticPort) IsEntityType(typeName string) bool {
	return p.EntityTypes[typeName]
}

func (p *StaticPort) SubtypeClosure(typeName string) string {
	if clause, ok := p.Subtypes[typeName]; ok {
		return clause
	}
	return fmt.Sprintf("(%s)", typeName)
}

func (p *StaticPort) AttributeValueType(typeName, attrName string) (ValueType, bool) {
	qn, ok := p.Qualify(typeName, attrName)
	if !ok {
		return 0, false
	}
	vt, ok := p.ValueTypes[qn]
	return vt, ok
}

func (p *StaticPort) Normalize(vt ValueType, raw string) (string, error) {
	if vt != DateType {
		return raw, nil
	}
	return normalizeDate(raw)
}
