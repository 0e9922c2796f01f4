package model

import (
	"encoding/json"
	"maps"
	"strings"

	"github.com/jsamuelsen11/blog-domain/internal/domain"
)

// Entity is a validated set of field values backed by a Schema. Concrete
// entity types embed *Entity and layer their own business rules on top.
type Entity struct {
	schema *Schema
	values map[string]any
}

// New constructs an entity of the given schema from attrs, applied in order:
//
//  1. every declared field starts as nil, then takes its default when the
//     default is non-empty;
//  2. an undeclared name fails with a construction error;
//  3. a non-nullable field rejects nil and values of another type with a
//     type error (nullable fields are not type-checked);
//  4. a value outside the field's choices fails with a construction error;
//  5. once all attrs are applied, an empty required field fails with a
//     value error.
func New(schema *Schema, attrs ...Attr) (*Entity, error) {
	e := &Entity{
		schema: schema,
		values: make(map[string]any, len(schema.fields)),
	}

	for _, f := range schema.fields {
		e.values[f.Name] = nil
		if !IsEmpty(f.Default) {
			e.values[f.Name] = f.Default
		}
	}

	for _, a := range attrs {
		f, ok := schema.Field(a.Name)
		if !ok {
			return nil, e.unknownField(a.Name)
		}
		if !f.Nullable && (a.Value == nil || !f.Type.Accepts(a.Value)) {
			return nil, e.typeMismatch(f, a.Value)
		}
		if err := e.checkChoice(f, a.Value); err != nil {
			return nil, err
		}
		e.values[a.Name] = a.Value
	}

	for _, f := range schema.fields {
		if f.Required && IsEmpty(e.values[f.Name]) {
			return nil, domain.NewValueError(schema.name, f.Name, "required field %s not found", f.Name)
		}
	}

	return e, nil
}

// ValidateValues checks that each attr names a declared field and carries a
// value of the field's type. nil passes only for nullable fields. Choices
// and required-ness are not checked here. The entity is not modified.
func (e *Entity) ValidateValues(attrs ...Attr) error {
	for _, a := range attrs {
		f, ok := e.schema.Field(a.Name)
		if !ok {
			return e.unknownField(a.Name)
		}
		if a.Value == nil {
			if f.Nullable {
				continue
			}
			return e.typeMismatch(f, a.Value)
		}
		if !f.Type.Accepts(a.Value) {
			return e.typeMismatch(f, a.Value)
		}
	}
	return nil
}

// ValidateChoice checks value against the named field's choice set.
func (e *Entity) ValidateChoice(name string, value any) error {
	f, ok := e.schema.Field(name)
	if !ok {
		return e.unknownField(name)
	}
	return e.checkChoice(f, value)
}

// Schema returns the entity's type declaration.
func (e *Entity) Schema() *Schema {
	return e.schema
}

// Get returns the current value of the named field, or nil. A nil entity
// holds no values.
func (e *Entity) Get(name string) any {
	if e == nil {
		return nil
	}
	return e.values[name]
}

// Empty reports whether e is nil. Entity types embed *Entity, so a zero
// value such as &auth.User{} is empty.
func (e *Entity) Empty() bool {
	return e == nil
}

// Values returns a copy of all field values keyed by field name.
func (e *Entity) Values() map[string]any {
	return maps.Clone(e.values)
}

// PK returns the primary key, or 0 when the entity has not been persisted.
func (e *Entity) PK() int64 {
	return As[int64](e.Get(PKField))
}

// IsNew reports whether the entity has no primary key yet.
func (e *Entity) IsNew() bool {
	return e.PK() == 0
}

// SetPK records the primary key assigned by a persistence adapter.
func (e *Entity) SetPK(pk int64) {
	if _, ok := e.schema.Field(PKField); ok {
		e.values[PKField] = pk
	}
}

// Equal reports whether e and other are the same entity: same type and same
// primary key. An entity without a primary key is equal only to itself, so
// two unsaved entities never compare equal.
func (e *Entity) Equal(other *Entity) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.schema != other.schema {
		return false
	}
	if e.IsNew() || other.IsNew() {
		return e == other
	}
	return e.PK() == other.PK()
}

// Render returns the entity as structured data: field values keyed by name,
// with references to other entities replaced by their primary keys.
func (e *Entity) Render() map[string]any {
	out := make(map[string]any, len(e.values))
	for _, name := range e.schema.Names() {
		out[name] = renderValue(e.values[name])
	}
	return out
}

// MarshalJSON encodes Render's output.
func (e *Entity) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Render())
}

// Apply runs fn against a staged copy of the entity's values and commits
// the copy only if fn returns nil. A failed update leaves the entity as it
// was. Apply runs no validation of its own; entity update operations call
// ValidateValues and ValidateChoice from inside fn.
func (e *Entity) Apply(fn func(tx *Tx) error) error {
	tx := &Tx{entity: e, staged: maps.Clone(e.values)}
	if err := fn(tx); err != nil {
		return err
	}
	e.values = tx.staged
	return nil
}

// Tx is the staging area of a single Apply call.
type Tx struct {
	entity *Entity
	staged map[string]any
}

// Get returns the staged value of the named field.
func (tx *Tx) Get(name string) any {
	return tx.staged[name]
}

// Set stages a new value for the named field.
func (tx *Tx) Set(name string, value any) error {
	if _, ok := tx.entity.schema.Field(name); !ok {
		return tx.entity.unknownField(name)
	}
	tx.staged[name] = value
	return nil
}

func (e *Entity) unknownField(name string) error {
	return domain.NewConstructionError(e.schema.name, name,
		"illegal field %s passed to %s, legal fields are %s",
		name, e.schema.name, strings.Join(e.schema.Names(), ","))
}

func (e *Entity) typeMismatch(f Field, v any) error {
	return domain.NewTypeError(e.schema.name, f.Name,
		"illegal value for field %s, should be %s, got %T", f.Name, f.Type.Name(), v)
}

func (e *Entity) checkChoice(f Field, v any) error {
	if f.Allows(v) {
		return nil
	}
	return domain.NewConstructionError(e.schema.name, f.Name,
		"illegal value %v for field %s, legal values are %s", v, f.Name, f.describeChoices())
}

// identified is implemented by every concrete entity through *Entity.
type identified interface {
	PK() int64
}

func renderValue(v any) any {
	if IsEmpty(v) {
		switch v.(type) {
		case string, bool, int64:
			return v
		}
		return nil
	}
	if ref, ok := v.(identified); ok {
		return ref.PK()
	}
	return v
}
