package model

import "fmt"

// PKField is the name of the primary-key field every entity declares.
const PKField = "pk"

// Schema is the immutable, ordered field declaration of one entity type.
// Schemas are built once at package initialisation and shared by all
// instances of the type.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewSchema declares an entity type. It panics on an empty or duplicate
// field name, since schemas are fixed at compile time.
func NewSchema(name string, fields ...Field) *Schema {
	s := &Schema{
		name:   name,
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f.Name == "" {
			panic(fmt.Sprintf("model: schema %s: field %d has no name", name, i))
		}
		if _, dup := s.index[f.Name]; dup {
			panic(fmt.Sprintf("model: schema %s: duplicate field %q", name, f.Name))
		}
		s.fields[i] = f
		s.index[f.Name] = i
	}
	return s
}

// Name returns the entity type name, e.g. "post".
func (s *Schema) Name() string {
	return s.name
}

// Field looks up a declared field by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Fields returns a copy of the declared fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Names returns the declared field names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}
