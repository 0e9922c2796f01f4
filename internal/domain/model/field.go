package model

import (
	"fmt"
	"strings"
)

// Choice is one permitted (value, label) pair of a constrained field.
type Choice struct {
	Value any
	Label string
}

// Field declares a named attribute of an entity type. Fields are plain data;
// the checks they describe are run by Entity.
type Field struct {
	Name     string
	Type     Type
	Required bool
	Nullable bool
	Default  any
	Choices  []Choice // empty means unconstrained
}

// HasChoices reports whether the field restricts its values.
func (f Field) HasChoices() bool {
	return len(f.Choices) > 0
}

// Allows reports whether v is one of the field's choices. Unconstrained
// fields allow every value.
func (f Field) Allows(v any) bool {
	if !f.HasChoices() {
		return true
	}
	for _, c := range f.Choices {
		if c.Value == v {
			return true
		}
	}
	return false
}

// describeChoices renders the choice set as "d (Draft), r (Review)".
func (f Field) describeChoices() string {
	parts := make([]string, len(f.Choices))
	for i, c := range f.Choices {
		parts[i] = fmt.Sprintf("%v (%s)", c.Value, c.Label)
	}
	return strings.Join(parts, ", ")
}

// Attr is a single field assignment supplied to New or to an update.
type Attr struct {
	Name  string
	Value any
}

// Set returns an Attr assigning value to the named field.
func Set(name string, value any) Attr {
	return Attr{Name: name, Value: value}
}
