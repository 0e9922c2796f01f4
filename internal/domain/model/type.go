package model

import "time"

// Type describes the runtime type a field accepts.
type Type struct {
	name   string
	accept func(v any) bool
}

// Built-in scalar types.
var (
	String = TypeOf[string]("string")
	Int64  = TypeOf[int64]("int64")
	Bool   = TypeOf[bool]("bool")
	Time   = TypeOf[time.Time]("time")
)

// TypeOf returns a Type accepting values whose dynamic type is exactly T.
// Entity references and enums are declared this way, e.g.
// TypeOf[*auth.User]("User").
func TypeOf[T any](name string) Type {
	return Type{
		name: name,
		accept: func(v any) bool {
			_, ok := v.(T)
			return ok
		},
	}
}

// Name returns the human-readable type name used in error messages.
func (t Type) Name() string {
	return t.name
}

// Accepts reports whether v has this type. The zero Type accepts anything.
func (t Type) Accepts(v any) bool {
	if t.accept == nil {
		return true
	}
	return t.accept(v)
}

// As returns v as a T, or T's zero value when v is nil or of another type.
func As[T any](v any) T {
	t, _ := v.(T)
	return t
}
