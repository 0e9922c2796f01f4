package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking. Every *FieldError unwraps to the
// sentinel matching its Kind.
var (
	ErrConstruction = errors.New("construction error")
	ErrType         = errors.New("type error")
	ErrValue        = errors.New("value error")
	ErrNotFound     = errors.New("not found")
)

// ErrorKind is the coarse category of a validation failure.
type ErrorKind string

const (
	// KindConstruction covers unknown field names and choice violations.
	KindConstruction ErrorKind = "construction"
	// KindType covers values whose runtime type does not match the field.
	KindType ErrorKind = "type"
	// KindValue covers missing required fields and business-rule violations.
	KindValue ErrorKind = "value"
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	return string(k)
}

// sentinel returns the sentinel error for the kind.
func (k ErrorKind) sentinel() error {
	switch k {
	case KindConstruction:
		return ErrConstruction
	case KindType:
		return ErrType
	default:
		return ErrValue
	}
}

// FieldError reports a validation failure on a single entity field.
// Use errors.Is(err, ErrValue) (or ErrType, ErrConstruction) for simple
// checks, or errors.As(err, &ferr) to access the entity and field names.
type FieldError struct {
	Kind    ErrorKind
	Entity  string
	Field   string // empty for entity-level rules
	Message string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s: %s", e.Entity, e.Kind.sentinel(), e.Message)
	}
	return fmt.Sprintf("%s: %s: %s: %s", e.Entity, e.Kind.sentinel(), e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Kind.sentinel()
}

// NewConstructionError builds a KindConstruction FieldError.
func NewConstructionError(entity, field, format string, args ...any) *FieldError {
	return &FieldError{Kind: KindConstruction, Entity: entity, Field: field, Message: fmt.Sprintf(format, args...)}
}

// NewTypeError builds a KindType FieldError.
func NewTypeError(entity, field, format string, args ...any) *FieldError {
	return &FieldError{Kind: KindType, Entity: entity, Field: field, Message: fmt.Sprintf(format, args...)}
}

// NewValueError builds a KindValue FieldError.
func NewValueError(entity, field, format string, args ...any) *FieldError {
	return &FieldError{Kind: KindValue, Entity: entity, Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err carries a *FieldError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the first *FieldError in err's chain, or "" if
// there is none.
func KindOf(err error) ErrorKind {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
