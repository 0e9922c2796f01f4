// Package model is the field-validation engine shared by every domain entity.
//
// An entity type declares its fields once, as a package-level *Schema:
//
//	var categorySchema = model.NewSchema("category",
//	    model.Field{Name: model.PKField, Type: model.Int64},
//	    model.Field{Name: "name", Type: model.String, Required: true},
//	)
//
// Instances are built from an ordered list of attributes. New applies
// defaults, rejects unknown names, type mismatches and choice violations,
// and finally checks required fields:
//
//	e, err := model.New(categorySchema, model.Set("name", "Go"))
//
// Required fields use a falsy check: nil, "", false, 0, the zero time, nil
// pointers and empty slices or maps all count as missing. A required bool
// field can therefore never be satisfied by false.
//
// Failures are *domain.FieldError values of kind construction, type or
// value; see domain.IsKind.
//
// Updates go through Apply, which stages changes on a copy of the entity's
// values and commits them only if every step succeeds.
package model
