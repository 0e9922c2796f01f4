// Package auth holds the user entity shared by the blog and analytics
// contexts.
package auth

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/blog-domain/internal/domain"
	"github.com/jsamuelsen11/blog-domain/internal/domain/model"
)

// Field names.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldEmail       = "email"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldIsActive    = "is_active"
	FieldIsModerator = "is_moderator"
	FieldIsAuthor    = "is_author"
)

var userSchema = model.NewSchema("user",
	model.Field{Name: model.PKField, Type: model.Int64},
	model.Field{Name: FieldUsername, Type: model.String, Required: true},
	model.Field{Name: FieldPassword, Type: model.String, Required: true},
	model.Field{Name: FieldEmail, Type: model.String},
	model.Field{Name: FieldFirstName, Type: model.String, Required: true},
	model.Field{Name: FieldLastName, Type: model.String, Required: true},
	model.Field{Name: FieldIsActive, Type: model.Bool},
	model.Field{Name: FieldIsModerator, Type: model.Bool},
	model.Field{Name: FieldIsAuthor, Type: model.Bool},
)

// nonEmpty lists the fields that must hold a non-empty string.
var nonEmpty = []string{FieldUsername, FieldPassword, FieldEmail}

// User is an account that can read, comment on, author or moderate posts.
// Users have no update operation.
type User struct {
	*model.Entity
}

// NewUser validates attrs against the user schema.
func NewUser(attrs ...model.Attr) (*User, error) {
	e, err := model.New(userSchema, attrs...)
	if err != nil {
		return nil, err
	}

	for _, name := range nonEmpty {
		if model.IsEmpty(e.Get(name)) {
			return nil, domain.NewValueError(userSchema.Name(), name, "field %s cannot be empty string", name)
		}
	}

	return &User{Entity: e}, nil
}

// Schema returns the user field declarations.
func Schema() *model.Schema {
	return userSchema
}

// Username returns the login name.
func (u *User) Username() string { return model.As[string](u.Get(FieldUsername)) }

// Email returns the e-mail address.
func (u *User) Email() string { return model.As[string](u.Get(FieldEmail)) }

// FirstName returns the given name.
func (u *User) FirstName() string { return model.As[string](u.Get(FieldFirstName)) }

// LastName returns the family name.
func (u *User) LastName() string { return model.As[string](u.Get(FieldLastName)) }

// FullName returns "First Last".
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName() + " " + u.LastName())
}

// IsActive reports whether the account is enabled.
func (u *User) IsActive() bool { return model.As[bool](u.Get(FieldIsActive)) }

// IsModerator reports whether the user may publish posts.
func (u *User) IsModerator() bool { return model.As[bool](u.Get(FieldIsModerator)) }

// IsAuthor reports whether the user may write posts.
func (u *User) IsAuthor() bool { return model.As[bool](u.Get(FieldIsAuthor)) }

// CanWrite reports whether the user may create or update posts.
func (u *User) CanWrite() bool {
	return u.IsAuthor() || u.IsModerator()
}

func (u *User) String() string {
	return "<User: " + u.Username() + ">"
}

// LogValue implements slog.LogValuer. The password is never logged.
func (u *User) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("pk", u.PK()),
		slog.String("username", u.Username()),
	)
}

// MarshalJSON renders the user without its password.
func (u *User) MarshalJSON() ([]byte, error) {
	out := u.Render()
	delete(out, FieldPassword)
	return json.Marshal(out)
}
