// Package analytics records post page views.
package analytics

import (
	"time"

	"github.com/jsamuelsen11/blog-domain/internal/domain/auth"
	"github.com/jsamuelsen11/blog-domain/internal/domain/blog"
	"github.com/jsamuelsen11/blog-domain/internal/domain/model"
)

// View field names.
const (
	FieldPost     = "post"
	FieldUser     = "user"
	FieldViewedAt = "viewed_at"
)

var viewSchema = model.NewSchema("view",
	model.Field{Name: model.PKField, Type: model.Int64},
	model.Field{Name: FieldPost, Type: model.TypeOf[*blog.Post]("Post"), Required: true},
	model.Field{Name: FieldUser, Type: model.TypeOf[*auth.User]("User"), Required: true},
	model.Field{Name: FieldViewedAt, Type: model.Time},
)

// View is one user's visit to a post.
type View struct {
	*model.Entity
}

// NewView validates attrs against the view schema, stamping viewed_at with
// the current time unless attrs supply a stored value.
func NewView(attrs ...model.Attr) (*View, error) {
	stamped := append([]model.Attr{model.Set(FieldViewedAt, time.Now().UTC())}, attrs...)

	e, err := model.New(viewSchema, stamped...)
	if err != nil {
		return nil, err
	}
	return &View{Entity: e}, nil
}

// Post returns the viewed post.
func (v *View) Post() *blog.Post { return model.As[*blog.Post](v.Get(FieldPost)) }

// User returns the viewer.
func (v *View) User() *auth.User { return model.As[*auth.User](v.Get(FieldUser)) }

// ViewedAt returns when the view happened.
func (v *View) ViewedAt() time.Time { return model.As[time.Time](v.Get(FieldViewedAt)) }

// Within reports whether the view happened no more than window before now.
func (v *View) Within(window time.Duration, now time.Time) bool {
	return now.Sub(v.ViewedAt()) <= window
}
