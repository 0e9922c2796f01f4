package blog

import (
	"time"

	"github.com/jsamuelsen11/blog-domain/internal/domain/auth"
	"github.com/jsamuelsen11/blog-domain/internal/domain/model"
)

// Comment field names.
const (
	FieldPost = "post"
	FieldUser = "user"
)

var postType = model.TypeOf[*Post]("Post")

var commentSchema = model.NewSchema("comment",
	model.Field{Name: model.PKField, Type: model.Int64},
	model.Field{Name: FieldPost, Type: postType, Required: true},
	model.Field{Name: FieldUser, Type: userType, Required: true},
	model.Field{Name: FieldBody, Type: model.String, Required: true},
	model.Field{Name: FieldCreatedAt, Type: model.Time},
)

// Comment is a reader's reply to a post. Comments are immutable.
type Comment struct {
	*model.Entity
}

// NewComment validates attrs against the comment schema. created_at is
// stamped with the current time ahead of the supplied attrs, so a stored
// timestamp passed in attrs takes precedence.
func NewComment(attrs ...model.Attr) (*Comment, error) {
	stamped := make([]model.Attr, 0, len(attrs)+1)
	stamped = append(stamped, model.Set(FieldCreatedAt, time.Now().UTC()))
	stamped = append(stamped, attrs...)

	e, err := model.New(commentSchema, stamped...)
	if err != nil {
		return nil, err
	}
	return &Comment{Entity: e}, nil
}

// Post returns the commented post.
func (c *Comment) Post() *Post { return model.As[*Post](c.Get(FieldPost)) }

// User returns the commenter.
func (c *Comment) User() *auth.User { return model.As[*auth.User](c.Get(FieldUser)) }

// Body returns the comment text.
func (c *Comment) Body() string { return model.As[string](c.Get(FieldBody)) }

// CreatedAt returns when the comment was written.
func (c *Comment) CreatedAt() time.Time { return model.As[time.Time](c.Get(FieldCreatedAt)) }
