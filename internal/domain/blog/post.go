// Package blog holds the publishing entities: categories, posts and
// comments. Posts follow a draft -> review -> published -> archived
// lifecycle enforced by Post.Update.
package blog

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/blog-domain/internal/domain"
	"github.com/jsamuelsen11/blog-domain/internal/domain/auth"
	"github.com/jsamuelsen11/blog-domain/internal/domain/model"
)

// Post field names.
const (
	FieldTitle       = "title"
	FieldAuthor      = "author"
	FieldCategory    = "category"
	FieldStatus      = "status"
	FieldBody        = "body"
	FieldPublishedAt = "published_at"
	FieldCreatedAt   = "created_at"
	FieldUpdatedAt   = "updated_at"
)

var (
	userType     = model.TypeOf[*auth.User]("User")
	categoryType = model.TypeOf[*Category]("Category")
	statusType   = model.TypeOf[Status]("Status")
)

var postSchema = model.NewSchema("post",
	model.Field{Name: model.PKField, Type: model.Int64},
	model.Field{Name: FieldTitle, Type: model.String, Required: true},
	model.Field{Name: FieldAuthor, Type: userType, Required: true},
	model.Field{Name: FieldCategory, Type: categoryType, Nullable: true},
	model.Field{Name: FieldStatus, Type: statusType, Required: true, Default: StatusDraft, Choices: StatusChoices},
	model.Field{Name: FieldBody, Type: model.String, Default: ""},
	model.Field{Name: FieldPublishedAt, Type: model.Time, Nullable: true},
	model.Field{Name: FieldCreatedAt, Type: model.Time, Nullable: true},
	model.Field{Name: FieldUpdatedAt, Type: model.Time, Nullable: true},
)

// FieldUpdatedBy names the updater in Update errors.
const FieldUpdatedBy = "updated_by"

// Post is a blog article. A post without a primary key is new and must
// start as a draft; a post loaded from storage may be in any status.
type Post struct {
	*model.Entity
}

// NewPost validates attrs against the post schema, then enforces that new
// posts are drafts, that the author may write posts, and that the title is
// not empty.
func NewPost(attrs ...model.Attr) (*Post, error) {
	e, err := model.New(postSchema, attrs...)
	if err != nil {
		return nil, err
	}
	p := &Post{Entity: e}

	if p.IsNew() && p.Status() != StatusDraft {
		return nil, domain.NewValueError(postSchema.Name(), FieldStatus,
			"cannot create a new post that is in a state other than draft")
	}
	if err := checkCanWrite(p.Author()); err != nil {
		return nil, err
	}
	if err := checkTitle(p.Status(), p.Title(), p.Title()); err != nil {
		return nil, err
	}

	return p, nil
}

// Update applies changes on behalf of updatedBy. Every change is
// type-checked first; then, in the order given, each value is checked
// against the field's choices and the title and status rules:
//
//   - the title may not be empty, and may only change while the post is a
//     draft or under review;
//   - only a moderator may publish, and only from review;
//   - publishing stamps published_at.
//
// Changes are all-or-nothing: on error the post is left unmodified.
func (p *Post) Update(updatedBy *auth.User, changes ...model.Attr) error {
	if model.IsEmpty(updatedBy) {
		return domain.NewValueError(postSchema.Name(), FieldUpdatedBy,
			"updates must contain an updated_by argument that passes a User")
	}

	if err := p.ValidateValues(changes...); err != nil {
		return err
	}

	return p.Apply(func(tx *model.Tx) error {
		for _, c := range changes {
			if err := p.ValidateChoice(c.Name, c.Value); err != nil {
				return err
			}

			current := model.As[Status](tx.Get(FieldStatus))

			switch c.Name {
			case FieldTitle:
				title := model.As[string](c.Value)
				if err := checkTitle(current, model.As[string](tx.Get(FieldTitle)), title); err != nil {
					return err
				}
			case FieldStatus:
				next := model.As[Status](c.Value)
				if err := checkTransition(updatedBy, current, next); err != nil {
					return err
				}
				if next == StatusPublished {
					if err := tx.Set(FieldPublishedAt, time.Now().UTC()); err != nil {
						return err
					}
				}
			}

			if err := tx.Set(c.Name, c.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

// Publish moves a post under review to published. It is Update with a
// single status change.
func (p *Post) Publish(moderator *auth.User) error {
	return p.Update(moderator, model.Set(FieldStatus, StatusPublished))
}

// Title returns the post title.
func (p *Post) Title() string { return model.As[string](p.Get(FieldTitle)) }

// Author returns the writing user.
func (p *Post) Author() *auth.User { return model.As[*auth.User](p.Get(FieldAuthor)) }

// Category returns the post category, or nil.
func (p *Post) Category() *Category { return model.As[*Category](p.Get(FieldCategory)) }

// Status returns the lifecycle state.
func (p *Post) Status() Status { return model.As[Status](p.Get(FieldStatus)) }

// Body returns the article text.
func (p *Post) Body() string { return model.As[string](p.Get(FieldBody)) }

// PublishedAt returns when the post was published, or the zero time.
func (p *Post) PublishedAt() time.Time { return model.As[time.Time](p.Get(FieldPublishedAt)) }

// CreatedAt returns the storage creation time, or the zero time.
func (p *Post) CreatedAt() time.Time { return model.As[time.Time](p.Get(FieldCreatedAt)) }

// UpdatedAt returns the storage update time, or the zero time.
func (p *Post) UpdatedAt() time.Time { return model.As[time.Time](p.Get(FieldUpdatedAt)) }

// IsPublished reports whether the post is publicly visible.
func (p *Post) IsPublished() bool {
	return p.Status() == StatusPublished
}

func (p *Post) String() string {
	return fmt.Sprintf("<Post pk=%d, title=%s, author=%s>", p.PK(), p.Title(), p.Author())
}

func checkCanWrite(u *auth.User) error {
	if model.IsEmpty(u) || !u.CanWrite() {
		return domain.NewValueError(postSchema.Name(), FieldAuthor,
			"only an author or a moderator can create or update a post, received %s", u)
	}
	return nil
}

// checkTitle validates a title change from current to next for a post in
// the given status.
func checkTitle(status Status, current, next string) error {
	if next == "" {
		return domain.NewValueError(postSchema.Name(), FieldTitle, "title cannot be an empty string or null")
	}
	if !status.TitleEditable() && next != current {
		return domain.NewValueError(postSchema.Name(), FieldTitle, "can only update title in a draft or review state")
	}
	return nil
}

func checkTransition(by *auth.User, from, to Status) error {
	if to != StatusPublished {
		return nil
	}
	if !by.IsModerator() {
		return domain.NewValueError(postSchema.Name(), FieldStatus, "only a user who is a moderator can publish a post")
	}
	if from != StatusReview {
		return domain.NewValueError(postSchema.Name(), FieldStatus,
			"a post can only be published from review status, current status is %s", from.Label())
	}
	return nil
}
