package fixture

import (
	"maps"
	"slices"

	"github.com/jsamuelsen11/blog-domain/internal/domain/analytics"
	"github.com/jsamuelsen11/blog-domain/internal/domain/auth"
	"github.com/jsamuelsen11/blog-domain/internal/domain/blog"
	"github.com/jsamuelsen11/blog-domain/internal/domain/model"
)

// ToUserAttrs converts a UserDTO to user constructor attributes.
func ToUserAttrs(dto *UserDTO) []model.Attr {
	attrs := []model.Attr{
		model.Set(auth.FieldUsername, dto.Username),
		model.Set(auth.FieldPassword, dto.Password),
		model.Set(auth.FieldEmail, dto.Email),
		model.Set(auth.FieldFirstName, dto.FirstName),
		model.Set(auth.FieldLastName, dto.LastName),
		model.Set(auth.FieldIsActive, dto.IsActive),
		model.Set(auth.FieldIsAuthor, dto.IsAuthor),
		model.Set(auth.FieldIsModerator, dto.IsModerator),
	}
	return append(attrs, extraAttrs(dto.Extra)...)
}

// ToCategoryAttrs converts a CategoryDTO to category constructor attributes.
func ToCategoryAttrs(dto *CategoryDTO) []model.Attr {
	return append([]model.Attr{model.Set(blog.FieldName, dto.Name)}, extraAttrs(dto.Extra)...)
}

// ToPostAttrs converts a PostDTO to post constructor attributes. author and
// category are the resolved references; a nil author is left out so the
// constructor reports it as missing.
func ToPostAttrs(dto *PostDTO, author *auth.User, category *blog.Category) []model.Attr {
	attrs := []model.Attr{
		model.Set(blog.FieldTitle, dto.Title),
		model.Set(blog.FieldBody, dto.Body),
	}
	if author != nil {
		attrs = append(attrs, model.Set(blog.FieldAuthor, author))
	}
	if category != nil {
		attrs = append(attrs, model.Set(blog.FieldCategory, category))
	}
	if dto.Status != "" {
		attrs = append(attrs, model.Set(blog.FieldStatus, blog.Status(dto.Status)))
	}
	return append(attrs, extraAttrs(dto.Extra)...)
}

// ToPostChanges converts a TransitionDTO to Post.Update changes in a fixed
// order: category, body, title, status. category is the resolved reference
// for dto.Category; an empty dto.Category clears the category.
func ToPostChanges(dto *TransitionDTO, category *blog.Category) []model.Attr {
	var changes []model.Attr
	if dto.Category != nil {
		if category == nil {
			changes = append(changes, model.Set(blog.FieldCategory, nil))
		} else {
			changes = append(changes, model.Set(blog.FieldCategory, category))
		}
	}
	if dto.Body != nil {
		changes = append(changes, model.Set(blog.FieldBody, *dto.Body))
	}
	if dto.Title != nil {
		changes = append(changes, model.Set(blog.FieldTitle, *dto.Title))
	}
	if dto.Status != nil {
		changes = append(changes, model.Set(blog.FieldStatus, blog.Status(*dto.Status)))
	}
	return changes
}

// ToCommentAttrs converts a CommentDTO to comment constructor attributes.
func ToCommentAttrs(dto *CommentDTO, post *blog.Post, user *auth.User) []model.Attr {
	attrs := []model.Attr{model.Set(blog.FieldBody, dto.Body)}
	if post != nil {
		attrs = append(attrs, model.Set(blog.FieldPost, post))
	}
	if user != nil {
		attrs = append(attrs, model.Set(blog.FieldUser, user))
	}
	if dto.CreatedAt != nil {
		attrs = append(attrs, model.Set(blog.FieldCreatedAt, dto.CreatedAt.UTC()))
	}
	return append(attrs, extraAttrs(dto.Extra)...)
}

// ToViewAttrs converts a ViewDTO to view constructor attributes.
func ToViewAttrs(dto *ViewDTO, post *blog.Post, user *auth.User) []model.Attr {
	var attrs []model.Attr
	if post != nil {
		attrs = append(attrs, model.Set(analytics.FieldPost, post))
	}
	if user != nil {
		attrs = append(attrs, model.Set(analytics.FieldUser, user))
	}
	if dto.ViewedAt != nil {
		attrs = append(attrs, model.Set(analytics.FieldViewedAt, dto.ViewedAt.UTC()))
	}
	return attrs
}

// extraAttrs passes unrecognised keys through in sorted order.
func extraAttrs(extra map[string]any) []model.Attr {
	if len(extra) == 0 {
		return nil
	}
	attrs := make([]model.Attr, 0, len(extra))
	for _, k := range slices.Sorted(maps.Keys(extra)) {
		attrs = append(attrs, model.Set(k, extra[k]))
	}
	return attrs
}
