package blog_test

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/blog-domain/internal/domain"
	"github.com/jsamuelsen11/blog-domain/internal/domain/auth"
	"github.com/jsamuelsen11/blog-domain/internal/domain/blog"
	"github.com/jsamuelsen11/blog-domain/internal/domain/model"
)

func TestNewComment(t *testing.T) {
	t.Parallel()
	c := newCast(t)
	post := newDraft(t, c.author)

	for _, u := range []struct {
		name string
		attr model.Attr
	}{
		{"author", model.Set(blog.FieldUser, c.author)},
		{"moderator", model.Set(blog.FieldUser, c.moderator)},
		{"reader", model.Set(blog.FieldUser, c.reader)},
	} {
		t.Run(u.name, func(t *testing.T) {
			t.Parallel()
			before := time.Now().UTC()
			cm, err := blog.NewComment(
				model.Set(blog.FieldPost, post),
				u.attr,
				model.Set(blog.FieldBody, "My comment!"),
			)
			if err != nil {
				t.Fatalf("NewComment() error = %v", err)
			}
			if cm.CreatedAt().Before(before) {
				t.Errorf("CreatedAt() = %v, want >= %v", cm.CreatedAt(), before)
			}
			if cm.Post() != post || cm.Body() != "My comment!" {
				t.Errorf("comment = %v", cm.Values())
			}
		})
	}
}

func TestNewComment_MissingFields(t *testing.T) {
	t.Parallel()
	c := newCast(t)
	post := newDraft(t, c.author)

	tests := []struct {
		name  string
		attrs []model.Attr
	}{
		{"no body", []model.Attr{model.Set(blog.FieldPost, post), model.Set(blog.FieldUser, c.author)}},
		{"no user", []model.Attr{model.Set(blog.FieldPost, post), model.Set(blog.FieldBody, "My comment!")}},
		{"no post", []model.Attr{model.Set(blog.FieldUser, c.reader), model.Set(blog.FieldBody, "My comment!")}},
		{"empty body", []model.Attr{model.Set(blog.FieldPost, post), model.Set(blog.FieldUser, c.author), model.Set(blog.FieldBody, "")}},
		{"zero-value post", []model.Attr{model.Set(blog.FieldPost, &blog.Post{}), model.Set(blog.FieldUser, c.author), model.Set(blog.FieldBody, "hi")}},
		{"zero-value user", []model.Attr{model.Set(blog.FieldPost, post), model.Set(blog.FieldUser, &auth.User{}), model.Set(blog.FieldBody, "hi")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := blog.NewComment(tt.attrs...); !domain.IsKind(err, domain.KindValue) {
				t.Errorf("NewComment() error = %v, want value error", err)
			}
		})
	}
}

func TestNewComment_StoredTimestampWins(t *testing.T) {
	t.Parallel()
	c := newCast(t)
	post := newDraft(t, c.author)

	stored := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	cm, err := blog.NewComment(
		model.Set(model.PKField, int64(3)),
		model.Set(blog.FieldPost, post),
		model.Set(blog.FieldUser, c.reader),
		model.Set(blog.FieldBody, "old comment"),
		model.Set(blog.FieldCreatedAt, stored),
	)
	if err != nil {
		t.Fatalf("NewComment() error = %v", err)
	}
	if !cm.CreatedAt().Equal(stored) {
		t.Errorf("CreatedAt() = %v, want %v", cm.CreatedAt(), stored)
	}
}

func TestNewCategory(t *testing.T) {
	t.Parallel()

	cat, err := blog.NewCategory(model.Set(blog.FieldName, "Go"))
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}
	if cat.Name() != "Go" || cat.String() != "<Category: Go>" {
		t.Errorf("category = %v", cat.Values())
	}

	if _, err := blog.NewCategory(); !domain.IsKind(err, domain.KindValue) {
		t.Errorf("NewCategory() without name error = %v, want value error", err)
	}
	if _, err := blog.NewCategory(model.Set("slug", "go")); !domain.IsKind(err, domain.KindConstruction) {
		t.Errorf("NewCategory(slug) error = %v, want construction error", err)
	}
}
