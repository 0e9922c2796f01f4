package blog_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/blog-domain/internal/domain"
	"github.com/jsamuelsen11/blog-domain/internal/domain/auth"
	"github.com/jsamuelsen11/blog-domain/internal/domain/blog"
	"github.com/jsamuelsen11/blog-domain/internal/domain/model"
)

func newUser(t *testing.T, username string, isAuthor, isModerator bool) *auth.User {
	t.Helper()
	u, err := auth.NewUser(
		model.Set(auth.FieldUsername, username),
		model.Set(auth.FieldPassword, "testpass"),
		model.Set(auth.FieldEmail, "user@example.com"),
		model.Set(auth.FieldFirstName, "First"),
		model.Set(auth.FieldLastName, "Last"),
		model.Set(auth.FieldIsActive, true),
		model.Set(auth.FieldIsAuthor, isAuthor),
		model.Set(auth.FieldIsModerator, isModerator),
	)
	if err != nil {
		t.Fatalf("auth.NewUser(%s) error = %v", username, err)
	}
	return u
}

type cast struct {
	reader    *auth.User
	author    *auth.User
	moderator *auth.User
	category  *blog.Category
}

func newCast(t *testing.T) cast {
	t.Helper()
	category, err := blog.NewCategory(model.Set(blog.FieldName, "For Fun!"))
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}
	return cast{
		reader:    newUser(t, "user1", false, false),
		author:    newUser(t, "user2", true, false),
		moderator: newUser(t, "user3", false, true),
		category:  category,
	}
}

func newDraft(t *testing.T, author *auth.User) *blog.Post {
	t.Helper()
	p, err := blog.NewPost(
		model.Set(blog.FieldTitle, "Hello World"),
		model.Set(blog.FieldAuthor, author),
		model.Set(blog.FieldBody, "This is my article."),
	)
	if err != nil {
		t.Fatalf("NewPost() error = %v", err)
	}
	return p
}

func TestNewPost_Success(t *testing.T) {
	t.Parallel()
	c := newCast(t)

	tests := []struct {
		name  string
		attrs []model.Attr
	}{
		{
			name: "by author",
			attrs: []model.Attr{
				model.Set(blog.FieldTitle, "Hello World"),
				model.Set(blog.FieldAuthor, c.author),
				model.Set(blog.FieldBody, "This is my cool article."),
			},
		},
		{
			name: "by moderator",
			attrs: []model.Attr{
				model.Set(blog.FieldTitle, "Hello World"),
				model.Set(blog.FieldAuthor, c.moderator),
				model.Set(blog.FieldBody, "This is my cool article."),
			},
		},
		{
			name: "with a category",
			attrs: []model.Attr{
				model.Set(blog.FieldTitle, "Hello World"),
				model.Set(blog.FieldAuthor, c.moderator),
				model.Set(blog.FieldCategory, c.category),
			},
		},
		{
			name: "explicit nil category",
			attrs: []model.Attr{
				model.Set(blog.FieldTitle, "Hello World"),
				model.Set(blog.FieldAuthor, c.author),
				model.Set(blog.FieldCategory, nil),
			},
		},
		{
			name: "loaded from storage in published state",
			attrs: []model.Attr{
				model.Set(model.PKField, int64(1)),
				model.Set(blog.FieldTitle, "Hello World"),
				model.Set(blog.FieldAuthor, c.moderator),
				model.Set(blog.FieldStatus, blog.StatusPublished),
				model.Set(blog.FieldCategory, c.category),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := blog.NewPost(tt.attrs...); err != nil {
				t.Errorf("NewPost() error = %v, want nil", err)
			}
		})
	}
}

func TestNewPost_Defaults(t *testing.T) {
	t.Parallel()
	c := newCast(t)

	p, err := blog.NewPost(
		model.Set(blog.FieldTitle, "Hello World"),
		model.Set(blog.FieldAuthor, c.author),
	)
	if err != nil {
		t.Fatalf("NewPost() error = %v", err)
	}

	if p.Status() != blog.StatusDraft {
		t.Errorf("Status() = %q, want draft", p.Status())
	}
	if p.Body() != "" {
		t.Errorf("Body() = %q, want empty", p.Body())
	}
	if p.Category() != nil {
		t.Errorf("Category() = %v, want nil", p.Category())
	}
	if p.Get(blog.FieldPublishedAt) != nil || !p.PublishedAt().IsZero() {
		t.Errorf("published_at = %v, want unset", p.Get(blog.FieldPublishedAt))
	}
	if p.Author() != c.author {
		t.Error("Author() did not return the supplied user")
	}
	if !p.IsNew() {
		t.Error("IsNew() = false for a post without pk")
	}
}

func TestNewPost_Failures(t *testing.T) {
	t.Parallel()
	c := newCast(t)

	tests := []struct {
		name     string
		attrs    []model.Attr
		wantKind domain.ErrorKind
	}{
		{
			name: "reader cannot create a post",
			attrs: []model.Attr{
				model.Set(blog.FieldTitle, "Hello World"),
				model.Set(blog.FieldAuthor, c.reader),
			},
			wantKind: domain.KindValue,
		},
		{
			name: "empty title",
			attrs: []model.Attr{
				model.Set(blog.FieldTitle, ""),
				model.Set(blog.FieldAuthor, c.author),
			},
			wantKind: domain.KindValue,
		},
		{
			name: "nil title",
			attrs: []model.Attr{
				model.Set(blog.FieldTitle, nil),
				model.Set(blog.FieldAuthor, c.author),
			},
			wantKind: domain.KindType,
		},
		{
			name: "new post must start as draft",
			attrs: []model.Attr{
				model.Set(blog.FieldTitle, "Hello World"),
				model.Set(blog.FieldAuthor, c.author),
				model.Set(blog.FieldStatus, blog.StatusPublished),
			},
			wantKind: domain.KindValue,
		},
		{
			name: "new post in review",
			attrs: []model.Attr{
				model.Set(blog.FieldTitle, "Hello World"),
				model.Set(blog.FieldAuthor, c.author),
				model.Set(blog.FieldStatus, blog.StatusReview),
			},
			wantKind: domain.KindValue,
		},
		{
			name: "missing author",
			attrs: []model.Attr{
				model.Set(blog.FieldTitle, "Hello World"),
			},
			wantKind: domain.KindValue,
		},
		{
			name: "zero-value author",
			attrs: []model.Attr{
				model.Set(blog.FieldTitle, "Hello World"),
				model.Set(blog.FieldAuthor, &auth.User{}),
			},
			wantKind: domain.KindValue,
		},
		{
			name: "author of wrong type",
			attrs: []model.Attr{
				model.Set(blog.FieldTitle, "Hello World"),
				model.Set(blog.FieldAuthor, "user2"),
			},
			wantKind: domain.KindType,
		},
		{
			name: "status outside choices",
			attrs: []model.Attr{
				model.Set(blog.FieldTitle, "Hello World"),
				model.Set(blog.FieldAuthor, c.author),
				model.Set(blog.FieldStatus, blog.Status("x")),
			},
			wantKind: domain.KindConstruction,
		},
		{
			name: "unknown field",
			attrs: []model.Attr{
				model.Set(blog.FieldTitle, "Hello World"),
				model.Set(blog.FieldAuthor, c.author),
				model.Set("tags", "go"),
			},
			wantKind: domain.KindConstruction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := blog.NewPost(tt.attrs...)
			if p != nil {
				t.Errorf("NewPost() = %v, want nil post on error", p)
			}
			if !domain.IsKind(err, tt.wantKind) {
				t.Errorf("NewPost() error = %v, want %s error", err, tt.wantKind)
			}
		})
	}
}

func TestPost_UpdateConstraints(t *testing.T) {
	t.Parallel()
	c := newCast(t)
	post := newDraft(t, c.author)

	authorUpdates := [][]model.Attr{
		{model.Set(blog.FieldTitle, "My New title")},
		{model.Set(blog.FieldStatus, blog.StatusArchived)},
		{model.Set(blog.FieldStatus, blog.StatusDraft)},
		{model.Set(blog.FieldStatus, blog.StatusReview)},
		{model.Set(blog.FieldBody, "Made some edits."), model.Set(blog.FieldCategory, c.category)},
	}
	for _, changes := range authorUpdates {
		if err := post.Update(c.author, changes...); err != nil {
			t.Fatalf("Update(author, %v) error = %v", changes, err)
		}
	}

	authorFailures := []struct {
		changes  []model.Attr
		wantKind domain.ErrorKind
	}{
		{[]model.Attr{model.Set(blog.FieldTitle, "")}, domain.KindValue},
		{[]model.Attr{model.Set(blog.FieldStatus, blog.StatusPublished)}, domain.KindValue},
		{[]model.Attr{model.Set(blog.FieldStatus, blog.Status("non-status"))}, domain.KindConstruction},
		{[]model.Attr{model.Set(blog.FieldStatus, "r")}, domain.KindType},
	}
	for _, tt := range authorFailures {
		if err := post.Update(c.author, tt.changes...); !domain.IsKind(err, tt.wantKind) {
			t.Errorf("Update(author, %v) error = %v, want %s error", tt.changes, err, tt.wantKind)
		}
	}

	// Moderators can do everything an author can, plus publish. The author
	// updates above leave the post in review.
	for _, changes := range authorUpdates {
		if err := post.Update(c.moderator, changes...); err != nil {
			t.Fatalf("Update(moderator, %v) error = %v", changes, err)
		}
	}
	if err := post.Update(c.moderator, model.Set(blog.FieldStatus, blog.StatusPublished)); err != nil {
		t.Fatalf("Update(moderator, publish) error = %v", err)
	}
	if post.PublishedAt().IsZero() {
		t.Error("PublishedAt() is zero after publishing")
	}
	if !post.IsPublished() {
		t.Errorf("Status() = %q, want published", post.Status())
	}

	moderatorFailures := []struct {
		changes  []model.Attr
		wantKind domain.ErrorKind
	}{
		{[]model.Attr{model.Set(blog.FieldTitle, "")}, domain.KindValue},
		{[]model.Attr{model.Set(blog.FieldTitle, "Rewritten")}, domain.KindValue},
		{[]model.Attr{model.Set(blog.FieldStatus, blog.Status("non-status"))}, domain.KindConstruction},
	}
	for _, tt := range moderatorFailures {
		if err := post.Update(c.moderator, tt.changes...); !domain.IsKind(err, tt.wantKind) {
			t.Errorf("Update(moderator, %v) error = %v, want %s error", tt.changes, err, tt.wantKind)
		}
	}

	if err := post.Update(c.moderator, model.Set(blog.FieldStatus, blog.StatusArchived)); err != nil {
		t.Fatalf("Update(moderator, archive) error = %v", err)
	}
	err := post.Update(c.moderator, model.Set(blog.FieldTitle, "Cannot update this"))
	if !domain.IsKind(err, domain.KindValue) {
		t.Errorf("title change on archived post error = %v, want value error", err)
	}
}

func TestPost_PublishRules(t *testing.T) {
	t.Parallel()
	c := newCast(t)

	tests := []struct {
		name    string
		from    []blog.Status
		by      func(cast) *auth.User
		wantErr bool
	}{
		{name: "moderator from review", from: []blog.Status{blog.StatusReview}, by: func(c cast) *auth.User { return c.moderator }},
		{name: "moderator from draft", from: nil, by: func(c cast) *auth.User { return c.moderator }, wantErr: true},
		{name: "moderator from archived", from: []blog.Status{blog.StatusArchived}, by: func(c cast) *auth.User { return c.moderator }, wantErr: true},
		{name: "author from review", from: []blog.Status{blog.StatusReview}, by: func(c cast) *auth.User { return c.author }, wantErr: true},
		{name: "reader from review", from: []blog.Status{blog.StatusReview}, by: func(c cast) *auth.User { return c.reader }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			post := newDraft(t, c.author)
			for _, s := range tt.from {
				if err := post.Update(c.author, model.Set(blog.FieldStatus, s)); err != nil {
					t.Fatalf("Update(%s) error = %v", s, err)
				}
			}

			err := post.Publish(tt.by(c))
			if tt.wantErr {
				if !domain.IsKind(err, domain.KindValue) {
					t.Errorf("Publish() error = %v, want value error", err)
				}
				if !post.PublishedAt().IsZero() {
					t.Error("PublishedAt() set after a rejected publish")
				}
				return
			}
			if err != nil {
				t.Fatalf("Publish() error = %v", err)
			}
			if post.PublishedAt().IsZero() {
				t.Error("PublishedAt() is zero after publishing")
			}
		})
	}
}

func TestPost_UpdateScenario(t *testing.T) {
	t.Parallel()
	c := newCast(t)

	post, err := blog.NewPost(
		model.Set(blog.FieldTitle, "Hello World"),
		model.Set(blog.FieldAuthor, c.author),
		model.Set(blog.FieldBody, "..."),
	)
	if err != nil {
		t.Fatalf("NewPost() error = %v", err)
	}
	if post.Status() != blog.StatusDraft || !post.PublishedAt().IsZero() {
		t.Fatalf("new post status = %q, published_at = %v", post.Status(), post.PublishedAt())
	}

	before := time.Now().UTC()
	if err := post.Update(c.author, model.Set(blog.FieldStatus, blog.StatusReview)); err != nil {
		t.Fatalf("Update(review) error = %v", err)
	}
	if err := post.Update(c.moderator, model.Set(blog.FieldStatus, blog.StatusPublished)); err != nil {
		t.Fatalf("Update(publish) error = %v", err)
	}
	if post.PublishedAt().Before(before) {
		t.Errorf("PublishedAt() = %v, want >= %v", post.PublishedAt(), before)
	}

	err = post.Update(c.moderator, model.Set(blog.FieldTitle, "x"))
	if !errors.Is(err, domain.ErrValue) {
		t.Errorf("Update(title) on published post error = %v, want ErrValue", err)
	}
	if post.Title() != "Hello World" {
		t.Errorf("Title() = %q after rejected update", post.Title())
	}
}

func TestPost_UpdateSameTitleWhenPublished(t *testing.T) {
	t.Parallel()
	c := newCast(t)

	post, err := blog.NewPost(
		model.Set(model.PKField, int64(9)),
		model.Set(blog.FieldTitle, "Hello World"),
		model.Set(blog.FieldAuthor, c.author),
		model.Set(blog.FieldStatus, blog.StatusPublished),
	)
	if err != nil {
		t.Fatalf("NewPost() error = %v", err)
	}
	if err := post.Update(c.author, model.Set(blog.FieldTitle, "Hello World")); err != nil {
		t.Errorf("Update(same title) error = %v, want nil", err)
	}
}

func TestPost_UpdateIsAllOrNothing(t *testing.T) {
	t.Parallel()
	c := newCast(t)
	post := newDraft(t, c.author)

	err := post.Update(c.author,
		model.Set(blog.FieldBody, "edited"),
		model.Set(blog.FieldStatus, blog.StatusReview),
		model.Set(blog.FieldStatus, blog.StatusPublished),
	)
	if !domain.IsKind(err, domain.KindValue) {
		t.Fatalf("Update() error = %v, want value error", err)
	}
	if post.Body() != "This is my article." || post.Status() != blog.StatusDraft {
		t.Errorf("post mutated by failed update: body=%q status=%q", post.Body(), post.Status())
	}
}

func TestPost_UpdateOrderMatters(t *testing.T) {
	t.Parallel()
	c := newCast(t)
	post := newDraft(t, c.author)

	// Title change is checked against the status staged earlier in the
	// same call.
	err := post.Update(c.author,
		model.Set(blog.FieldStatus, blog.StatusArchived),
		model.Set(blog.FieldTitle, "Too late"),
	)
	if !domain.IsKind(err, domain.KindValue) {
		t.Errorf("Update(archive, title) error = %v, want value error", err)
	}

	err = post.Update(c.author,
		model.Set(blog.FieldTitle, "Just in time"),
		model.Set(blog.FieldStatus, blog.StatusArchived),
	)
	if err != nil {
		t.Fatalf("Update(title, archive) error = %v", err)
	}
	if post.Title() != "Just in time" || post.Status() != blog.StatusArchived {
		t.Errorf("post = %v", post.Values())
	}
}

func TestPost_UpdateRequiresUpdater(t *testing.T) {
	t.Parallel()
	c := newCast(t)
	post := newDraft(t, c.author)

	for _, by := range []*auth.User{nil, {}} {
		err := post.Update(by, model.Set(blog.FieldBody, "x"))
		var fe *domain.FieldError
		if !errors.As(err, &fe) || fe.Kind != domain.KindValue || fe.Field != blog.FieldUpdatedBy {
			t.Errorf("Update(%#v) error = %v, want value error on updated_by", by, err)
		}
	}
	if post.Body() != "This is my article." {
		t.Errorf("Body() = %q, want unchanged", post.Body())
	}
}

func TestPost_UpdateTypeAndFieldErrors(t *testing.T) {
	t.Parallel()
	c := newCast(t)
	post := newDraft(t, c.author)

	tests := []struct {
		name     string
		change   model.Attr
		wantKind domain.ErrorKind
	}{
		{"body of wrong type", model.Set(blog.FieldBody, 3), domain.KindType},
		{"nil title", model.Set(blog.FieldTitle, nil), domain.KindType},
		{"category of wrong type", model.Set(blog.FieldCategory, "news"), domain.KindType},
		{"unknown field", model.Set("updated_by", c.author), domain.KindConstruction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := post.Update(c.author, tt.change); !domain.IsKind(err, tt.wantKind) {
				t.Errorf("Update() error = %v, want %s error", err, tt.wantKind)
			}
		})
	}
}

func TestPost_UpdateClearsCategory(t *testing.T) {
	t.Parallel()
	c := newCast(t)

	post, err := blog.NewPost(
		model.Set(blog.FieldTitle, "Hello World"),
		model.Set(blog.FieldAuthor, c.author),
		model.Set(blog.FieldCategory, c.category),
	)
	if err != nil {
		t.Fatalf("NewPost() error = %v", err)
	}
	if err := post.Update(c.author, model.Set(blog.FieldCategory, nil)); err != nil {
		t.Fatalf("Update(category=nil) error = %v", err)
	}
	if post.Category() != nil {
		t.Errorf("Category() = %v, want nil", post.Category())
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   blog.Status
		valid    bool
		label    string
		editable bool
	}{
		{blog.StatusDraft, true, "Draft", true},
		{blog.StatusReview, true, "Review", true},
		{blog.StatusPublished, true, "Published", false},
		{blog.StatusArchived, true, "Archived", false},
		{blog.Status(""), false, "", false},
		{blog.Status("D"), false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if got := tt.status.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
			if got := tt.status.TitleEditable(); got != tt.editable {
				t.Errorf("TitleEditable() = %v, want %v", got, tt.editable)
			}
		})
	}
}
