package memory

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"github.com/jsamuelsen11/blog-domain/internal/domain"
	"github.com/jsamuelsen11/blog-domain/internal/domain/analytics"
	"github.com/jsamuelsen11/blog-domain/internal/domain/auth"
	"github.com/jsamuelsen11/blog-domain/internal/domain/blog"
	"github.com/jsamuelsen11/blog-domain/internal/ports"
)

// ErrDuplicateKey is returned when adding a row whose primary key is taken.
var ErrDuplicateKey = errors.New("duplicate primary key")

// Compile-time interface checks.
var (
	_ ports.UserRepository     = (*UserRepository)(nil)
	_ ports.CategoryRepository = (*CategoryRepository)(nil)
	_ ports.PostRepository     = (*PostRepository)(nil)
	_ ports.CommentRepository  = (*CommentRepository)(nil)
	_ ports.ViewRepository     = (*ViewRepository)(nil)
)

// UserRepository implements [ports.UserRepository].
type UserRepository struct {
	t *table[*auth.User]
}

// NewUserRepository creates an empty user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{t: newTable[*auth.User]()}
}

// Get returns the user with the given primary key.
func (r *UserRepository) Get(ctx context.Context, pk int64) (*auth.User, error) {
	return r.t.get(ctx, pk)
}

// Add stores a new user.
func (r *UserRepository) Add(ctx context.Context, user *auth.User) error {
	return r.t.insert(ctx, user)
}

// CategoryRepository implements [ports.CategoryRepository].
type CategoryRepository struct {
	t *table[*blog.Category]
}

// NewCategoryRepository creates an empty category repository.
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{t: newTable[*blog.Category]()}
}

// Get returns the category with the given primary key.
func (r *CategoryRepository) Get(ctx context.Context, pk int64) (*blog.Category, error) {
	return r.t.get(ctx, pk)
}

// Add stores a new category.
func (r *CategoryRepository) Add(ctx context.Context, category *blog.Category) error {
	return r.t.insert(ctx, category)
}

// PostRepository implements [ports.PostRepository].
type PostRepository struct {
	t *table[*blog.Post]
}

// NewPostRepository creates an empty post repository.
func NewPostRepository() *PostRepository {
	return &PostRepository{t: newTable[*blog.Post]()}
}

// Get returns the post with the given primary key.
func (r *PostRepository) Get(ctx context.Context, pk int64) (*blog.Post, error) {
	return r.t.get(ctx, pk)
}

// ListPublished returns published posts, newest publication first. Posts
// published at the same instant keep insertion order.
func (r *PostRepository) ListPublished(ctx context.Context) ([]*blog.Post, error) {
	posts, err := r.t.scan(ctx, (*blog.Post).IsPublished)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(posts, func(a, b *blog.Post) int {
		return b.PublishedAt().Compare(a.PublishedAt())
	})
	return posts, nil
}

// Save inserts a new post or replaces a stored one.
func (r *PostRepository) Save(ctx context.Context, post *blog.Post) error {
	if post.IsNew() {
		return r.t.insert(ctx, post)
	}
	return r.t.replace(ctx, post)
}

// CommentRepository implements [ports.CommentRepository].
type CommentRepository struct {
	t *table[*blog.Comment]
}

// NewCommentRepository creates an empty comment repository.
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{t: newTable[*blog.Comment]()}
}

// ListByPost returns the comments on a post, oldest first.
func (r *CommentRepository) ListByPost(ctx context.Context, postPK int64) ([]*blog.Comment, error) {
	comments, err := r.t.scan(ctx, func(c *blog.Comment) bool {
		return c.Post().PK() == postPK
	})
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(comments, func(a, b *blog.Comment) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	})
	return comments, nil
}

// Add stores a new comment.
func (r *CommentRepository) Add(ctx context.Context, comment *blog.Comment) error {
	return r.t.insert(ctx, comment)
}

// ViewRepository implements [ports.ViewRepository].
type ViewRepository struct {
	t *table[*analytics.View]
}

// NewViewRepository creates an empty view repository.
func NewViewRepository() *ViewRepository {
	return &ViewRepository{t: newTable[*analytics.View]()}
}

// CountByPost returns how many views a post has.
func (r *ViewRepository) CountByPost(ctx context.Context, postPK int64) (int, error) {
	views, err := r.t.scan(ctx, func(v *analytics.View) bool {
		return v.Post().PK() == postPK
	})
	if err != nil {
		return 0, err
	}
	return len(views), nil
}

// LatestByPostAndUser returns a user's most recent view of a post.
func (r *ViewRepository) LatestByPostAndUser(ctx context.Context, postPK, userPK int64) (*analytics.View, error) {
	views, err := r.t.scan(ctx, func(v *analytics.View) bool {
		return v.Post().PK() == postPK && v.User().PK() == userPK
	})
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, domain.ErrNotFound
	}
	return slices.MaxFunc(views, func(a, b *analytics.View) int {
		return cmp.Or(a.ViewedAt().Compare(b.ViewedAt()), cmp.Compare(a.PK(), b.PK()))
	}), nil
}

// Add stores a new view.
func (r *ViewRepository) Add(ctx context.Context, view *analytics.View) error {
	return r.t.insert(ctx, view)
}
