package ports

import (
	"context"

	"github.com/jsamuelsen11/blog-domain/internal/domain/analytics"
	"github.com/jsamuelsen11/blog-domain/internal/domain/auth"
	"github.com/jsamuelsen11/blog-domain/internal/domain/blog"
)

// UserRepository stores users.
type UserRepository interface {
	// Get returns the user with the given primary key.
	// Returns domain.ErrNotFound if the user does not exist.
	Get(ctx context.Context, pk int64) (*auth.User, error)

	// Add stores a new user and assigns its primary key.
	Add(ctx context.Context, user *auth.User) error
}

// CategoryRepository stores categories.
type CategoryRepository interface {
	// Get returns the category with the given primary key.
	// Returns domain.ErrNotFound if the category does not exist.
	Get(ctx context.Context, pk int64) (*blog.Category, error)

	// Add stores a new category and assigns its primary key.
	Add(ctx context.Context, category *blog.Category) error
}

// PostRepository stores posts.
type PostRepository interface {
	// Get returns the post with the given primary key.
	// Returns domain.ErrNotFound if the post does not exist.
	Get(ctx context.Context, pk int64) (*blog.Post, error)

	// ListPublished returns published posts, newest publication first.
	ListPublished(ctx context.Context) ([]*blog.Post, error)

	// Save inserts a new post (assigning its primary key) or replaces the
	// stored post with the same key.
	// Returns domain.ErrNotFound when replacing a post that does not exist.
	Save(ctx context.Context, post *blog.Post) error
}

// CommentRepository stores comments.
type CommentRepository interface {
	// ListByPost returns the comments on a post, oldest first.
	ListByPost(ctx context.Context, postPK int64) ([]*blog.Comment, error)

	// Add stores a new comment and assigns its primary key.
	Add(ctx context.Context, comment *blog.Comment) error
}

// ViewRepository stores post views.
type ViewRepository interface {
	// CountByPost returns how many views a post has.
	CountByPost(ctx context.Context, postPK int64) (int, error)

	// LatestByPostAndUser returns a user's most recent view of a post.
	// Returns domain.ErrNotFound if the user never viewed the post.
	LatestByPostAndUser(ctx context.Context, postPK, userPK int64) (*analytics.View, error)

	// Add stores a new view and assigns its primary key.
	Add(ctx context.Context, view *analytics.View) error
}

// Repositories groups one repository per entity.
type Repositories struct {
	Users      UserRepository
	Categories CategoryRepository
	Posts      PostRepository
	Comments   CommentRepository
	Views      ViewRepository
}
