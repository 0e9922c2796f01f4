package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/blog-domain/internal/domain/model"
)

// BlogService defines the service port for reading and writing the blog.
// Implemented by the application layer; called by inbound adapters.
type BlogService interface {
	// ListPosts returns a summary of every published post.
	ListPosts(ctx context.Context) ([]PostSummary, error)

	// ListPopularPosts returns published posts ordered by view count,
	// highest first, truncated to the configured limit.
	ListPopularPosts(ctx context.Context) ([]PopularPost, error)

	// GetPost returns a post with its comments and view count. A view is
	// recorded for viewerPK unless the viewer wrote the post or already
	// viewed it within the configured window.
	// Returns domain.ErrNotFound if the post or viewer does not exist.
	GetPost(ctx context.Context, postPK, viewerPK int64) (*PostDetail, error)

	// CreateComment adds a comment by userPK to a post.
	// Returns domain.ErrNotFound if the post or user does not exist.
	CreateComment(ctx context.Context, postPK, userPK int64, body string) (*CommentDetail, error)

	// CreatePost creates a draft post. categoryPK may be zero for an
	// uncategorized post.
	// Returns a domain value error if the author may not write posts.
	CreatePost(ctx context.Context, authorPK int64, title, body string, categoryPK int64) (*PostDetail, error)

	// UpdatePost applies changes to a post on behalf of updatedByPK and
	// persists the result. The post is not saved when any change fails.
	UpdatePost(ctx context.Context, postPK, updatedByPK int64, changes ...model.Attr) (*PostDetail, error)
}

// PostSummary is one row of the post listing.
type PostSummary struct {
	PK          int64     `json:"pk"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
	Category    string    `json:"category,omitempty"`
}

// PopularPost is a post summary with its view count.
type PopularPost struct {
	PostSummary
	Views int `json:"views"`
}

// CommentDetail is a rendered comment. UserName is the commenter's full
// name.
type CommentDetail struct {
	PK        int64     `json:"pk"`
	PostPK    int64     `json:"post_pk"`
	UserName  string    `json:"user_name"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// PostDetail is a full post with its comments and view count.
type PostDetail struct {
	PK          int64           `json:"pk"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Category    string          `json:"category,omitempty"`
	Status      string          `json:"status"`
	Body        string          `json:"body"`
	PublishedAt time.Time       `json:"published_at,omitzero"`
	Comments    []CommentDetail `json:"comments"`
	Views       int             `json:"views"`
	CreatedAt   time.Time       `json:"created_at,omitzero"`
	UpdatedAt   time.Time       `json:"updated_at,omitzero"`
}
