// Package fixture loads blog data from YAML documents. Records reference each
// other by key rather than primary key; the loader resolves keys against the
// records it has already stored.
package fixture

import "time"

// Document is the top-level fixture file.
type Document struct {
	Users      []UserDTO     `yaml:"users"`
	Categories []CategoryDTO `yaml:"categories"`
	Posts      []PostDTO     `yaml:"posts"`
	Comments   []CommentDTO  `yaml:"comments"`
	Views      []ViewDTO     `yaml:"views"`
}

// UserDTO describes a user. Key defaults to Username. Keys not listed here
// are collected in Extra and passed on as entity fields, so a misspelt field
// is reported instead of silently dropped.
type UserDTO struct {
	Key         string         `yaml:"key"`
	Username    string         `yaml:"username"`
	Password    string         `yaml:"password"`
	Email       string         `yaml:"email"`
	FirstName   string         `yaml:"first_name"`
	LastName    string         `yaml:"last_name"`
	IsActive    bool           `yaml:"is_active"`
	IsAuthor    bool           `yaml:"is_author"`
	IsModerator bool           `yaml:"is_moderator"`
	Extra       map[string]any `yaml:",inline"`
}

// CategoryDTO describes a category. Key defaults to Name.
type CategoryDTO struct {
	Key   string         `yaml:"key"`
	Name  string         `yaml:"name"`
	Extra map[string]any `yaml:",inline"`
}

// PostDTO describes a post. Posts are created as drafts by Author, then
// Transitions are applied in order. Key defaults to Title.
type PostDTO struct {
	Key         string          `yaml:"key"`
	Title       string          `yaml:"title"`
	Author      string          `yaml:"author"`
	Category    string          `yaml:"category"`
	Status      string          `yaml:"status"`
	Body        string          `yaml:"body"`
	Transitions []TransitionDTO `yaml:"transitions"`
	Extra       map[string]any  `yaml:",inline"`
}

// TransitionDTO is one Post.Update call. Unset fields are not changed.
type TransitionDTO struct {
	By       string  `yaml:"by"`
	Status   *string `yaml:"status"`
	Title    *string `yaml:"title"`
	Body     *string `yaml:"body"`
	Category *string `yaml:"category"`
}

// CommentDTO describes a comment on a post.
type CommentDTO struct {
	Post      string         `yaml:"post"`
	User      string         `yaml:"user"`
	Body      string         `yaml:"body"`
	CreatedAt *time.Time     `yaml:"created_at"`
	Extra     map[string]any `yaml:",inline"`
}

// ViewDTO describes a view of a post.
type ViewDTO struct {
	Post     string     `yaml:"post"`
	User     string     `yaml:"user"`
	ViewedAt *time.Time `yaml:"viewed_at"`
}
