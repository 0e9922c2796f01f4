// Package memory provides thread-safe in-memory implementations of the
// repository ports. Entities are stored by reference, so a caller that
// mutates a returned entity mutates the stored one.
package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/blog-domain/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthChecker = (*Store)(nil)

// Store groups one repository per entity and checks their referential
// integrity.
type Store struct {
	Users      *UserRepository
	Categories *CategoryRepository
	Posts      *PostRepository
	Comments   *CommentRepository
	Views      *ViewRepository
}

// NewStore creates a store with empty repositories.
func NewStore() *Store {
	return &Store{
		Users:      NewUserRepository(),
		Categories: NewCategoryRepository(),
		Posts:      NewPostRepository(),
		Comments:   NewCommentRepository(),
		Views:      NewViewRepository(),
	}
}

// Name implements [ports.HealthChecker].
func (s *Store) Name() string {
	return "memory-store"
}

// HealthCheck reports every stored reference that points at an entity the
// store does not hold: post authors and categories, comment posts and
// users, view posts and users.
func (s *Store) HealthCheck(ctx context.Context) error {
	var errs []error

	posts, err := s.Posts.t.scan(ctx, nil)
	if err != nil {
		return err
	}
	for _, p := range posts {
		if !s.Users.t.has(p.Author().PK()) {
			errs = append(errs, fmt.Errorf("post %d: author %d not stored", p.PK(), p.Author().PK()))
		}
		if c := p.Category(); c != nil && !s.Categories.t.has(c.PK()) {
			errs = append(errs, fmt.Errorf("post %d: category %d not stored", p.PK(), c.PK()))
		}
	}

	comments, err := s.Comments.t.scan(ctx, nil)
	if err != nil {
		return err
	}
	for _, c := range comments {
		if !s.Posts.t.has(c.Post().PK()) {
			errs = append(errs, fmt.Errorf("comment %d: post %d not stored", c.PK(), c.Post().PK()))
		}
		if !s.Users.t.has(c.User().PK()) {
			errs = append(errs, fmt.Errorf("comment %d: user %d not stored", c.PK(), c.User().PK()))
		}
	}

	views, err := s.Views.t.scan(ctx, nil)
	if err != nil {
		return err
	}
	for _, v := range views {
		if !s.Posts.t.has(v.Post().PK()) {
			errs = append(errs, fmt.Errorf("view %d: post %d not stored", v.PK(), v.Post().PK()))
		}
		if !s.Users.t.has(v.User().PK()) {
			errs = append(errs, fmt.Errorf("view %d: user %d not stored", v.PK(), v.User().PK()))
		}
	}

	return errors.Join(errs...)
}

// Repositories returns the store's repositories as ports.
func (s *Store) Repositories() ports.Repositories {
	return ports.Repositories{
		Users:      s.Users,
		Categories: s.Categories,
		Posts:      s.Posts,
		Comments:   s.Comments,
		Views:      s.Views,
	}
}

// Counts returns the number of stored rows per entity name.
func (s *Store) Counts() map[string]int {
	return map[string]int{
		"users":      s.Users.t.count(),
		"categories": s.Categories.t.count(),
		"posts":      s.Posts.t.count(),
		"comments":   s.Comments.t.count(),
		"views":      s.Views.t.count(),
	}
}
