package fixture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/blog-domain/internal/domain/analytics"
	"github.com/jsamuelsen11/blog-domain/internal/domain/auth"
	"github.com/jsamuelsen11/blog-domain/internal/domain/blog"
	"github.com/jsamuelsen11/blog-domain/internal/ports"
)

// Decode reads a fixture document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("decoding fixture: %w", err)
	}
	return &doc, nil
}

// Loader validates fixture records through the domain constructors and stores
// the ones that pass. Records are loaded in dependency order: users,
// categories, posts with their transitions, comments, then views. A record
// whose reference failed to load fails with ErrUnknownReference.
type Loader struct {
	repos  ports.Repositories
	logger *slog.Logger

	users      map[string]*auth.User
	categories map[string]*blog.Category
	posts      map[string]*blog.Post
}

// NewLoader creates a Loader that stores records in repos. A nil logger
// discards output.
func NewLoader(repos ports.Repositories, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		repos:      repos,
		logger:     logger,
		users:      make(map[string]*auth.User),
		categories: make(map[string]*blog.Category),
		posts:      make(map[string]*blog.Post),
	}
}

// Load validates and stores every record of doc. Validation failures are
// collected in the report; the returned error is reserved for repository
// failures, which abort the load.
func (l *Loader) Load(ctx context.Context, doc *Document) (*Report, error) {
	report := &Report{}

	steps := []func(context.Context, *Document, *Report) error{
		l.loadUsers,
		l.loadCategories,
		l.loadPosts,
		l.loadComments,
		l.loadViews,
	}
	for _, step := range steps {
		if err := step(ctx, doc, report); err != nil {
			return report, err
		}
	}

	l.logger.InfoContext(ctx, "fixture loaded",
		slog.Int("records", len(report.Outcomes)),
		slog.Int("failures", len(report.Failures())),
	)
	return report, nil
}

func (l *Loader) loadUsers(ctx context.Context, doc *Document, report *Report) error {
	for i := range doc.Users {
		dto := &doc.Users[i]
		key := keyOr(dto.Key, dto.Username, i)

		if _, dup := l.users[key]; dup {
			l.reject(ctx, report, "user", key, "", fmt.Errorf("user %q: %w", key, ErrDuplicateKey))
			continue
		}

		user, err := auth.NewUser(ToUserAttrs(dto)...)
		if err != nil {
			l.reject(ctx, report, "user", key, "", err)
			continue
		}
		if err := l.repos.Users.Add(ctx, user); err != nil {
			return fmt.Errorf("storing user %q: %w", key, err)
		}

		l.users[key] = user
		report.add("user", key, "", nil)
	}
	return nil
}

func (l *Loader) loadCategories(ctx context.Context, doc *Document, report *Report) error {
	for i := range doc.Categories {
		dto := &doc.Categories[i]
		key := keyOr(dto.Key, dto.Name, i)

		if _, dup := l.categories[key]; dup {
			l.reject(ctx, report, "category", key, "", fmt.Errorf("category %q: %w", key, ErrDuplicateKey))
			continue
		}

		category, err := blog.NewCategory(ToCategoryAttrs(dto)...)
		if err != nil {
			l.reject(ctx, report, "category", key, "", err)
			continue
		}
		if err := l.repos.Categories.Add(ctx, category); err != nil {
			return fmt.Errorf("storing category %q: %w", key, err)
		}

		l.categories[key] = category
		report.add("category", key, "", nil)
	}
	return nil
}

func (l *Loader) loadPosts(ctx context.Context, doc *Document, report *Report) error {
	for i := range doc.Posts {
		dto := &doc.Posts[i]
		key := keyOr(dto.Key, dto.Title, i)

		if _, dup := l.posts[key]; dup {
			l.reject(ctx, report, "post", key, "", fmt.Errorf("post %q: %w", key, ErrDuplicateKey))
			continue
		}

		author, err := l.user(dto.Author)
		if err != nil {
			l.reject(ctx, report, "post", key, "", err)
			continue
		}
		category, err := l.category(dto.Category)
		if err != nil {
			l.reject(ctx, report, "post", key, "", err)
			continue
		}

		post, err := blog.NewPost(ToPostAttrs(dto, author, category)...)
		if err != nil {
			l.reject(ctx, report, "post", key, "", err)
			continue
		}
		if err := l.repos.Posts.Save(ctx, post); err != nil {
			return fmt.Errorf("storing post %q: %w", key, err)
		}
		l.posts[key] = post
		report.add("post", key, "", nil)

		if err := l.applyTransitions(ctx, key, post, dto.Transitions, report); err != nil {
			return err
		}
	}
	return nil
}

// applyTransitions runs each transition as one Post.Update. A rejected
// transition leaves the post as the previous one did; later transitions
// still run.
func (l *Loader) applyTransitions(
	ctx context.Context, key string, post *blog.Post, transitions []TransitionDTO, report *Report,
) error {
	for j := range transitions {
		tr := &transitions[j]
		step := "transition " + strconv.Itoa(j+1)

		by, err := l.user(tr.By)
		if err != nil {
			l.reject(ctx, report, "post", key, step, err)
			continue
		}

		var category *blog.Category
		if tr.Category != nil {
			if category, err = l.category(*tr.Category); err != nil {
				l.reject(ctx, report, "post", key, step, err)
				continue
			}
		}

		if err := post.Update(by, ToPostChanges(tr, category)...); err != nil {
			l.reject(ctx, report, "post", key, step, err)
			continue
		}
		if err := l.repos.Posts.Save(ctx, post); err != nil {
			return fmt.Errorf("storing post %q after %s: %w", key, step, err)
		}
		report.add("post", key, step, nil)
	}
	return nil
}

func (l *Loader) loadComments(ctx context.Context, doc *Document, report *Report) error {
	for i := range doc.Comments {
		dto := &doc.Comments[i]
		key := "#" + strconv.Itoa(i+1)

		post, user, err := l.postAndUser(dto.Post, dto.User)
		if err != nil {
			l.reject(ctx, report, "comment", key, "", err)
			continue
		}

		comment, err := blog.NewComment(ToCommentAttrs(dto, post, user)...)
		if err != nil {
			l.reject(ctx, report, "comment", key, "", err)
			continue
		}
		if err := l.repos.Comments.Add(ctx, comment); err != nil {
			return fmt.Errorf("storing comment %s: %w", key, err)
		}
		report.add("comment", key, "", nil)
	}
	return nil
}

func (l *Loader) loadViews(ctx context.Context, doc *Document, report *Report) error {
	for i := range doc.Views {
		dto := &doc.Views[i]
		key := "#" + strconv.Itoa(i+1)

		post, user, err := l.postAndUser(dto.Post, dto.User)
		if err != nil {
			l.reject(ctx, report, "view", key, "", err)
			continue
		}

		view, err := analytics.NewView(ToViewAttrs(dto, post, user)...)
		if err != nil {
			l.reject(ctx, report, "view", key, "", err)
			continue
		}
		if err := l.repos.Views.Add(ctx, view); err != nil {
			return fmt.Errorf("storing view %s: %w", key, err)
		}
		report.add("view", key, "", nil)
	}
	return nil
}

func (l *Loader) reject(ctx context.Context, report *Report, entity, key, step string, err error) {
	l.logger.WarnContext(ctx, "fixture record rejected",
		slog.String("entity", entity),
		slog.String("key", key),
		slog.String("step", step),
		slog.Any("error", err),
	)
	report.add(entity, key, step, err)
}

// user resolves a user key. An empty key resolves to nil so the domain
// constructor reports the missing field.
func (l *Loader) user(key string) (*auth.User, error) {
	if key == "" {
		return nil, nil
	}
	u, ok := l.users[key]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", key, ErrUnknownReference)
	}
	return u, nil
}

func (l *Loader) category(key string) (*blog.Category, error) {
	if key == "" {
		return nil, nil
	}
	c, ok := l.categories[key]
	if !ok {
		return nil, fmt.Errorf("category %q: %w", key, ErrUnknownReference)
	}
	return c, nil
}

func (l *Loader) postAndUser(postKey, userKey string) (*blog.Post, *auth.User, error) {
	var post *blog.Post
	if postKey != "" {
		p, ok := l.posts[postKey]
		if !ok {
			return nil, nil, fmt.Errorf("post %q: %w", postKey, ErrUnknownReference)
		}
		post = p
	}
	user, err := l.user(userKey)
	if err != nil {
		return nil, nil, err
	}
	return post, user, nil
}

// keyOr returns key, else fallback, else the 1-based record position.
func keyOr(key, fallback string, i int) string {
	switch {
	case key != "":
		return key
	case fallback != "":
		return fallback
	default:
		return "#" + strconv.Itoa(i+1)
	}
}
