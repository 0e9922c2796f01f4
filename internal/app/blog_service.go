// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/blog-domain/internal/app/fanout"
	"github.com/jsamuelsen11/blog-domain/internal/domain"
	"github.com/jsamuelsen11/blog-domain/internal/domain/analytics"
	"github.com/jsamuelsen11/blog-domain/internal/domain/auth"
	"github.com/jsamuelsen11/blog-domain/internal/domain/blog"
	"github.com/jsamuelsen11/blog-domain/internal/domain/model"
	"github.com/jsamuelsen11/blog-domain/internal/platform/telemetry"
	"github.com/jsamuelsen11/blog-domain/internal/ports"
)

const (
	tracerName = "github.com/jsamuelsen11/blog-domain/internal/app"

	defaultPopularLimit = 10
	defaultViewWindow   = 5 * time.Minute

	// countWorkers bounds concurrent view counts in ListPopularPosts.
	countWorkers = 8
)

// Compile-time check that BlogService implements ports.BlogService.
var _ ports.BlogService = (*BlogService)(nil)

// BlogService implements ports.BlogService. Business rules live in the
// domain entities; the service loads them, runs the rules and persists the
// outcome.
type BlogService struct {
	repos   ports.Repositories
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *telemetry.Metrics

	popularLimit int
	viewWindow   time.Duration
	now          func() time.Time
}

// Option configures a BlogService.
type Option func(*BlogService)

// WithPopularLimit caps ListPopularPosts. Non-positive values are ignored.
func WithPopularLimit(n int) Option {
	return func(s *BlogService) {
		if n > 0 {
			s.popularLimit = n
		}
	}
}

// WithViewWindow sets how long a repeat view by the same user is not
// recorded.
func WithViewWindow(d time.Duration) Option {
	return func(s *BlogService) {
		s.viewWindow = d
	}
}

// WithMetrics records operation counters and durations.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *BlogService) {
		s.metrics = m
	}
}

// WithClock replaces time.Now for timestamps and the view window.
func WithClock(now func() time.Time) Option {
	return func(s *BlogService) {
		s.now = now
	}
}

// NewBlogService creates a BlogService. A nil logger discards output.
func NewBlogService(repos ports.Repositories, logger *slog.Logger, opts ...Option) *BlogService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &BlogService{
		repos:        repos,
		logger:       logger,
		tracer:       otel.Tracer(tracerName),
		popularLimit: defaultPopularLimit,
		viewWindow:   defaultViewWindow,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListPosts returns a summary of every published post, newest first.
func (s *BlogService) ListPosts(ctx context.Context) (_ []ports.PostSummary, err error) {
	ctx, op := s.start(ctx, "ListPosts")
	defer func() { s.finish(ctx, op, err) }()

	s.logger.InfoContext(ctx, "listing posts")

	posts, err := s.repos.Posts.ListPublished(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list posts",
			slog.String("operation", "ListPosts"),
			slog.Any("error", err),
		)
		return nil, err
	}

	out := make([]ports.PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, summarize(p))
	}
	return out, nil
}

// ListPopularPosts returns published posts ordered by view count, highest
// first, truncated to the popular limit. Posts with equal counts keep the
// ListPosts order.
func (s *BlogService) ListPopularPosts(ctx context.Context) (_ []ports.PopularPost, err error) {
	ctx, op := s.start(ctx, "ListPopularPosts")
	defer func() { s.finish(ctx, op, err) }()

	s.logger.InfoContext(ctx, "listing popular posts", slog.Int("limit", s.popularLimit))

	posts, err := s.repos.Posts.ListPublished(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list posts",
			slog.String("operation", "ListPopularPosts"),
			slog.Any("error", err),
		)
		return nil, err
	}

	counts, err := fanout.Collect(fanout.Run(ctx, countWorkers, posts,
		func(ctx context.Context, p *blog.Post) (int, error) {
			n, err := s.repos.Views.CountByPost(ctx, p.PK())
			if err != nil {
				return 0, fmt.Errorf("counting views of post %d: %w", p.PK(), err)
			}
			return n, nil
		}))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to count views",
			slog.String("operation", "ListPopularPosts"),
			slog.Any("error", err),
		)
		return nil, err
	}

	out := make([]ports.PopularPost, len(posts))
	for i, p := range posts {
		out[i] = ports.PopularPost{PostSummary: summarize(p), Views: counts[i]}
	}

	slices.SortStableFunc(out, func(a, b ports.PopularPost) int {
		return cmp.Compare(b.Views, a.Views)
	})
	if len(out) > s.popularLimit {
		out = out[:s.popularLimit]
	}
	return out, nil
}

// GetPost returns a post with its comments and view count, recording a view
// for the viewer first when one is due.
func (s *BlogService) GetPost(ctx context.Context, postPK, viewerPK int64) (_ *ports.PostDetail, err error) {
	ctx, op := s.start(ctx, "GetPost",
		attribute.Int64("blog.post_pk", postPK),
		attribute.Int64("blog.viewer_pk", viewerPK),
	)
	defer func() { s.finish(ctx, op, err) }()

	s.logger.InfoContext(ctx, "fetching post",
		slog.Int64("post_pk", postPK),
		slog.Int64("viewer_pk", viewerPK),
	)

	post, err := s.repos.Posts.Get(ctx, postPK)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch post",
			slog.String("operation", "GetPost"),
			slog.Int64("post_pk", postPK),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading post: %w", err)
	}

	viewer, err := s.repos.Users.Get(ctx, viewerPK)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch viewer",
			slog.String("operation", "GetPost"),
			slog.Int64("viewer_pk", viewerPK),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading viewer: %w", err)
	}

	if err := s.recordView(ctx, post, viewer); err != nil {
		s.logger.ErrorContext(ctx, "failed to record view",
			slog.String("operation", "GetPost"),
			slog.Int64("post_pk", postPK),
			slog.Int64("viewer_pk", viewerPK),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("recording view: %w", err)
	}

	return s.detail(ctx, post, "GetPost")
}

// recordView adds a view unless the viewer wrote the post or their latest
// view of it is inside the view window.
func (s *BlogService) recordView(ctx context.Context, post *blog.Post, viewer *auth.User) error {
	if viewer.Equal(post.Author().Entity) {
		return nil
	}

	now := s.now().UTC()
	latest, err := s.repos.Views.LatestByPostAndUser(ctx, post.PK(), viewer.PK())
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return err
	case latest.Within(s.viewWindow, now):
		s.logger.DebugContext(ctx, "view inside window, not recorded",
			slog.Int64("post_pk", post.PK()),
			slog.Int64("viewer_pk", viewer.PK()),
		)
		return nil
	}

	view, err := analytics.NewView(
		model.Set(analytics.FieldPost, post),
		model.Set(analytics.FieldUser, viewer),
		model.Set(analytics.FieldViewedAt, now),
	)
	if err != nil {
		return err
	}
	if err := s.repos.Views.Add(ctx, view); err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.ViewsRecorded.Add(ctx, 1)
	}
	return nil
}

// CreateComment adds a comment by userPK to a post.
func (s *BlogService) CreateComment(ctx context.Context, postPK, userPK int64, body string) (_ *ports.CommentDetail, err error) {
	ctx, op := s.start(ctx, "CreateComment",
		attribute.Int64("blog.post_pk", postPK),
		attribute.Int64("blog.user_pk", userPK),
	)
	defer func() { s.finish(ctx, op, err) }()

	s.logger.InfoContext(ctx, "creating comment",
		slog.Int64("post_pk", postPK),
		slog.Int64("user_pk", userPK),
	)

	post, err := s.repos.Posts.Get(ctx, postPK)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch post",
			slog.String("operation", "CreateComment"),
			slog.Int64("post_pk", postPK),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading post: %w", err)
	}

	user, err := s.repos.Users.Get(ctx, userPK)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch user",
			slog.String("operation", "CreateComment"),
			slog.Int64("user_pk", userPK),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading user: %w", err)
	}

	comment, err := blog.NewComment(
		model.Set(blog.FieldPost, post),
		model.Set(blog.FieldUser, user),
		model.Set(blog.FieldBody, body),
		model.Set(blog.FieldCreatedAt, s.now().UTC()),
	)
	if err != nil {
		return nil, err
	}

	if err := s.repos.Comments.Add(ctx, comment); err != nil {
		s.logger.ErrorContext(ctx, "failed to store comment",
			slog.String("operation", "CreateComment"),
			slog.Int64("post_pk", postPK),
			slog.Int64("user_pk", userPK),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("storing comment: %w", err)
	}

	if s.metrics != nil {
		s.metrics.CommentsCreated.Add(ctx, 1)
	}

	detail := commentDetail(comment)
	return &detail, nil
}

// CreatePost creates a draft post. categoryPK may be zero.
func (s *BlogService) CreatePost(
	ctx context.Context, authorPK int64, title, body string, categoryPK int64,
) (_ *ports.PostDetail, err error) {
	ctx, op := s.start(ctx, "CreatePost", attribute.Int64("blog.author_pk", authorPK))
	defer func() { s.finish(ctx, op, err) }()

	s.logger.InfoContext(ctx, "creating post",
		slog.Int64("author_pk", authorPK),
		slog.String("title", title),
	)

	author, err := s.repos.Users.Get(ctx, authorPK)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch author",
			slog.String("operation", "CreatePost"),
			slog.Int64("author_pk", authorPK),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading author: %w", err)
	}

	now := s.now().UTC()
	attrs := []model.Attr{
		model.Set(blog.FieldTitle, title),
		model.Set(blog.FieldAuthor, author),
		model.Set(blog.FieldBody, body),
		model.Set(blog.FieldCreatedAt, now),
		model.Set(blog.FieldUpdatedAt, now),
	}

	if categoryPK != 0 {
		category, err := s.repos.Categories.Get(ctx, categoryPK)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to fetch category",
				slog.String("operation", "CreatePost"),
				slog.Int64("category_pk", categoryPK),
				slog.Any("error", err),
			)
			return nil, fmt.Errorf("loading category: %w", err)
		}
		attrs = append(attrs, model.Set(blog.FieldCategory, category))
	}

	post, err := blog.NewPost(attrs...)
	if err != nil {
		return nil, err
	}

	if err := s.repos.Posts.Save(ctx, post); err != nil {
		s.logger.ErrorContext(ctx, "failed to store post",
			slog.String("operation", "CreatePost"),
			slog.Int64("author_pk", authorPK),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("storing post: %w", err)
	}

	return s.detail(ctx, post, "CreatePost")
}

// UpdatePost applies changes to a post on behalf of updatedByPK and saves
// it. updated_at is stamped as part of the same change set, so a rejected
// change leaves the post untouched and unsaved.
func (s *BlogService) UpdatePost(
	ctx context.Context, postPK, updatedByPK int64, changes ...model.Attr,
) (_ *ports.PostDetail, err error) {
	ctx, op := s.start(ctx, "UpdatePost",
		attribute.Int64("blog.post_pk", postPK),
		attribute.Int64("blog.updated_by_pk", updatedByPK),
	)
	defer func() { s.finish(ctx, op, err) }()

	s.logger.InfoContext(ctx, "updating post",
		slog.Int64("post_pk", postPK),
		slog.Int64("updated_by_pk", updatedByPK),
		slog.Int("changes", len(changes)),
	)

	post, err := s.repos.Posts.Get(ctx, postPK)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch post",
			slog.String("operation", "UpdatePost"),
			slog.Int64("post_pk", postPK),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading post: %w", err)
	}

	updatedBy, err := s.repos.Users.Get(ctx, updatedByPK)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch updater",
			slog.String("operation", "UpdatePost"),
			slog.Int64("updated_by_pk", updatedByPK),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading updater: %w", err)
	}

	wasPublished := post.IsPublished()
	stamped := append(slices.Clip(changes), model.Set(blog.FieldUpdatedAt, s.now().UTC()))
	if err := post.Update(updatedBy, stamped...); err != nil {
		return nil, err
	}

	if err := s.repos.Posts.Save(ctx, post); err != nil {
		s.logger.ErrorContext(ctx, "failed to store post",
			slog.String("operation", "UpdatePost"),
			slog.Int64("post_pk", postPK),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("storing post: %w", err)
	}

	if !wasPublished && post.IsPublished() {
		s.logger.InfoContext(ctx, "post published",
			slog.Int64("post_pk", postPK),
			slog.Any("moderator", updatedBy),
		)
		if s.metrics != nil {
			s.metrics.PostsPublished.Add(ctx, 1)
		}
	}

	return s.detail(ctx, post, "UpdatePost")
}

// detail loads the comments and view count of a post.
func (s *BlogService) detail(ctx context.Context, post *blog.Post, op string) (*ports.PostDetail, error) {
	comments, err := s.repos.Comments.ListByPost(ctx, post.PK())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list comments",
			slog.String("operation", op),
			slog.Int64("post_pk", post.PK()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	views, err := s.repos.Views.CountByPost(ctx, post.PK())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to count views",
			slog.String("operation", op),
			slog.Int64("post_pk", post.PK()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("counting views: %w", err)
	}

	d := &ports.PostDetail{
		PK:          post.PK(),
		Title:       post.Title(),
		Author:      post.Author().FullName(),
		Status:      post.Status().Label(),
		Body:        post.Body(),
		PublishedAt: post.PublishedAt(),
		Comments:    make([]ports.CommentDetail, 0, len(comments)),
		Views:       views,
		CreatedAt:   post.CreatedAt(),
		UpdatedAt:   post.UpdatedAt(),
	}
	if c := post.Category(); c != nil {
		d.Category = c.Name()
	}
	for _, c := range comments {
		d.Comments = append(d.Comments, commentDetail(c))
	}
	return d, nil
}

// operation is one traced and timed service call.
type operation struct {
	name  string
	span  trace.Span
	began time.Time
}

func (s *BlogService) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, *operation) {
	ctx, span := s.tracer.Start(ctx, "BlogService."+name, trace.WithAttributes(attrs...))
	return ctx, &operation{name: name, span: span, began: time.Now()}
}

// finish ends the operation span and records its duration. Domain rule
// violations are reported as "rejected" rather than "error".
func (s *BlogService) finish(ctx context.Context, op *operation, err error) {
	result := "ok"
	switch kind := domain.KindOf(err); {
	case kind != "":
		result = "rejected"
		op.span.SetAttributes(attribute.String("blog.error_kind", kind.String()))
	case err != nil:
		result = "error"
		op.span.RecordError(err)
		op.span.SetStatus(codes.Error, err.Error())
	}
	op.span.End()

	if s.metrics != nil {
		s.metrics.OperationDuration.Record(ctx, time.Since(op.began).Seconds(),
			metric.WithAttributes(
				telemetry.AttrOperation.String(op.name),
				telemetry.AttrResult.String(result),
			))
	}
}

func summarize(p *blog.Post) ports.PostSummary {
	s := ports.PostSummary{
		PK:          p.PK(),
		Title:       p.Title(),
		Author:      p.Author().FullName(),
		PublishedAt: p.PublishedAt(),
	}
	if c := p.Category(); c != nil {
		s.Category = c.Name()
	}
	return s
}

func commentDetail(c *blog.Comment) ports.CommentDetail {
	return ports.CommentDetail{
		PK:        c.PK(),
		PostPK:    c.Post().PK(),
		UserName:  c.User().FullName(),
		Body:      c.Body(),
		CreatedAt: c.CreatedAt(),
	}
}
