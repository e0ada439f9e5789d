package rpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
)

//go:generate zenrpc

// BlogService provides the public read API of the blog.
type BlogService struct {
	zenrpc.Service
	manager *blogportal.Manager
	logger  *slog.Logger
}

func NewBlogService(manager *blogportal.Manager, logger *slog.Logger) *BlogService {
	return &BlogService{manager: manager, logger: logger}
}

// Posts returns a page of published posts, newest first.
//
//zenrpc:filter posts filter
//zenrpc:return page of post summaries
//zenrpc:400 invalid filter
//zenrpc:500 internal server error
func (s *BlogService) Posts(ctx context.Context, filter PostsFilter) (*PostPage, error) {
	page, err := s.manager.Posts(ctx, filter.ToModel())
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return NewPostPage(page), nil
}

// PostBySlug returns a published post with its approved comments and related posts.
// Each call counts a view.
//
//zenrpc:slug post slug
//zenrpc:return post with comments
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *BlogService) PostBySlug(ctx context.Context, slug string) (*PostView, error) {
	if slug == "" {
		return nil, zenrpc.NewStringError(400, "slug is required")
	}

	view, err := s.manager.ViewPost(ctx, slug)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return NewPostView(view), nil
}

// Home returns featured and recent posts with the taxonomy.
//
//zenrpc:return home page
//zenrpc:500 internal server error
func (s *BlogService) Home(ctx context.Context) (*HomePage, error) {
	home, err := s.manager.Home(ctx)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return NewHomePage(home), nil
}

// Categories returns all categories ordered by name.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *BlogService) Categories(ctx context.Context) ([]Category, error) {
	list, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return Map(list, NewCategory), nil
}

// Tags returns all tags ordered by name.
//
//zenrpc:return list of tags
//zenrpc:500 internal server error
func (s *BlogService) Tags(ctx context.Context) ([]Tag, error) {
	list, err := s.manager.Tags(ctx)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return Map(list, NewTag), nil
}

// Subscribe adds an email to the newsletter.
//
//zenrpc:email subscriber email
//zenrpc:return true when subscribed
//zenrpc:400 invalid email
//zenrpc:409 email already subscribed
//zenrpc:500 internal server error
func (s *BlogService) Subscribe(ctx context.Context, email string) (bool, error) {
	if err := s.manager.Subscribe(ctx, email); err != nil {
		return false, s.rpcError(ctx, err)
	}

	return true, nil
}

// rpcError converts a manager error into a zenrpc error.
func (s *BlogService) rpcError(ctx context.Context, err error) error {
	var verr *blogportal.ValidationError

	switch {
	case errors.As(err, &verr):
		return zenrpc.NewStringError(400, verr.Error())
	case errors.Is(err, blogportal.ErrNotFound):
		return zenrpc.NewStringError(404, "not found")
	case errors.Is(err, blogportal.ErrDuplicateSubscriber):
		return zenrpc.NewStringError(409, blogportal.ErrDuplicateSubscriber.Error())
	}

	s.logger.ErrorContext(ctx, "rpc call failed", "error", err)
	return zenrpc.NewStringError(500, "internal error")
}
