package blogportal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
	"github.com/daniilsolovey/blog-portal/internal/media"
)

// Posts returns a page of published posts matching the filter, newest first.
func (m *Manager) Posts(ctx context.Context, filter PostFilter) (*PostPage, error) {
	filter.normalize()

	list, total, err := m.db.Posts(ctx, db.PostSearch{
		CategoryID:    filter.CategoryID,
		TagID:         filter.TagID,
		Search:        filter.Search,
		PublishedOnly: true,
		Limit:         filter.PageSize,
		Offset:        (filter.Page - 1) * filter.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	posts, err := m.withTags(ctx, NewPosts(list))
	if err != nil {
		return nil, err
	}

	totalPages := (total + filter.PageSize - 1) / filter.PageSize

	return &PostPage{
		Posts:      posts,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
		HasNext:    filter.Page < totalPages,
		HasPrev:    filter.Page > 1,
	}, nil
}

// AdminPosts returns every post, drafts included, newest first.
func (m *Manager) AdminPosts(ctx context.Context) ([]Post, error) {
	if _, err := RequireAdmin(ctx); err != nil {
		return nil, err
	}

	list, _, err := m.db.Posts(ctx, db.PostSearch{Limit: adminPostsNoLimit})
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	return m.withTags(ctx, NewPosts(list))
}

// ViewPost counts a view of the published post with the slug and returns it
// with its approved comments and related posts.
func (m *Manager) ViewPost(ctx context.Context, slug string) (*PostView, error) {
	postID, err := m.db.ViewPublishedPost(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db view post: %w", err)
	} else if postID == 0 {
		return nil, ErrNotFound
	}

	dbPost, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	} else if dbPost == nil {
		return nil, ErrNotFound
	}

	posts, err := m.withTags(ctx, NewPosts([]db.Post{*dbPost}))
	if err != nil {
		return nil, err
	}
	post := posts[0]
	post.HTML = RenderMarkdown(post.Content)

	comments, err := m.db.ApprovedComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get comments: %w", err)
	}

	relatedList, err := m.db.RelatedPosts(ctx, dbPost, relatedLimit)
	if err != nil {
		return nil, fmt.Errorf("db get related posts: %w", err)
	}

	related, err := m.withTags(ctx, NewPosts(relatedList))
	if err != nil {
		return nil, err
	}

	return &PostView{
		Post:     post,
		Comments: NewComments(comments),
		Related:  related,
	}, nil
}

// PostByID returns a post regardless of its publication state. Admin only.
func (m *Manager) PostByID(ctx context.Context, postID int) (*Post, error) {
	if _, err := RequireAdmin(ctx); err != nil {
		return nil, err
	}

	return m.postByID(ctx, postID)
}

func (m *Manager) postByID(ctx context.Context, postID int) (*Post, error) {
	dbPost, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	} else if dbPost == nil {
		return nil, ErrNotFound
	}

	posts, err := m.withTags(ctx, NewPosts([]db.Post{*dbPost}))
	if err != nil {
		return nil, err
	}

	return &posts[0], nil
}

// CreatePost stores a new post authored by the calling administrator. The
// image, if any, is saved first and removed again when the post cannot be
// stored.
func (m *Manager) CreatePost(ctx context.Context, in PostInput, image *media.Upload) (*Post, error) {
	identity, err := RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	slug, err := Slugify(in.Title)
	if err != nil {
		return nil, err
	}

	imagePath, err := m.saveImage(ctx, image)
	if err != nil {
		return nil, err
	}

	now := m.now()
	post := &db.Post{
		Title:         in.Title,
		Slug:          slug,
		Content:       in.Content,
		Excerpt:       strPtrOrNil(in.Excerpt),
		FeaturedImage: imagePath,
		IsPublished:   in.IsPublished,
		IsFeatured:    in.IsFeatured,
		CreatedAt:     now,
		UpdatedAt:     now,
		UserID:        identity.UserID,
		CategoryID:    in.CategoryID,
	}

	err = m.db.InTransaction(ctx, func(repo *db.Repository) error {
		tagIDs, err := resolveTaxonomy(ctx, repo, in)
		if err != nil {
			return err
		}

		if err := repo.InsertPost(ctx, post); err != nil {
			return err
		}

		return repo.SetPostTags(ctx, post.ID, tagIDs)
	})
	if err != nil {
		m.removeImage(ctx, imagePath)
		return nil, postWriteError("create post", err)
	}

	m.logger.InfoContext(ctx, "post created", "postId", post.ID, "slug", post.Slug, "userId", identity.UserID)
	return m.postByID(ctx, post.ID)
}

// UpdatePost replaces the editable fields and the tags of a post, keeping its
// slug. A new image
// replaces the stored one, which is removed after the update is committed.
func (m *Manager) UpdatePost(ctx context.Context, postID int, in PostInput, image *media.Upload) (*Post, error) {
	if _, err := RequireAdmin(ctx); err != nil {
		return nil, err
	}

	existing, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	imagePath, err := m.saveImage(ctx, image)
	if err != nil {
		return nil, err
	}

	// slug stays as created
	post := *existing
	post.User, post.Category = nil, nil
	post.Title = in.Title
	post.Content = in.Content
	post.Excerpt = strPtrOrNil(in.Excerpt)
	post.IsPublished = in.IsPublished
	post.IsFeatured = in.IsFeatured
	post.CategoryID = in.CategoryID
	post.UpdatedAt = m.updatedAt(existing)
	if imagePath != nil {
		post.FeaturedImage = imagePath
	}

	err = m.db.InTransaction(ctx, func(repo *db.Repository) error {
		tagIDs, err := resolveTaxonomy(ctx, repo, in)
		if err != nil {
			return err
		}

		found, err := repo.UpdatePost(ctx, &post)
		if err != nil {
			return err
		} else if !found {
			return ErrNotFound
		}

		return repo.SetPostTags(ctx, post.ID, tagIDs)
	})
	if err != nil {
		m.removeImage(ctx, imagePath)
		return nil, postWriteError("update post", err)
	}

	if imagePath != nil {
		m.removeImage(ctx, existing.FeaturedImage)
	}

	m.logger.InfoContext(ctx, "post updated", "postId", post.ID, "slug", post.Slug)
	return m.postByID(ctx, post.ID)
}

// TogglePublish flips the publication state and returns the new value.
func (m *Manager) TogglePublish(ctx context.Context, postID int) (bool, error) {
	if _, err := RequireAdmin(ctx); err != nil {
		return false, err
	}

	published, found, err := m.db.TogglePublished(ctx, postID, m.now())
	if err != nil {
		return false, fmt.Errorf("db toggle publish: %w", err)
	} else if !found {
		return false, ErrNotFound
	}

	return published, nil
}

// ToggleFeature flips the featured flag and returns the new value.
func (m *Manager) ToggleFeature(ctx context.Context, postID int) (bool, error) {
	if _, err := RequireAdmin(ctx); err != nil {
		return false, err
	}

	featured, found, err := m.db.ToggleFeatured(ctx, postID, m.now())
	if err != nil {
		return false, fmt.Errorf("db toggle feature: %w", err)
	} else if !found {
		return false, ErrNotFound
	}

	return featured, nil
}

// DeletePost removes a post with its comments and tag links, then its image.
func (m *Manager) DeletePost(ctx context.Context, postID int) error {
	if _, err := RequireAdmin(ctx); err != nil {
		return err
	}

	existing, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("db get post: %w", err)
	} else if existing == nil {
		return ErrNotFound
	}

	found, err := m.db.DeletePost(ctx, postID)
	if err != nil {
		return fmt.Errorf("db delete post: %w", err)
	} else if !found {
		return ErrNotFound
	}

	m.removeImage(ctx, existing.FeaturedImage)
	m.logger.InfoContext(ctx, "post deleted", "postId", postID, "slug", existing.Slug)

	return nil
}

// Home collects the landing page: featured and recent published posts with
// the whole taxonomy.
func (m *Manager) Home(ctx context.Context) (*HomePage, error) {
	featured, _, err := m.db.Posts(ctx, db.PostSearch{PublishedOnly: true, FeaturedOnly: true, Limit: featuredLimit})
	if err != nil {
		return nil, fmt.Errorf("db get featured posts: %w", err)
	}

	recent, _, err := m.db.Posts(ctx, db.PostSearch{PublishedOnly: true, Limit: recentLimit})
	if err != nil {
		return nil, fmt.Errorf("db get recent posts: %w", err)
	}

	all, err := m.withTags(ctx, NewPosts(append(featured, recent...)))
	if err != nil {
		return nil, err
	}

	categories, err := m.Categories(ctx)
	if err != nil {
		return nil, err
	}

	tags, err := m.Tags(ctx)
	if err != nil {
		return nil, err
	}

	return &HomePage{
		Featured:   all[:len(featured)],
		Recent:     all[len(featured):],
		Categories: categories,
		Tags:       tags,
	}, nil
}

func (m *Manager) saveImage(ctx context.Context, image *media.Upload) (*string, error) {
	if image == nil {
		return nil, nil
	}

	path, err := m.storage.Save(ctx, *image)
	if err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}

	return &path, nil
}

// updatedAt keeps updatedAt from going before createdAt when clocks disagree.
func (m *Manager) updatedAt(post *db.Post) time.Time {
	now := m.now()
	if now.Before(post.CreatedAt) {
		return post.CreatedAt
	}

	return now
}

// withTags attaches the tags of every post.
func (m *Manager) withTags(ctx context.Context, posts []Post) ([]Post, error) {
	if len(posts) == 0 {
		return posts, nil
	}

	tagsByPost, err := m.db.TagsByPostIDs(ctx, postIDs(posts))
	if err != nil {
		return nil, fmt.Errorf("db get post tags: %w", err)
	}

	for i := range posts {
		posts[i].Tags = NewTags(tagsByPost[posts[i].ID])
	}

	return posts, nil
}

// resolveTaxonomy checks the referenced category and tags and creates the
// named tags. It returns the ids of every tag to attach.
func resolveTaxonomy(ctx context.Context, repo *db.Repository, in PostInput) ([]int, error) {
	if in.CategoryID != nil {
		category, err := repo.CategoryByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		} else if category == nil {
			return nil, newValidationError("category_id", "does not exist")
		}
	}

	unique := make(map[int]struct{}, len(in.TagIDs))
	for _, id := range in.TagIDs {
		unique[id] = struct{}{}
	}

	tags, err := repo.TagsByIDs(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	} else if len(tags) != len(unique) {
		return nil, newValidationError("tag_ids", "contains unknown tags")
	}

	named, err := repo.EnsureTags(ctx, in.TagNames)
	if err != nil {
		return nil, err
	}

	return append(tagIDs(tags), tagIDs(named)...), nil
}

// postWriteError converts storage failures of post writes into domain errors.
func postWriteError(op string, err error) error {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrNotFound):
		return err
	case db.IsUniqueViolation(err, db.ConstraintPostSlug):
		return ErrSlugConflict
	default:
		return fmt.Errorf("db %s: %w", op, err)
	}
}
