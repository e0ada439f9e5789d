package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// InTransaction runs fn with a repository bound to a transaction. The
// transaction is rolled back when fn returns an error. A repository that is
// already bound to a transaction runs fn inside a savepoint instead.
func (r *Repository) InTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	if tx, ok := r.db.(*pg.Tx); ok {
		return r.inSavepoint(ctx, tx, fn)
	}

	return r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return fn(New(tx))
	})
}

func (r *Repository) inSavepoint(ctx context.Context, tx *pg.Tx, fn func(repo *Repository) error) error {
	if _, err := tx.ExecContext(ctx, `SAVEPOINT "repo"`); err != nil {
		return fmt.Errorf("create savepoint: %w", err)
	}

	if err := fn(r); err != nil {
		if _, rbErr := tx.ExecContext(ctx, `ROLLBACK TO SAVEPOINT "repo"`); rbErr != nil {
			return fmt.Errorf("rollback to savepoint (%v): %w", rbErr, err)
		}
		return err
	}

	if _, err := tx.ExecContext(ctx, `RELEASE SAVEPOINT "repo"`); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}

	return nil
}

// Users

func (r *Repository) UserByID(ctx context.Context, userID int) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."userId" = ?`, userID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *Repository) UserByUsername(ctx context.Context, username string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."username" = ?`, username).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// IdentityTaken reports whether the username and the email are already in use.
func (r *Repository) IdentityTaken(ctx context.Context, username, email string) (usernameTaken, emailTaken bool, err error) {
	usernameTaken, err = r.db.ModelContext(ctx, (*User)(nil)).
		Where(`"t"."username" = ?`, username).
		Exists()
	if err != nil {
		return false, false, fmt.Errorf("failed to check username: %w", err)
	}

	emailTaken, err = r.db.ModelContext(ctx, (*User)(nil)).
		Where(`"t"."email" = ?`, email).
		Exists()
	if err != nil {
		return false, false, fmt.Errorf("failed to check email: %w", err)
	}

	return usernameTaken, emailTaken, nil
}

func (r *Repository) InsertUser(ctx context.Context, user *User) error {
	if _, err := r.db.ModelContext(ctx, user).Insert(); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r *Repository) UsersCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*User)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get users count: %w", err)
	}

	return count, nil
}

// Taxonomy

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."categoryId" = ?`, categoryID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

// InsertCategory inserts the category unless one with the same name exists.
// It reports whether a row was inserted.
func (r *Repository) InsertCategory(ctx context.Context, name string, description *string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO "categories" ("name", "description") VALUES (?, ?) ON CONFLICT ("name") DO NOTHING`,
		name, description,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert category %q: %w", name, err)
	}

	return res.RowsAffected() == 1, nil
}

func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

func (r *Repository) TagsByIDs(ctx context.Context, tagIDs []int) ([]Tag, error) {
	if len(tagIDs) == 0 {
		return []Tag{}, nil
	}

	tags := []Tag{}
	err := r.db.ModelContext(ctx, &tags).
		Where(`"t"."tagId" IN (?)`, pg.In(tagIDs)).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags by ids: %w", err)
	}

	return tags, nil
}

// EnsureTags inserts the missing tags and returns all tags with the given names.
func (r *Repository) EnsureTags(ctx context.Context, names []string) ([]Tag, error) {
	if len(names) == 0 {
		return []Tag{}, nil
	}

	for _, name := range names {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO "tags" ("name") VALUES (?) ON CONFLICT ("name") DO NOTHING`, name,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert tag %q: %w", name, err)
		}
	}

	tags := []Tag{}
	err := r.db.ModelContext(ctx, &tags).
		Where(`"t"."name" IN (?)`, pg.In(names)).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags by names: %w", err)
	}

	return tags, nil
}

// Posts

// PostSearch describes a posts listing. Zero values disable a filter, a zero
// Limit returns every matching post.
type PostSearch struct {
	CategoryID    int
	TagID         int
	Search        string
	PublishedOnly bool
	FeaturedOnly  bool
	Limit         int
	Offset        int
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s PostSearch) apply(q *orm.Query) *orm.Query {
	if s.PublishedOnly {
		q = q.Where(`"t"."isPublished" = TRUE`)
	}

	if s.FeaturedOnly {
		q = q.Where(`"t"."isFeatured" = TRUE`)
	}

	if s.CategoryID > 0 {
		q = q.Where(`"t"."categoryId" = ?`, s.CategoryID)
	}

	if s.TagID > 0 {
		q = q.Where(`EXISTS (SELECT 1 FROM "postTags" AS "pt" WHERE "pt"."postId" = "t"."postId" AND "pt"."tagId" = ?)`, s.TagID)
	}

	if s.Search != "" {
		pattern := "%" + likeEscaper.Replace(s.Search) + "%"
		q = q.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			q = q.Where(`"t"."title" LIKE ?`, pattern).
				WhereOr(`"t"."content" LIKE ?`, pattern)
			return q, nil
		})
	}

	return q
}

// Posts returns the posts matching the search ordered by createdAt DESC
// together with the total number of matching rows.
func (r *Repository) Posts(ctx context.Context, s PostSearch) ([]Post, int, error) {
	if s.Limit < 0 || s.Offset < 0 {
		return nil, 0, fmt.Errorf(
			"limit and offset must not be negative: limit=%d, offset=%d",
			s.Limit, s.Offset,
		)
	}

	count, err := s.apply(r.db.ModelContext(ctx, (*Post)(nil))).Count()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get posts count: %w", err)
	}

	var posts []Post
	query := r.db.ModelContext(ctx, &posts).
		Relation(Columns.Post.Category).
		Relation(Columns.Post.User)

	query = s.apply(query).
		OrderExpr(`"t"."createdAt" DESC, "t"."postId" DESC`).
		Offset(s.Offset)
	if s.Limit > 0 {
		query = query.Limit(s.Limit)
	}

	err = query.Select()

	if err != nil {
		return nil, 0, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, count, nil
}

func (r *Repository) PostByID(ctx context.Context, postID int) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Relation(Columns.Post.Category).
		Relation(Columns.Post.User).
		Where(`"t"."postId" = ?`, postID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// ViewPublishedPost increments the views of the published post with the given
// slug in a single statement and returns its id. It returns 0 when there is
// no such post.
func (r *Repository) ViewPublishedPost(ctx context.Context, slug string) (int, error) {
	var postID int
	_, err := r.db.QueryOneContext(ctx, pg.Scan(&postID), `
		UPDATE "posts" SET "views" = "views" + 1
		WHERE "slug" = ? AND "isPublished" = TRUE
		RETURNING "postId"`, slug)

	if errors.Is(err, pg.ErrNoRows) {
		return 0, nil
	} else if err != nil {
		return 0, fmt.Errorf("failed to increment post views: %w", err)
	}

	return postID, nil
}

// RelatedPosts returns published posts of the same category, newest first,
// excluding the post itself.
func (r *Repository) RelatedPosts(ctx context.Context, post *Post, limit int) ([]Post, error) {
	if post.CategoryID == nil {
		return []Post{}, nil
	}

	posts := []Post{}
	err := r.db.ModelContext(ctx, &posts).
		Relation(Columns.Post.Category).
		Relation(Columns.Post.User).
		Where(`"t"."categoryId" = ?`, *post.CategoryID).
		Where(`"t"."postId" <> ?`, post.ID).
		Where(`"t"."isPublished" = TRUE`).
		OrderExpr(`"t"."createdAt" DESC, "t"."postId" DESC`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query related posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) InsertPost(ctx context.Context, post *Post) error {
	if _, err := r.db.ModelContext(ctx, post).Insert(); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// UpdatePost stores the editable fields of the post. It reports whether the
// post exists.
func (r *Repository) UpdatePost(ctx context.Context, post *Post) (bool, error) {
	res, err := r.db.ModelContext(ctx, post).
		Column(
			Columns.Post.Title,
			Columns.Post.Content,
			Columns.Post.Excerpt,
			Columns.Post.FeaturedImage,
			Columns.Post.IsPublished,
			Columns.Post.IsFeatured,
			Columns.Post.CategoryID,
			Columns.Post.UpdatedAt,
		).
		WherePK().
		Update()

	if err != nil {
		return false, fmt.Errorf("failed to update post: %w", err)
	}

	return res.RowsAffected() == 1, nil
}

func (r *Repository) TogglePublished(ctx context.Context, postID int, now time.Time) (bool, bool, error) {
	return r.togglePostFlag(ctx, postID, Columns.Post.IsPublished, now)
}

func (r *Repository) ToggleFeatured(ctx context.Context, postID int, now time.Time) (bool, bool, error) {
	return r.togglePostFlag(ctx, postID, Columns.Post.IsFeatured, now)
}

// togglePostFlag flips a boolean column and returns its new value and whether
// the post exists.
func (r *Repository) togglePostFlag(ctx context.Context, postID int, column string, now time.Time) (bool, bool, error) {
	var value bool
	_, err := r.db.QueryOneContext(ctx, pg.Scan(&value), `
		UPDATE "posts" SET ?0 = NOT ?0, "updatedAt" = GREATEST(?1, "createdAt")
		WHERE "postId" = ?2
		RETURNING ?0`, pg.Ident(column), now, postID)

	if errors.Is(err, pg.ErrNoRows) {
		return false, false, nil
	} else if err != nil {
		return false, false, fmt.Errorf("failed to toggle post %s: %w", column, err)
	}

	return value, true, nil
}

// SetPostTags replaces the tag associations of the post.
func (r *Repository) SetPostTags(ctx context.Context, postID int, tagIDs []int) error {
	_, err := r.db.ModelContext(ctx, (*PostTag)(nil)).
		Where(`"t"."postId" = ?`, postID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to clear post tags: %w", err)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	seen := make(map[int]struct{}, len(tagIDs))
	rows := make([]PostTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		if _, ok := seen[tagID]; ok {
			continue
		}
		seen[tagID] = struct{}{}
		rows = append(rows, PostTag{PostID: postID, TagID: tagID})
	}

	if _, err := r.db.ModelContext(ctx, &rows).Insert(); err != nil {
		return fmt.Errorf("failed to insert post tags: %w", err)
	}

	return nil
}

// PostTagName is a tag attached to a post.
type PostTagName struct {
	PostID int    `pg:"postId"`
	TagID  int    `pg:"tagId"`
	Name   string `pg:"name"`
}

// TagsByPostIDs returns the tags of every given post keyed by post id.
func (r *Repository) TagsByPostIDs(ctx context.Context, postIDs []int) (map[int][]Tag, error) {
	result := make(map[int][]Tag, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	var rows []PostTagName
	_, err := r.db.QueryContext(ctx, &rows, `
		SELECT "pt"."postId", "tg"."tagId", "tg"."name"
		FROM "postTags" AS "pt"
		JOIN "tags" AS "tg" ON "tg"."tagId" = "pt"."tagId"
		WHERE "pt"."postId" IN (?)
		ORDER BY "tg"."name" ASC`, pg.In(postIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query post tags: %w", err)
	}

	for _, row := range rows {
		result[row.PostID] = append(result[row.PostID], Tag{ID: row.TagID, Name: row.Name})
	}

	return result, nil
}

// DeletePost removes the post together with its comments and tag
// associations. It reports whether the post existed.
func (r *Repository) DeletePost(ctx context.Context, postID int) (bool, error) {
	var found bool
	err := r.InTransaction(ctx, func(repo *Repository) error {
		if _, err := repo.db.ModelContext(ctx, (*Comment)(nil)).
			Where(`"t"."postId" = ?`, postID).
			Delete(); err != nil {
			return fmt.Errorf("failed to delete post comments: %w", err)
		}

		if _, err := repo.db.ModelContext(ctx, (*PostTag)(nil)).
			Where(`"t"."postId" = ?`, postID).
			Delete(); err != nil {
			return fmt.Errorf("failed to delete post tags: %w", err)
		}

		res, err := repo.db.ModelContext(ctx, (*Post)(nil)).
			Where(`"t"."postId" = ?`, postID).
			Delete()
		if err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}

		found = res.RowsAffected() == 1
		return nil
	})

	return found, err
}

func (r *Repository) PostsCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Post)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get posts count: %w", err)
	}

	return count, nil
}

// Comments

func (r *Repository) InsertComment(ctx context.Context, comment *Comment) error {
	if _, err := r.db.ModelContext(ctx, comment).Insert(); err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

func (r *Repository) CommentByID(ctx context.Context, commentID int) (*Comment, error) {
	comment := &Comment{}
	err := r.db.ModelContext(ctx, comment).
		Relation(Columns.Comment.User).
		Where(`"t"."commentId" = ?`, commentID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

// ApproveComment marks the comment approved. It reports whether the comment exists.
func (r *Repository) ApproveComment(ctx context.Context, commentID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Set(`"isApproved" = TRUE`).
		Where(`"t"."commentId" = ?`, commentID).
		Update()

	if err != nil {
		return false, fmt.Errorf("failed to approve comment: %w", err)
	}

	return res.RowsAffected() == 1, nil
}

// DeleteComment removes the comment. It reports whether the comment existed.
func (r *Repository) DeleteComment(ctx context.Context, commentID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"t"."commentId" = ?`, commentID).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}

	return res.RowsAffected() == 1, nil
}

// ApprovedComments returns the approved comments of a post, newest first.
func (r *Repository) ApprovedComments(ctx context.Context, postID int) ([]Comment, error) {
	comments := []Comment{}
	err := r.db.ModelContext(ctx, &comments).
		Relation(Columns.Comment.User).
		Where(`"t"."postId" = ?`, postID).
		Where(`"t"."isApproved" = TRUE`).
		OrderExpr(`"t"."createdAt" DESC, "t"."commentId" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query approved comments: %w", err)
	}

	return comments, nil
}

// Comments returns every comment with its author and post, newest first.
func (r *Repository) Comments(ctx context.Context) ([]Comment, error) {
	comments := []Comment{}
	err := r.db.ModelContext(ctx, &comments).
		Relation(Columns.Comment.User).
		Relation(Columns.Comment.Post).
		OrderExpr(`"t"."createdAt" DESC, "t"."commentId" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

func (r *Repository) CommentsCount(ctx context.Context, pendingOnly bool) (int, error) {
	query := r.db.ModelContext(ctx, (*Comment)(nil))
	if pendingOnly {
		query = query.Where(`"t"."isApproved" = FALSE`)
	}

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get comments count: %w", err)
	}

	return count, nil
}

// Newsletter

// InsertSubscriber stores the email unless it is already subscribed. It
// reports whether a row was inserted.
func (r *Repository) InsertSubscriber(ctx context.Context, email string, subscribedAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO "subscribers" ("email", "subscribedAt") VALUES (?, ?) ON CONFLICT ("email") DO NOTHING`,
		email, subscribedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert subscriber: %w", err)
	}

	return res.RowsAffected() == 1, nil
}

func (r *Repository) SubscribersCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Subscriber)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get subscribers count: %w", err)
	}

	return count, nil
}
