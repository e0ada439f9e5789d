package rest

import (
	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/daniilsolovey/blog-portal/internal/db"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewUser(u *blogportal.User) *User {
	if u == nil {
		return nil
	}

	return &User{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

func NewAuthor(u *db.User) *Author {
	if u == nil {
		return nil
	}

	return &Author{UserID: u.ID, Username: u.Username}
}

func NewCategory(c blogportal.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func newCategoryRef(c *db.Category) *Category {
	if c == nil {
		return nil
	}

	category := NewCategory(blogportal.Category{Category: *c})
	return &category
}

func NewTag(t blogportal.Tag) Tag {
	return Tag{TagID: t.ID, Name: t.Name}
}

func NewPostSummary(p blogportal.Post) PostSummary {
	return PostSummary{
		PostID:        p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		FeaturedImage: p.FeaturedImage,
		IsPublished:   p.IsPublished,
		IsFeatured:    p.IsFeatured,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Views:         p.Views,
		Author:        NewAuthor(p.User),
		Category:      newCategoryRef(p.Category),
		Tags:          Map(p.Tags, NewTag),
	}
}

func NewPost(p blogportal.Post) Post {
	return Post{
		PostSummary: NewPostSummary(p),
		Content:     p.Content,
		HTML:        p.HTML,
	}
}

func NewComment(c blogportal.Comment) Comment {
	comment := Comment{
		CommentID:  c.ID,
		PostID:     c.PostID,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
		IsApproved: c.IsApproved,
		Author:     NewAuthor(c.User),
	}

	if c.Post != nil {
		comment.PostTitle = c.Post.Title
		comment.PostSlug = c.Post.Slug
	}

	return comment
}

func NewPostView(v *blogportal.PostView) PostView {
	return PostView{
		Post:     NewPost(v.Post),
		Comments: Map(v.Comments, NewComment),
		Related:  Map(v.Related, NewPostSummary),
	}
}

func NewPostPage(p *blogportal.PostPage) PostPage {
	return PostPage{
		Posts:      Map(p.Posts, NewPostSummary),
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
		HasNext:    p.HasNext,
		HasPrev:    p.HasPrev,
	}
}

func NewHomePage(h *blogportal.HomePage) HomePage {
	return HomePage{
		Featured:   Map(h.Featured, NewPostSummary),
		Recent:     Map(h.Recent, NewPostSummary),
		Categories: Map(h.Categories, NewCategory),
		Tags:       Map(h.Tags, NewTag),
	}
}

func NewDashboard(d *blogportal.Dashboard) Dashboard {
	return Dashboard{
		PostsCount:       d.PostsCount,
		UsersCount:       d.UsersCount,
		CommentsCount:    d.CommentsCount,
		PendingComments:  d.PendingComments,
		SubscribersCount: d.SubscribersCount,
		RecentPosts:      Map(d.RecentPosts, NewPostSummary),
	}
}
