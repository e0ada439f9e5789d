package rpc

import (
	"github.com/daniilsolovey/blog-portal/internal/blogportal"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c blogportal.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func NewTag(t blogportal.Tag) Tag {
	return Tag{TagID: t.ID, Name: t.Name}
}

func NewPostSummary(p blogportal.Post) PostSummary {
	summary := PostSummary{
		PostID:        p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		FeaturedImage: p.FeaturedImage,
		IsFeatured:    p.IsFeatured,
		CreatedAt:     p.CreatedAt,
		Views:         p.Views,
		Tags:          Map(p.Tags, NewTag),
	}

	if p.User != nil {
		summary.Author = p.User.Username
	}

	if p.Category != nil {
		category := NewCategory(blogportal.Category{Category: *p.Category})
		summary.Category = &category
	}

	return summary
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
		CommentID: c.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}

	if c.User != nil {
		comment.Author = c.User.Username
	}

	return comment
}

func NewPostView(v *blogportal.PostView) *PostView {
	return &PostView{
		Post:     NewPost(v.Post),
		Comments: Map(v.Comments, NewComment),
		Related:  Map(v.Related, NewPostSummary),
	}
}

func NewPostPage(p *blogportal.PostPage) *PostPage {
	return &PostPage{
		Posts:      Map(p.Posts, NewPostSummary),
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}

func NewHomePage(h *blogportal.HomePage) *HomePage {
	return &HomePage{
		Featured:   Map(h.Featured, NewPostSummary),
		Recent:     Map(h.Recent, NewPostSummary),
		Categories: Map(h.Categories, NewCategory),
		Tags:       Map(h.Tags, NewTag),
	}
}
