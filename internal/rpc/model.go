package rpc

import (
	"time"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
)

type PostsFilter struct {
	//category optional category filter
	CategoryID int `json:"categoryId,omitempty"`
	//tag optional tag filter
	TagID int `json:"tagId,omitempty"`
	//search optional search in title and content
	Search string `json:"search,omitempty"`
	//page=1 page number (1-based)
	Page int `json:"page,omitempty"`
	//pageSize=9 items per page
	PageSize int `json:"pageSize,omitempty"`
}

func (f PostsFilter) ToModel() blogportal.PostFilter {
	return blogportal.PostFilter{
		CategoryID: f.CategoryID,
		TagID:      f.TagID,
		Search:     f.Search,
		Page:       f.Page,
		PageSize:   f.PageSize,
	}
}

type Category struct {
	CategoryID  int     `json:"categoryId"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type Tag struct {
	TagID int    `json:"tagId"`
	Name  string `json:"name"`
}

type PostSummary struct {
	PostID        int       `json:"postId"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       *string   `json:"excerpt"`
	FeaturedImage *string   `json:"featuredImage"`
	IsFeatured    bool      `json:"isFeatured"`
	CreatedAt     time.Time `json:"createdAt"`
	Views         int       `json:"views"`
	Author        string    `json:"author"`
	Category      *Category `json:"category"`
	Tags          []Tag     `json:"tags"`
}

type Post struct {
	PostSummary
	Content string `json:"content"`
	HTML    string `json:"html"`
}

type Comment struct {
	CommentID int       `json:"commentId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Author    string    `json:"author"`
}

type PostView struct {
	Post     Post          `json:"post"`
	Comments []Comment     `json:"comments"`
	Related  []PostSummary `json:"related"`
}

type PostPage struct {
	Posts      []PostSummary `json:"posts"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

type HomePage struct {
	Featured   []PostSummary `json:"featured"`
	Recent     []PostSummary `json:"recent"`
	Categories []Category    `json:"categories"`
	Tags       []Tag         `json:"tags"`
}
