package blogportal

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

type User struct {
	db.User
}

type Category struct {
	db.Category
}

type Tag struct {
	db.Tag
}

type Post struct {
	db.Post
	Tags []Tag
	// HTML is the rendered content, set for single post views.
	HTML string
}

type Comment struct {
	db.Comment
}

// PostView is a published post as shown to readers.
type PostView struct {
	Post     Post
	Comments []Comment
	Related  []Post
}

type PostPage struct {
	Posts      []Post
	Total      int
	Page       int
	PageSize   int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

type HomePage struct {
	Featured   []Post
	Recent     []Post
	Categories []Category
	Tags       []Tag
}

type Dashboard struct {
	PostsCount       int
	UsersCount       int
	CommentsCount    int
	PendingComments  int
	SubscribersCount int
	RecentPosts      []Post
}

type RegisterInput struct {
	Username string `json:"username" validate:"required,max=80"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required"`
}

// PostInput holds the editable fields of a post. Tags are referenced by id
// and by name; unknown names are created.
type PostInput struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Content     string   `json:"content" validate:"required"`
	Excerpt     string   `json:"excerpt"`
	CategoryID  *int     `json:"category_id" validate:"omitempty,gt=0"`
	TagIDs      []int    `json:"tag_ids" validate:"dive,gt=0"`
	TagNames    []string `json:"tag_names" validate:"dive,required,max=50"`
	IsPublished bool     `json:"is_published"`
	IsFeatured  bool     `json:"is_featured"`
}

// PostFilter selects published posts. Zero values disable a filter.
type PostFilter struct {
	CategoryID int
	TagID      int
	Search     string
	Page       int
	PageSize   int
}

type SeedConfig struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
	Categories    []SeedCategory
}

type SeedCategory struct {
	Name        string
	Description string
}

var DefaultCategories = []SeedCategory{
	{Name: "Technology", Description: "Posts about technology, programming, and software development"},
	{Name: "Lifestyle", Description: "Posts about lifestyle, health, and personal development"},
	{Name: "Travel", Description: "Travel guides, tips, and experiences"},
	{Name: "Food", Description: "Recipes, restaurant reviews, and culinary adventures"},
	{Name: "Business", Description: "Business insights, entrepreneurship, and career advice"},
}
