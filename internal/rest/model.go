package rest

import "time"

type ErrorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

type User struct {
	UserID    int       `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

type Author struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
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
	IsPublished   bool      `json:"isPublished"`
	IsFeatured    bool      `json:"isFeatured"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Views         int       `json:"views"`
	Author        *Author   `json:"author"`
	Category      *Category `json:"category"`
	Tags          []Tag     `json:"tags"`
}

type Post struct {
	PostSummary
	Content string `json:"content"`
	HTML    string `json:"html"`
}

type Comment struct {
	CommentID  int       `json:"commentId"`
	PostID     int       `json:"postId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	IsApproved bool      `json:"isApproved"`
	Author     *Author   `json:"author"`
	PostTitle  string    `json:"postTitle,omitempty"`
	PostSlug   string    `json:"postSlug,omitempty"`
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
	HasNext    bool          `json:"hasNext"`
	HasPrev    bool          `json:"hasPrev"`
}

type HomePage struct {
	Featured   []PostSummary `json:"featured"`
	Recent     []PostSummary `json:"recent"`
	Categories []Category    `json:"categories"`
	Tags       []Tag         `json:"tags"`
}

type Dashboard struct {
	PostsCount       int           `json:"postsCount"`
	UsersCount       int           `json:"usersCount"`
	CommentsCount    int           `json:"commentsCount"`
	PendingComments  int           `json:"pendingComments"`
	SubscribersCount int           `json:"subscribersCount"`
	RecentPosts      []PostSummary `json:"recentPosts"`
}

type PostsRequest struct {
	Page     int    `urlstruct:"page"`
	Category int    `urlstruct:"category"`
	Tag      int    `urlstruct:"tag"`
	Search   string `urlstruct:"search"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type RegisterRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type CommentRequest struct {
	Content string `json:"content" form:"content"`
}

type NewsletterRequest struct {
	Email string `json:"email" form:"email"`
}

type NewsletterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

type CommentResponse struct {
	Comment  *Comment `json:"comment"`
	PostSlug string   `json:"postSlug"`
}

type ToggleResponse struct {
	Value bool `json:"value"`
}

type ThemeResponse struct {
	DarkMode bool `json:"darkMode"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
