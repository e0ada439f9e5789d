package blogportal

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

func NewUser(u *db.User) *User {
	if u == nil {
		return nil
	}

	return &User{User: *u}
}

func NewCategories(list []db.Category) []Category {
	categories := make([]Category, len(list))
	for i := range list {
		categories[i] = Category{Category: list[i]}
	}

	return categories
}

func NewTags(list []db.Tag) []Tag {
	tags := make([]Tag, len(list))
	for i := range list {
		tags[i] = Tag{Tag: list[i]}
	}

	return tags
}

func NewPosts(list []db.Post) []Post {
	posts := make([]Post, len(list))
	for i := range list {
		posts[i] = Post{Post: list[i], Tags: []Tag{}}
	}

	return posts
}

func NewComments(list []db.Comment) []Comment {
	comments := make([]Comment, len(list))
	for i := range list {
		comments[i] = Comment{Comment: list[i]}
	}

	return comments
}

func postIDs(posts []Post) []int {
	ids := make([]int, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}

	return ids
}

func tagIDs(tags []db.Tag) []int {
	ids := make([]int, len(tags))
	for i := range tags {
		ids[i] = tags[i].ID
	}

	return ids
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
