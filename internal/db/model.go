// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Category struct {
		ID, Name, Description string
	}
	Comment struct {
		ID, Content, CreatedAt, IsApproved, UserID, PostID string

		User, Post string
	}
	Post struct {
		ID, Title, Slug, Content, Excerpt, FeaturedImage, IsPublished, IsFeatured, CreatedAt, UpdatedAt, UserID, CategoryID, Views string

		User, Category string
	}
	PostTag struct {
		PostID, TagID string
	}
	Subscriber struct {
		ID, Email, SubscribedAt string
	}
	Tag struct {
		ID, Name string
	}
	User struct {
		ID, Username, Email, PasswordHash, IsAdmin, CreatedAt string
	}
}{
	Category: struct {
		ID, Name, Description string
	}{
		ID:          "categoryId",
		Name:        "name",
		Description: "description",
	},
	Comment: struct {
		ID, Content, CreatedAt, IsApproved, UserID, PostID string

		User, Post string
	}{
		ID:         "commentId",
		Content:    "content",
		CreatedAt:  "createdAt",
		IsApproved: "isApproved",
		UserID:     "userId",
		PostID:     "postId",

		User: "User",
		Post: "Post",
	},
	Post: struct {
		ID, Title, Slug, Content, Excerpt, FeaturedImage, IsPublished, IsFeatured, CreatedAt, UpdatedAt, UserID, CategoryID, Views string

		User, Category string
	}{
		ID:            "postId",
		Title:         "title",
		Slug:          "slug",
		Content:       "content",
		Excerpt:       "excerpt",
		FeaturedImage: "featuredImage",
		IsPublished:   "isPublished",
		IsFeatured:    "isFeatured",
		CreatedAt:     "createdAt",
		UpdatedAt:     "updatedAt",
		UserID:        "userId",
		CategoryID:    "categoryId",
		Views:         "views",

		User:     "User",
		Category: "Category",
	},
	PostTag: struct {
		PostID, TagID string
	}{
		PostID: "postId",
		TagID:  "tagId",
	},
	Subscriber: struct {
		ID, Email, SubscribedAt string
	}{
		ID:           "subscriberId",
		Email:        "email",
		SubscribedAt: "subscribedAt",
	},
	Tag: struct {
		ID, Name string
	}{
		ID:   "tagId",
		Name: "name",
	},
	User: struct {
		ID, Username, Email, PasswordHash, IsAdmin, CreatedAt string
	}{
		ID:           "userId",
		Username:     "username",
		Email:        "email",
		PasswordHash: "passwordHash",
		IsAdmin:      "isAdmin",
		CreatedAt:    "createdAt",
	},
}

var Tables = struct {
	Category struct {
		Name, Alias string
	}
	Comment struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
	PostTag struct {
		Name, Alias string
	}
	Subscriber struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
	PostTag: struct {
		Name, Alias string
	}{
		Name:  "postTags",
		Alias: "t",
	},
	Subscriber: struct {
		Name, Alias string
	}{
		Name:  "subscribers",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int     `pg:"categoryId,pk"`
	Name        string  `pg:"name,use_zero"`
	Description *string `pg:"description"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID         int       `pg:"commentId,pk"`
	Content    string    `pg:"content,use_zero"`
	CreatedAt  time.Time `pg:"createdAt,use_zero"`
	IsApproved bool      `pg:"isApproved,use_zero"`
	UserID     int       `pg:"userId,use_zero"`
	PostID     int       `pg:"postId,use_zero"`

	User *User `pg:"fk:userId,rel:has-one"`
	Post *Post `pg:"fk:postId,rel:has-one"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID            int       `pg:"postId,pk"`
	Title         string    `pg:"title,use_zero"`
	Slug          string    `pg:"slug,use_zero"`
	Content       string    `pg:"content,use_zero"`
	Excerpt       *string   `pg:"excerpt"`
	FeaturedImage *string   `pg:"featuredImage"`
	IsPublished   bool      `pg:"isPublished,use_zero"`
	IsFeatured    bool      `pg:"isFeatured,use_zero"`
	CreatedAt     time.Time `pg:"createdAt,use_zero"`
	UpdatedAt     time.Time `pg:"updatedAt,use_zero"`
	UserID        int       `pg:"userId,use_zero"`
	CategoryID    *int      `pg:"categoryId"`
	Views         int       `pg:"views,use_zero"`

	User     *User     `pg:"fk:userId,rel:has-one"`
	Category *Category `pg:"fk:categoryId,rel:has-one"`
}

type PostTag struct {
	tableName struct{} `pg:"postTags,alias:t,discard_unknown_columns"`

	PostID int `pg:"postId,pk"`
	TagID  int `pg:"tagId,pk"`
}

type Subscriber struct {
	tableName struct{} `pg:"subscribers,alias:t,discard_unknown_columns"`

	ID           int       `pg:"subscriberId,pk"`
	Email        string    `pg:"email,use_zero"`
	SubscribedAt time.Time `pg:"subscribedAt,use_zero"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID   int    `pg:"tagId,pk"`
	Name string `pg:"name,use_zero"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           int       `pg:"userId,pk"`
	Username     string    `pg:"username,use_zero"`
	Email        string    `pg:"email,use_zero"`
	PasswordHash string    `pg:"passwordHash,use_zero"`
	IsAdmin      bool      `pg:"isAdmin,use_zero"`
	CreatedAt    time.Time `pg:"createdAt,use_zero"`
}
