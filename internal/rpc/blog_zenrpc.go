package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	BlogService struct{ Posts, PostBySlug, Home, Categories, Tags, Subscribe string }
}{
	BlogService: struct{ Posts, PostBySlug, Home, Categories, Tags, Subscribe string }{
		Posts:      "posts",
		PostBySlug: "postBySlug",
		Home:       "home",
		Categories: "categories",
		Tags:       "tags",
		Subscribe:  "subscribe",
	},
}

func (BlogService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"Posts": {
				Description: `Posts returns a page of published posts, newest first.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "filter",
						Optional:    false,
						Description: `posts filter`,
						Type:        smd.Object,
					},
				},
				Returns: smd.JSONSchema{
					Description: `page of post summaries`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					400: "invalid filter",
					500: "internal server error",
				},
			},
			"PostBySlug": {
				Description: `PostBySlug returns a published post with its approved comments and related posts.
Each call counts a view.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "slug",
						Optional:    false,
						Description: `post slug`,
						Type:        smd.String,
					},
				},
				Returns: smd.JSONSchema{
					Description: `post with comments`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					404: "post not found",
					500: "internal server error",
				},
			},
			"Home": {
				Description: `Home returns featured and recent posts with the taxonomy.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `home page`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Categories": {
				Description: `Categories returns all categories ordered by name.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of categories`,
					Optional:    true,
					Type:        smd.Array,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Tags": {
				Description: `Tags returns all tags ordered by name.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of tags`,
					Optional:    true,
					Type:        smd.Array,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Subscribe": {
				Description: `Subscribe adds an email to the newsletter.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "email",
						Optional:    false,
						Description: `subscriber email`,
						Type:        smd.String,
					},
				},
				Returns: smd.JSONSchema{
					Description: `true when subscribed`,
					Optional:    false,
					Type:        smd.Boolean,
				},
				Errors: map[int]string{
					400: "invalid email",
					409: "email already subscribed",
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s BlogService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.BlogService.Posts:
		var args = struct {
			Filter PostsFilter `json:"filter"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"filter"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Posts(ctx, args.Filter))

	case RPC.BlogService.PostBySlug:
		var args = struct {
			Slug string `json:"slug"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"slug"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.PostBySlug(ctx, args.Slug))

	case RPC.BlogService.Home:
		resp.Set(s.Home(ctx))

	case RPC.BlogService.Categories:
		resp.Set(s.Categories(ctx))

	case RPC.BlogService.Tags:
		resp.Set(s.Tags(ctx))

	case RPC.BlogService.Subscribe:
		var args = struct {
			Email string `json:"email"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"email"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Subscribe(ctx, args.Email))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
