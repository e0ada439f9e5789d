package rest

import (
	"net/http"
	"net/url"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
)

// Home handles GET /api/v1/home
// @Summary Home page
// @Description Returns featured posts, recent posts, categories and tags
// @Tags posts
// @Produce json
// @Success 200 {object} rest.HomePage
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/v1/home [get]
func (h *Handler) Home(c echo.Context) error {
	home, err := h.manager.Home(requestContext(c))
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, NewHomePage(home))
}

// Posts handles GET /api/v1/posts
// @Summary List published posts
// @Description Returns a page of published posts, newest first, with optional category, tag and search filters
// @Tags posts
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param category query int false "Filter by category ID"
// @Param tag query int false "Filter by tag ID"
// @Param search query string false "Search in title and content"
// @Success 200 {object} rest.PostPage
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/v1/posts [get]
func (h *Handler) Posts(c echo.Context) error {
	var req PostsRequest
	if err := urlstruct.Unmarshal(requestContext(c), nonEmpty(c.QueryParams()), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, err := h.manager.Posts(requestContext(c), blogportal.PostFilter{
		CategoryID: req.Category,
		TagID:      req.Tag,
		Search:     req.Search,
		Page:       req.Page,
	})
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, NewPostPage(page))
}

// PostBySlug handles GET /api/v1/posts/:slug
// @Summary View a post
// @Description Returns a published post with rendered content, approved comments and related posts. Counts a view.
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} rest.PostView
// @Failure 404,500 {object} rest.ErrorResponse
// @Router /api/v1/posts/{slug} [get]
func (h *Handler) PostBySlug(c echo.Context) error {
	view, err := h.manager.ViewPost(requestContext(c), c.Param("slug"))
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, NewPostView(view))
}

// Categories handles GET /api/v1/categories
// @Summary Get all categories
// @Tags taxonomy
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/v1/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	list, err := h.manager.Categories(requestContext(c))
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, Map(list, NewCategory))
}

// Tags handles GET /api/v1/tags
// @Summary Get all tags
// @Tags taxonomy
// @Produce json
// @Success 200 {array} rest.Tag
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/v1/tags [get]
func (h *Handler) Tags(c echo.Context) error {
	list, err := h.manager.Tags(requestContext(c))
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, Map(list, NewTag))
}

// AddComment handles POST /api/v1/posts/:id/comments
// @Summary Add a comment
// @Description Adds a comment by the logged in user. Comments by non-admins wait for approval. Blank content is ignored.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param comment body rest.CommentRequest true "Comment"
// @Success 200 {object} rest.CommentResponse
// @Failure 400,401,404,500 {object} rest.ErrorResponse
// @Router /api/v1/posts/{id}/comments [post]
func (h *Handler) AddComment(c echo.Context) error {
	postID, ok := intParam(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid id")
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	comment, slug, err := h.manager.AddComment(requestContext(c), postID, req.Content)
	if err != nil {
		return h.errorResponse(c, err)
	}

	resp := CommentResponse{PostSlug: slug}
	if comment != nil {
		dto := NewComment(*comment)
		resp.Comment = &dto
	}

	return c.JSON(http.StatusOK, resp)
}

// nonEmpty drops blank parameters so that "?category=" means no filter.
func nonEmpty(values url.Values) url.Values {
	res := make(url.Values, len(values))
	for name, list := range values {
		for _, v := range list {
			if v != "" {
				res[name] = append(res[name], v)
			}
		}
	}
	return res
}
