package rest

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/daniilsolovey/blog-portal/internal/media"
)

const featuredImageField = "featured_image"

// Dashboard handles GET /api/v1/admin/dashboard
// @Summary Admin dashboard
// @Tags admin
// @Produce json
// @Success 200 {object} rest.Dashboard
// @Failure 401,403,500 {object} rest.ErrorResponse
// @Router /api/v1/admin/dashboard [get]
func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.manager.Dashboard(requestContext(c))
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, NewDashboard(d))
}

// AdminPosts handles GET /api/v1/admin/posts
// @Summary All posts
// @Description Returns every post including drafts, newest first
// @Tags admin
// @Produce json
// @Success 200 {array} rest.PostSummary
// @Failure 401,403,500 {object} rest.ErrorResponse
// @Router /api/v1/admin/posts [get]
func (h *Handler) AdminPosts(c echo.Context) error {
	list, err := h.manager.AdminPosts(requestContext(c))
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, Map(list, NewPostSummary))
}

// AdminPost handles GET /api/v1/admin/posts/:id
// @Summary Post for editing
// @Description Returns a post regardless of its publication state
// @Tags admin
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} rest.Post
// @Failure 400,401,403,404,500 {object} rest.ErrorResponse
// @Router /api/v1/admin/posts/{id} [get]
func (h *Handler) AdminPost(c echo.Context) error {
	id, ok := intParam(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid id")
	}

	post, err := h.manager.PostByID(requestContext(c), id)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// CreatePost handles POST /api/v1/admin/posts
// @Summary Create a post
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param content formData string true "Markdown content"
// @Param excerpt formData string false "Excerpt"
// @Param category_id formData int false "Category ID"
// @Param tag_ids formData []int false "Tag IDs"
// @Param tag_names formData string false "Comma separated tag names"
// @Param is_published formData bool false "Publish"
// @Param is_featured formData bool false "Feature"
// @Param featured_image formData file false "Featured image"
// @Success 201 {object} rest.Post
// @Failure 400,401,403,409,500 {object} rest.ErrorResponse
// @Router /api/v1/admin/posts [post]
func (h *Handler) CreatePost(c echo.Context) error {
	in, err := postInput(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	upload, closer, err := featuredImage(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid featured image")
	}
	defer closer()

	post, err := h.manager.CreatePost(requestContext(c), in, upload)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, NewPost(*post))
}

// UpdatePost handles PUT /api/v1/admin/posts/:id
// @Summary Update a post
// @Description Replaces the editable fields. Without a new image the current one is kept.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Post ID"
// @Param title formData string true "Title"
// @Param content formData string true "Markdown content"
// @Param excerpt formData string false "Excerpt"
// @Param category_id formData int false "Category ID"
// @Param tag_ids formData []int false "Tag IDs"
// @Param tag_names formData string false "Comma separated tag names"
// @Param is_published formData bool false "Publish"
// @Param is_featured formData bool false "Feature"
// @Param featured_image formData file false "Featured image"
// @Success 200 {object} rest.Post
// @Failure 400,401,403,404,500 {object} rest.ErrorResponse
// @Router /api/v1/admin/posts/{id} [put]
func (h *Handler) UpdatePost(c echo.Context) error {
	id, ok := intParam(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid id")
	}

	in, err := postInput(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	upload, closer, err := featuredImage(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid featured image")
	}
	defer closer()

	post, err := h.manager.UpdatePost(requestContext(c), id, in, upload)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// TogglePublish handles POST /api/v1/admin/posts/:id/publish
// @Summary Toggle publication
// @Tags admin
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} rest.ToggleResponse
// @Failure 400,401,403,404,500 {object} rest.ErrorResponse
// @Router /api/v1/admin/posts/{id}/publish [post]
func (h *Handler) TogglePublish(c echo.Context) error {
	id, ok := intParam(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid id")
	}

	value, err := h.manager.TogglePublish(requestContext(c), id)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, ToggleResponse{Value: value})
}

// ToggleFeature handles POST /api/v1/admin/posts/:id/feature
// @Summary Toggle featured flag
// @Tags admin
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} rest.ToggleResponse
// @Failure 400,401,403,404,500 {object} rest.ErrorResponse
// @Router /api/v1/admin/posts/{id}/feature [post]
func (h *Handler) ToggleFeature(c echo.Context) error {
	id, ok := intParam(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid id")
	}

	value, err := h.manager.ToggleFeature(requestContext(c), id)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, ToggleResponse{Value: value})
}

// DeletePost handles DELETE /api/v1/admin/posts/:id
// @Summary Delete a post
// @Description Deletes the post with its comments and tag links
// @Tags admin
// @Param id path int true "Post ID"
// @Success 204
// @Failure 400,401,403,404,500 {object} rest.ErrorResponse
// @Router /api/v1/admin/posts/{id} [delete]
func (h *Handler) DeletePost(c echo.Context) error {
	id, ok := intParam(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid id")
	}

	if err := h.manager.DeletePost(requestContext(c), id); err != nil {
		return h.errorResponse(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AdminComments handles GET /api/v1/admin/comments
// @Summary All comments
// @Tags admin
// @Produce json
// @Success 200 {array} rest.Comment
// @Failure 401,403,500 {object} rest.ErrorResponse
// @Router /api/v1/admin/comments [get]
func (h *Handler) AdminComments(c echo.Context) error {
	list, err := h.manager.AdminComments(requestContext(c))
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, Map(list, NewComment))
}

// ApproveComment handles POST /api/v1/admin/comments/:id/approve
// @Summary Approve a comment
// @Tags admin
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 400,401,403,404,500 {object} rest.ErrorResponse
// @Router /api/v1/admin/comments/{id}/approve [post]
func (h *Handler) ApproveComment(c echo.Context) error {
	id, ok := intParam(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid id")
	}

	if err := h.manager.ApproveComment(requestContext(c), id); err != nil {
		return h.errorResponse(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteComment handles DELETE /api/v1/admin/comments/:id
// @Summary Delete a comment
// @Tags admin
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 400,401,403,404,500 {object} rest.ErrorResponse
// @Router /api/v1/admin/comments/{id} [delete]
func (h *Handler) DeleteComment(c echo.Context) error {
	id, ok := intParam(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid id")
	}

	if err := h.manager.DeleteComment(requestContext(c), id); err != nil {
		return h.errorResponse(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// postInput reads the post form fields. Tag ids and names may be repeated
// or comma separated.
func postInput(c echo.Context) (blogportal.PostInput, error) {
	var (
		in         blogportal.PostInput
		categoryID int
		tagNames   []string
	)

	err := echo.FormFieldBinder(c).
		String("title", &in.Title).
		String("content", &in.Content).
		String("excerpt", &in.Excerpt).
		Int("category_id", &categoryID).
		CustomFunc("tag_ids", intList("tag_ids", &in.TagIDs)).
		Strings("tag_names", &tagNames).
		CustomFunc("is_published", checkbox("is_published", &in.IsPublished)).
		CustomFunc("is_featured", checkbox("is_featured", &in.IsFeatured)).
		BindError()

	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return in, fmt.Errorf("invalid %s", bindErr.Field)
	} else if err != nil {
		return in, err
	}

	if categoryID != 0 {
		in.CategoryID = &categoryID
	}
	in.TagNames = splitList(tagNames)

	return in, nil
}

// featuredImage returns the uploaded image or nil when none was sent.
func featuredImage(c echo.Context) (*media.Upload, func(), error) {
	noop := func() {}

	fh, err := c.FormFile(featuredImageField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, noop, nil
	} else if err != nil {
		return nil, noop, err
	} else if fh.Filename == "" {
		return nil, noop, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}

	return &media.Upload{
		Filename:    fh.Filename,
		ContentType: contentType(fh),
		Body:        f,
	}, func() { f.Close() }, nil
}

func contentType(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get(echo.HeaderContentType); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func splitList(values []string) []string {
	var res []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				res = append(res, part)
			}
		}
	}
	return res
}

// intList accepts repeated fields as well as comma separated ids.
func intList(name string, dest *[]int) func([]string) []error {
	return func(values []string) []error {
		for _, v := range splitList(values) {
			id, err := strconv.Atoi(v)
			if err != nil {
				return []error{fmt.Errorf("invalid %s", name)}
			}
			*dest = append(*dest, id)
		}
		return nil
	}
}

// checkbox treats a missing field as false; browsers send "on".
func checkbox(name string, dest *bool) func([]string) []error {
	return func(values []string) []error {
		switch v := strings.ToLower(strings.TrimSpace(values[0])); v {
		case "":
			*dest = false
		case "on":
			*dest = true
		default:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return []error{fmt.Errorf("invalid %s", name)}
			}
			*dest = b
		}
		return nil
	}
}
