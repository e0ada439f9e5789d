package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	apiV1Prefix = "/api/v1"
	adminPrefix = "/admin"
	healthPath  = "/health"
	rpcPath     = "/rpc/"
)

// RegisterRoutes creates the echo instance serving the API.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.requestLogger())
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(h.withSession)

	e.GET(healthPath, h.Health)

	h.registerAPIRoutes(e.Group(apiV1Prefix))
	h.registerStaticRoutes(e)

	if h.opts.RPC != nil {
		e.Any(rpcPath, echo.WrapHandler(h.opts.RPC))
	}

	return e
}

func (h *Handler) registerAPIRoutes(api *echo.Group) {
	api.GET("/home", h.Home)
	api.GET("/posts", h.Posts)
	api.GET("/posts/:slug", h.PostBySlug)
	api.GET("/categories", h.Categories)
	api.GET("/tags", h.Tags)

	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout, h.requireUser)
	api.GET("/me", h.Me, h.requireUser)
	api.POST("/posts/:id/comments", h.AddComment, h.requireUser)

	api.POST("/newsletter", h.Newsletter)
	api.POST("/contact", h.Contact)
	api.POST("/theme", h.Theme)

	admin := api.Group(adminPrefix, h.requireAdmin)
	admin.GET("/dashboard", h.Dashboard)
	admin.GET("/posts", h.AdminPosts)
	admin.POST("/posts", h.CreatePost)
	admin.GET("/posts/:id", h.AdminPost)
	admin.PUT("/posts/:id", h.UpdatePost)
	admin.POST("/posts/:id/publish", h.TogglePublish)
	admin.POST("/posts/:id/feature", h.ToggleFeature)
	admin.DELETE("/posts/:id", h.DeletePost)
	admin.GET("/comments", h.AdminComments)
	admin.POST("/comments/:id/approve", h.ApproveComment)
	admin.DELETE("/comments/:id", h.DeleteComment)
}

func (h *Handler) registerStaticRoutes(e *echo.Echo) {
	if h.opts.UploadsDir == "" {
		return
	}

	prefix := "/" + strings.Trim(h.opts.UploadsPrefix, "/")
	if prefix == "/" {
		prefix = "/uploads"
	}

	e.Static(prefix, h.opts.UploadsDir)
}

// Health handles GET /health
// @Summary Health check
// @Description Reports service health including database connectivity
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} rest.ErrorResponse
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	if err := h.db.Ping(requestContext(c)); err != nil {
		return h.handleError(c, err, http.StatusServiceUnavailable, "database unavailable")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
