package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
)

// Register handles POST /api/v1/register
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body rest.RegisterRequest true "Account"
// @Success 201 {object} rest.User
// @Failure 400,409,500 {object} rest.ErrorResponse
// @Router /api/v1/register [post]
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	user, err := h.manager.Register(requestContext(c), blogportal.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, NewUser(user))
}

// Login handles POST /api/v1/login
// @Summary Log in
// @Description Checks the credentials and sets the session cookie
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body rest.LoginRequest true "Credentials"
// @Success 200 {object} rest.User
// @Failure 400,401,500 {object} rest.ErrorResponse
// @Router /api/v1/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	user, err := h.manager.Authenticate(requestContext(c), req.Username, req.Password)
	if err != nil {
		return h.errorResponse(c, err)
	}

	token, expiresAt, err := h.sessions.Issue(blogportal.Identity{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
	if err != nil {
		return h.errorResponse(c, err)
	}

	c.SetCookie(h.sessions.Cookie(token, expiresAt))
	h.log.Info("user logged in", "userId", user.ID, "username", user.Username)

	return c.JSON(http.StatusOK, NewUser(user))
}

// Logout handles POST /api/v1/logout
// @Summary Log out
// @Tags users
// @Produce json
// @Success 200 {object} rest.MessageResponse
// @Failure 401 {object} rest.ErrorResponse
// @Router /api/v1/logout [post]
func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(h.sessions.ClearCookie())
	return c.JSON(http.StatusOK, MessageResponse{Message: "You have been logged out"})
}

// Me handles GET /api/v1/me
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} rest.User
// @Failure 401,500 {object} rest.ErrorResponse
// @Router /api/v1/me [get]
func (h *Handler) Me(c echo.Context) error {
	identity, err := blogportal.RequireUser(requestContext(c))
	if err != nil {
		return h.errorResponse(c, err)
	}

	user, err := h.manager.UserByID(requestContext(c), identity.UserID)
	if err != nil {
		return h.errorResponse(c, err)
	} else if user == nil {
		return h.errorResponse(c, blogportal.ErrUnauthorized)
	}

	return c.JSON(http.StatusOK, NewUser(user))
}
