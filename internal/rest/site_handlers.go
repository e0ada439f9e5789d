package rest

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
)

const (
	darkModeCookie = "dark_mode"
	darkModeMaxAge = 365 * 24 * time.Hour
)

// Newsletter handles POST /api/v1/newsletter
// @Summary Subscribe to the newsletter
// @Description Subscribing twice is not an error, the response says the email is already subscribed
// @Tags site
// @Accept json
// @Produce json
// @Param subscription body rest.NewsletterRequest true "Email"
// @Success 200 {object} rest.NewsletterResponse
// @Failure 400,500 {object} rest.NewsletterResponse
// @Router /api/v1/newsletter [post]
func (h *Handler) Newsletter(c echo.Context) error {
	var req NewsletterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewsletterResponse{Message: "invalid request body"})
	}

	err := h.manager.Subscribe(requestContext(c), req.Email)

	var verr *blogportal.ValidationError
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, NewsletterResponse{Success: true, Message: "Successfully subscribed to newsletter!"})
	case errors.Is(err, blogportal.ErrDuplicateSubscriber):
		return c.JSON(http.StatusOK, NewsletterResponse{Success: false, Message: "Email already subscribed"})
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, NewsletterResponse{Message: verr.Error()})
	}

	h.log.Error("newsletter subscription failed", "error", err)
	return c.JSON(http.StatusInternalServerError, NewsletterResponse{Message: internalErrorMessage})
}

// Contact handles POST /api/v1/contact
// @Summary Send a contact message
// @Description The message is logged and acknowledged
// @Tags site
// @Accept json
// @Produce json
// @Param message body rest.ContactRequest true "Message"
// @Success 200 {object} rest.MessageResponse
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/v1/contact [post]
func (h *Handler) Contact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "message is required"})
	}

	h.log.Info("contact message",
		"name", strings.TrimSpace(req.Name),
		"email", strings.TrimSpace(req.Email),
		"subject", strings.TrimSpace(req.Subject),
	)

	return c.JSON(http.StatusOK, MessageResponse{Message: "Thank you for your message! We will get back to you soon."})
}

// Theme handles POST /api/v1/theme
// @Summary Toggle dark mode
// @Tags site
// @Produce json
// @Success 200 {object} rest.ThemeResponse
// @Router /api/v1/theme [post]
func (h *Handler) Theme(c echo.Context) error {
	darkMode := true
	if cookie, err := c.Cookie(darkModeCookie); err == nil && cookie.Value == "true" {
		darkMode = false
	}

	value := "false"
	if darkMode {
		value = "true"
	}

	c.SetCookie(&http.Cookie{
		Name:     darkModeCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   int(darkModeMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, ThemeResponse{DarkMode: darkMode})
}
