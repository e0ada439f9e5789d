package rest

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
)

const bodyLimit = "16M"

func (h *Handler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.log.Info("HTTP request",
				"method", v.Method,
				"path", v.URIPath,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
			)
			return nil
		},
	})
}

// withSession puts the identity of a valid session cookie into the request
// context. Invalid tokens and tokens of deleted users clear the cookie.
func (h *Handler) withSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(h.sessions.CookieName())
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		identity, err := h.sessions.Parse(cookie.Value)
		if err != nil {
			h.log.Debug("invalid session", "error", err)
			c.SetCookie(h.sessions.ClearCookie())
			return next(c)
		}

		user, err := h.manager.UserByID(requestContext(c), identity.UserID)
		if err != nil {
			return h.errorResponse(c, err)
		} else if user == nil {
			c.SetCookie(h.sessions.ClearCookie())
			return next(c)
		}

		identity = blogportal.Identity{UserID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin}
		r := c.Request()
		c.SetRequest(r.WithContext(blogportal.WithIdentity(r.Context(), identity)))

		return next(c)
	}
}

func (h *Handler) requireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := blogportal.RequireUser(requestContext(c)); err != nil {
			return h.errorResponse(c, err)
		}
		return next(c)
	}
}

func (h *Handler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := blogportal.RequireUser(requestContext(c)); err != nil {
			return h.errorResponse(c, err)
		}
		if _, err := blogportal.RequireAdmin(requestContext(c)); err != nil {
			return h.errorResponse(c, err)
		}
		return next(c)
	}
}
