package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/daniilsolovey/blog-portal/internal/session"
)

const internalErrorMessage = "internal error"

type Pinger interface {
	Ping(ctx context.Context) error
}

// Options holds optional handler settings.
type Options struct {
	// UploadsDir is served under /<UploadsPrefix>/ when not empty.
	UploadsDir    string
	UploadsPrefix string
	// RPC is mounted under /rpc/ when not nil.
	RPC http.Handler
}

type Handler struct {
	manager  *blogportal.Manager
	sessions *session.Manager
	db       Pinger
	log      *slog.Logger
	opts     Options
}

func NewHandler(manager *blogportal.Manager, sessions *session.Manager, db Pinger, log *slog.Logger, opts Options) *Handler {
	return &Handler{
		manager:  manager,
		sessions: sessions,
		db:       db,
		log:      log,
		opts:     opts,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// errorResponse writes the response for a manager error.
func (h *Handler) errorResponse(c echo.Context, err error) error {
	status, resp := errorStatus(err)
	if status == http.StatusInternalServerError {
		return h.handleError(c, err, status, resp.Error)
	}

	h.log.Debug("request rejected", "error", err, "statusCode", status)
	return c.JSON(status, resp)
}

func errorStatus(err error) (int, ErrorResponse) {
	var verr *blogportal.ValidationError

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, ErrorResponse{Error: verr.Error()}
	case errors.Is(err, blogportal.ErrValidation):
		return http.StatusBadRequest, ErrorResponse{Error: blogportal.ErrValidation.Error()}
	case errors.Is(err, blogportal.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: blogportal.ErrNotFound.Error()}
	case errors.Is(err, blogportal.ErrForbidden):
		return http.StatusForbidden, ErrorResponse{Error: blogportal.ErrForbidden.Error(), Redirect: "/"}
	case errors.Is(err, blogportal.ErrUnauthorized):
		return http.StatusUnauthorized, ErrorResponse{Error: blogportal.ErrUnauthorized.Error(), Redirect: "/login"}
	case errors.Is(err, blogportal.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrorResponse{Error: blogportal.ErrInvalidCredentials.Error()}
	case errors.Is(err, blogportal.ErrDuplicateIdentity):
		return http.StatusConflict, ErrorResponse{Error: blogportal.ErrDuplicateIdentity.Error()}
	case errors.Is(err, blogportal.ErrSlugConflict):
		return http.StatusConflict, ErrorResponse{Error: blogportal.ErrSlugConflict.Error()}
	case errors.Is(err, blogportal.ErrDuplicateSubscriber):
		return http.StatusConflict, ErrorResponse{Error: blogportal.ErrDuplicateSubscriber.Error()}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: internalErrorMessage}
}

func requestContext(c echo.Context) context.Context {
	return c.Request().Context()
}

func intParam(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
