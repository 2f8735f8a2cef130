package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textvault/textvault/pkg/logger"
)

// Error is the single client-facing failure shape. Every component raises
// one of these (or a wrapped one); anything else normalizes to a 500 with a
// generic message so storage-driver internals never leak to clients.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func Invalid(message string) *Error      { return New(http.StatusBadRequest, message) }
func Unauthorized(message string) *Error { return New(http.StatusUnauthorized, message) }
func NotFound(message string) *Error     { return New(http.StatusNotFound, message) }
func Conflict(message string) *Error     { return New(http.StatusConflict, message) }

// Normalize maps any error to a client-facing Error.
func Normalize(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return New(http.StatusInternalServerError, "Internal server error")
}

// Abort writes the normalized failure body {"error": message} and stops the
// handler chain. Internal detail is logged, never returned.
func Abort(c *gin.Context, err error) {
	ae := Normalize(err)
	if ae.Status >= http.StatusInternalServerError {
		logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(ae.Status, gin.H{"error": ae.Message})
}
