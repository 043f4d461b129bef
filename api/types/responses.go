package types

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/pkg/errors"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// IsNotFound reports whether an error represents a missing record. Repositories
// return plain "X not found" errors; application errors carry the code.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errors.ErrCodeNotFound) {
		return true
	}
	msg := err.Error()
	return strings.HasSuffix(msg, "not found") || msg == "record not found"
}

// ErrorResponse renders a structured error body, honoring the HTTP status
// carried by application errors.
func ErrorResponse(c *gin.Context, err error) {
	code := errors.GetCode(err)
	httpCode := errors.GetHTTPCode(err)
	if httpCode == http.StatusInternalServerError && IsNotFound(err) {
		code = errors.ErrCodeNotFound
		httpCode = http.StatusNotFound
	}

	c.JSON(httpCode, gin.H{
		"status":  StatusError,
		"code":    code,
		"message": err.Error(),
	})
}
