package http

import (
	"errors"
	"net/http"

	"github.com/ShivChilu/chicken-shop/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const msgInternal = "Internal server error"

var errInvalidBody = domain.Validation("Invalid request body")

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a {"detail": ...} body. Errors without a domain kind
// are logged and hidden behind a generic message.
func (h *Handler) fail(c *gin.Context, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		h.log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("request failed")
		c.AbortWithStatusJSON(code, ErrorResponse{Detail: msgInternal})
		return
	}
	c.AbortWithStatusJSON(code, ErrorResponse{Detail: err.Error()})
}

// bindJSON decodes the body into req. A missing required field is reported
// with msg; a body that does not decode at all gets a generic message.
func (h *Handler) bindJSON(c *gin.Context, req any, msg string) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		h.fail(c, domain.Validation(msg))
	} else {
		h.fail(c, errInvalidBody)
	}
	return false
}
