package response

import (
	"net/http"

	"github.com/TheDemonTuan/client-score-management/pkg/apperror"
	"github.com/TheDemonTuan/client-score-management/pkg/envelope"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Success writes a success envelope with the given status code.
func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, envelope.Envelope[any]{Code: code, Message: message, Data: data})
}

// List writes a success envelope with optional pagination meta.
func List(c *gin.Context, message string, data any, meta *envelope.Meta) {
	c.JSON(http.StatusOK, envelope.Envelope[any]{
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// Error standardized error response
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("internal error")
	}

	c.JSON(code, envelope.Envelope[any]{Code: code, Message: err.Error(), Data: nil})
}
