package middleware

import (
	"log/slog"
	"net/http"

	"seva-console/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const msgInternal = "Internal server error"

// ErrorHandler answers requests that recorded errors but wrote no body.
// Public errors carry their own httperr.Response; anything else is logged
// and becomes a bare 500.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		logger.Error("unhandled request error",
			"request_id", GetRequestID(c),
			"path", c.Request.URL.Path,
			"errors", c.Errors.String(),
		)
		c.JSON(http.StatusInternalServerError, httperr.Response{Message: msgInternal})
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"panic", rec,
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Response{
					Status:  http.StatusInternalServerError,
					Message: msgInternal,
				})
			}
		}()
		c.Next()
	}
}
