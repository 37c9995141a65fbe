package util

import (
	"net/http"
	"quiz_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// The quiz frontend expects these exact literal bodies, so error responses are
// plain text rather than a JSON envelope.

func Forbidden(c *gin.Context) {
	c.String(http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	c.String(http.StatusBadRequest, message)
}

func TooManyRequests(c *gin.Context, message string) {
	c.String(http.StatusTooManyRequests, message)
}

func ServerError(c *gin.Context) {
	c.String(http.StatusInternalServerError, "Server error")
}

// LogServerError logs the upstream failure server-side and sends the generic
// body; error detail never reaches the client.
func LogServerError(c *gin.Context, err error) {
	logger.Log.Error("upstream failure",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	ServerError(c)
}
