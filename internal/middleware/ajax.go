package middleware

import (
	"quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// RequireAjax gates the API behind the X-Requested-With convention the
// frontend sends on every call. It is a CSRF speed bump, not authentication.
func RequireAjax() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Requested-With") != "XMLHttpRequest" {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
