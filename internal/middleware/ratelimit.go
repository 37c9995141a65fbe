package middleware

import (
	"quiz_backend/internal/service"
	"quiz_backend/internal/util"
	"quiz_backend/pkg/monitoring"
	"strings"

	"github.com/gin-gonic/gin"
)

const illustrationPrefix = "/api/illustration"

// BanCheck runs the fixed-window/ban decision on every request. Illustration
// fetches do not count toward new violations (a question page loads many of
// them at once) but an active ban still blocks them.
func BanCheck(ban *service.BanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		exempt := strings.HasPrefix(c.Request.URL.Path, illustrationPrefix)

		decision := ban.Check(c.Request.Context(), c.ClientIP(), exempt)
		if !decision.Allowed {
			monitoring.BanCounter.WithLabelValues(decision.State.String()).Inc()
			util.TooManyRequests(c, decision.Message)
			c.Abort()
			return
		}
		c.Next()
	}
}
