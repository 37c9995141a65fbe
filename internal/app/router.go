package app

import (
	"net/http"
	"os"
	"path/filepath"
	"quiz_backend/internal/config"
	"quiz_backend/internal/middleware"
	"quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// Liveness probe, outside the AJAX gate so monitoring can reach it.
	router.GET("/api/health", c.health.HealthCheck)

	api := router.Group("/api")
	api.Use(middleware.RequireAjax())
	{
		api.GET("/questions", c.quiz.GetQuestions)
		api.POST("/check-answers", c.quiz.CheckAnswers)
		api.GET("/illustration/:key", c.illustration.GetIllustration)
	}

	a.registerStatic(router, cfg)
}

// registerStatic serves the single-page frontend: the asset directories as-is,
// and index.html for every other GET so client-side routes survive a reload.
func (a *App) registerStatic(router *gin.Engine, cfg *config.Config) {
	staticDir := cfg.Server.StaticDir

	router.Static("/images", filepath.Join(staticDir, "images"))
	router.Static("/plugins", filepath.Join(staticDir, "plugins"))

	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusNotFound)
			return
		}

		reqPath := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(reqPath); err == nil && !info.IsDir() {
			c.File(reqPath)
			return
		}

		c.File(filepath.Join(staticDir, "index.html"))
	})
}
