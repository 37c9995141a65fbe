package controller

import (
	"net/http"
	"quiz_backend/internal/service"
	"quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type IllustrationController struct {
	Storage *service.StorageService
}

func NewIllustrationController(storage *service.StorageService) *IllustrationController {
	return &IllustrationController{Storage: storage}
}

// GetIllustration streams one illustration from object storage. All fetch
// failures, missing keys included, surface as the generic server error.
func (c *IllustrationController) GetIllustration(ctx *gin.Context) {
	data, err := c.Storage.Fetch(ctx.Request.Context(), ctx.Param("key"))
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "image/png", data)
}
