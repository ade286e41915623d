package punch

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	adjustments := r.Group("/punch-adjustments")
	{
		adjustments.POST("/preview", handler.PreviewEmail)
	}
}
