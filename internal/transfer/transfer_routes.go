package transfer

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.POST("/import", handler.Import)
		employees.GET("/export", handler.Export)
		employees.GET("/template", handler.Template)
	}
}
