package vacation

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	vacations := r.Group("/vacations")
	{
		vacations.GET("", handler.GetAll)
		vacations.GET("/export", handler.Export)
		vacations.GET("/:id", handler.GetByID)
		vacations.POST("", handler.Create)
		vacations.POST("/reminders/check", handler.CheckReminders)
		vacations.PUT("/:id", handler.Update)
		vacations.PATCH("/:id/status", handler.UpdateStatus)
		vacations.DELETE("/:id", handler.Delete)
		vacations.DELETE("", handler.DeleteAll)
	}
}
