package routes

import (
	"gmcl_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimations = "/estimations"
)

func addEstimationRoutes(rg *gin.RouterGroup, estimationHandler *handlers.EstimationHandler) {
	estimations := rg.Group(PathEstimations)
	{
		estimations.POST("/create", estimationHandler.Create)
		estimations.GET("/getAll", estimationHandler.GetAll)
		estimations.PUT("/markAsSeen", estimationHandler.MarkAsSeen)
		estimations.PUT("/reply", estimationHandler.Reply)
		estimations.DELETE("/:id", estimationHandler.Delete)
	}
}
