package routes

import (
	"gmcl_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRendezVous = "/rendezvous"
)

func addRendezVousRoutes(rg *gin.RouterGroup, rendezVousHandler *handlers.RendezVousHandler) {
	rendezvous := rg.Group(PathRendezVous)
	{
		rendezvous.POST("/create", rendezVousHandler.Create)
		rendezvous.POST("/create-confirm", rendezVousHandler.CreateAndConfirm)
		rendezvous.GET("/getAll", rendezVousHandler.GetAll)
		rendezvous.GET("/byDate/:date", rendezVousHandler.GetByDate)
		rendezvous.PUT("/confirm/:id", rendezVousHandler.Confirm)
		rendezvous.GET("/:id", rendezVousHandler.GetByID)
		rendezvous.PUT("/:id", rendezVousHandler.Update)
		rendezvous.DELETE("/:id", rendezVousHandler.Delete)
	}
}
