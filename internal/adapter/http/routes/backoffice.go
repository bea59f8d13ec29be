package routes

import (
	"gmcl_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEmployees   = "/employees"
	PathStocks      = "/stocks"
	PathAssignments = "/assignments"
	PathTimeEntries = "/time-entries"
)

func addBackofficeRoutes(
	rg *gin.RouterGroup,
	employeeHandler *handlers.EmployeeHandler,
	stockHandler *handlers.StockHandler,
	assignmentHandler *handlers.AssignmentHandler,
	timeEntryHandler *handlers.TimeEntryHandler,
) {
	employees := rg.Group(PathEmployees)
	{
		employees.POST("/create", employeeHandler.Create)
		employees.GET("/getAll", employeeHandler.GetAll)
		employees.GET("/:id", employeeHandler.GetByID)
		employees.PUT("/:id", employeeHandler.Update)
		employees.DELETE("/:id", employeeHandler.Delete)
	}

	stocks := rg.Group(PathStocks)
	{
		stocks.POST("/create", stockHandler.Create)
		stocks.GET("/getAll", stockHandler.GetAll)
		stocks.GET("/:id", stockHandler.GetByID)
		stocks.PUT("/:id", stockHandler.Update)
		stocks.DELETE("/:id", stockHandler.Delete)
	}

	assignments := rg.Group(PathAssignments)
	{
		assignments.POST("/create", assignmentHandler.Create)
		assignments.GET("/getAll", assignmentHandler.GetAll)
		assignments.GET("/by-item/:itemId", assignmentHandler.GetByItemID)
		assignments.GET("/:id", assignmentHandler.GetByID)
		assignments.PUT("/:id", assignmentHandler.Update)
		assignments.DELETE("/:id", assignmentHandler.Delete)
	}

	timeEntries := rg.Group(PathTimeEntries)
	{
		timeEntries.POST("", timeEntryHandler.Create)
		timeEntries.GET("", timeEntryHandler.GetAll)
		timeEntries.GET("/employe", timeEntryHandler.GetByEmployeeAndDate)
		timeEntries.GET("/report", timeEntryHandler.Report)
		timeEntries.PUT("/update/:id", timeEntryHandler.Update)
		timeEntries.DELETE("/:id", timeEntryHandler.Delete)
	}
}
