package handlers

import (
	"errors"
	"log"
	"net/http"

	"gmcl_backoffice/internal/adapter/http/dto/request"
	"gmcl_backoffice/internal/adapter/http/dto/response"
	"gmcl_backoffice/internal/usecase"
	"gmcl_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// TimeEntryHandler handles HTTP requests for worked-hours records.

type TimeEntryHandler struct {
	usecase usecase.ITimeEntryUseCase
}

func NewTimeEntryHandler(uc usecase.ITimeEntryUseCase) *TimeEntryHandler {
	return &TimeEntryHandler{usecase: uc}
}

func timeEntryCommand(req request.TimeEntryRequest) (usecase.CreateTimeEntryCommand, *pkg.AppError) {
	date, err := req.ResolveDate()
	if err != nil {
		return usecase.CreateTimeEntryCommand{}, pkg.NewDomainErrorSimple("INVALID_DATE", "date must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
	}
	return usecase.CreateTimeEntryCommand{
		EmployeeName: req.EmployeeName,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Hours:        req.Hours,
		Note:         req.Note,
	}, nil
}

func (h *TimeEntryHandler) Create(c *gin.Context) {
	var req request.TimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "employeeName and date are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	cmd, appErr := timeEntryCommand(req)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[timeentry][handler] create failed err=%v", err)
		appErr := mapTimeEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetAll lists entries, optionally filtered by employeeName, startDate and
// endDate query parameters (YYYY-MM-DD, end date inclusive).
func (h *TimeEntryHandler) GetAll(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), c.Query("employeeName"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		log.Printf("[timeentry][handler] list failed err=%v", err)
		appErr := mapTimeEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetByEmployeeAndDate returns one employee's entry for a calendar day,
// via employeeName and date query parameters.
func (h *TimeEntryHandler) GetByEmployeeAndDate(c *gin.Context) {
	entry, err := h.usecase.GetByEmployeeAndDate(c.Request.Context(), c.Query("employeeName"), c.Query("date"))
	if err != nil {
		appErr := mapTimeEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Report aggregates total hours per employee over a window.
func (h *TimeEntryHandler) Report(c *gin.Context) {
	report, err := h.usecase.Report(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		log.Printf("[timeentry][handler] report failed err=%v", err)
		appErr := mapTimeEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *TimeEntryHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req request.TimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "employeeName and date are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	cmd, appErr := timeEntryCommand(req)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, cmd)
	if err != nil {
		log.Printf("[timeentry][handler] update failed id=%s err=%v", id, err)
		appErr := mapTimeEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *TimeEntryHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[timeentry][handler] delete failed id=%s err=%v", id, err)
		appErr := mapTimeEntryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Success: true, Message: "Time entry deleted successfully"})
}

func mapTimeEntryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTimeEntryID), errors.Is(err, usecase.ErrInvalidTimeEntryData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTimeEntryNotFound):
		return pkg.NewDomainErrorSimple("TIME_ENTRY_NOT_FOUND", "Time entry not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
