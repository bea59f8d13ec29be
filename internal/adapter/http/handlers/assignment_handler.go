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

// AssignmentHandler handles HTTP requests for tool/part assignments.

type AssignmentHandler struct {
	usecase usecase.IAssignmentUseCase
}

func NewAssignmentHandler(uc usecase.IAssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{usecase: uc}
}

func assignmentCommand(req request.AssignmentRequest) (usecase.CreateAssignmentCommand, *pkg.AppError) {
	date, err := req.ResolveDate()
	if err != nil {
		return usecase.CreateAssignmentCommand{}, pkg.NewDomainErrorSimple("INVALID_DATE", "date must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
	}
	return usecase.CreateAssignmentCommand{
		EmployeeName: req.EmployeeName,
		ItemName:     req.ItemName,
		ItemID:       req.ItemID,
		Date:         date,
		Quantity:     req.Quantity,
	}, nil
}

func (h *AssignmentHandler) Create(c *gin.Context) {
	var req request.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing required fields", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	cmd, appErr := assignmentCommand(req)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[assignment][handler] create failed err=%v", err)
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *AssignmentHandler) GetAll(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[assignment][handler] list failed err=%v", err)
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetByItemID lists assignments consuming one stock item.
func (h *AssignmentHandler) GetByItemID(c *gin.Context) {
	list, err := h.usecase.ListByItemID(c.Request.Context(), c.Param("itemId"))
	if err != nil {
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *AssignmentHandler) GetByID(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *AssignmentHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req request.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing required fields", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	cmd, appErr := assignmentCommand(req)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, cmd)
	if err != nil {
		log.Printf("[assignment][handler] update failed id=%s err=%v", id, err)
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *AssignmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[assignment][handler] delete failed id=%s err=%v", id, err)
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Success: true, Message: "Assignment deleted successfully"})
}

func mapAssignmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssignmentID), errors.Is(err, usecase.ErrInvalidAssignmentData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssignmentNotFound):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_NOT_FOUND", "Assignment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
