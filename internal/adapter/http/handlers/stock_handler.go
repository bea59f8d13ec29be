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

// StockHandler handles HTTP requests for workshop inventory.

type StockHandler struct {
	usecase usecase.IStockUseCase
}

func NewStockHandler(uc usecase.IStockUseCase) *StockHandler {
	return &StockHandler{usecase: uc}
}

func (h *StockHandler) Create(c *gin.Context) {
	var req request.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "name and category are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateStockCommand{
		Name:             req.Name,
		Quantity:         req.Quantity,
		Category:         req.Category,
		QuantityConsumed: req.QuantityConsumed,
	})
	if err != nil {
		log.Printf("[stock][handler] create failed err=%v", err)
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *StockHandler) GetAll(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[stock][handler] list failed err=%v", err)
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *StockHandler) GetByID(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, s)
}

func (h *StockHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req request.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "name and category are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, usecase.CreateStockCommand{
		Name:             req.Name,
		Quantity:         req.Quantity,
		Category:         req.Category,
		QuantityConsumed: req.QuantityConsumed,
	})
	if err != nil {
		log.Printf("[stock][handler] update failed id=%s err=%v", id, err)
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete removes the stock and cascades to its assignments.
func (h *StockHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[stock][handler] delete failed id=%s err=%v", id, err)
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Success: true, Message: "Stock deleted successfully"})
}

func mapStockError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStockID), errors.Is(err, usecase.ErrInvalidStockData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStockNotFound):
		return pkg.NewDomainErrorSimple("STOCK_NOT_FOUND", "Stock not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
