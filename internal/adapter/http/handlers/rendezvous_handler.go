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

// RendezVousHandler handles HTTP requests for appointments.

type RendezVousHandler struct {
	usecase usecase.IRendezVousUseCase
}

func NewRendezVousHandler(uc usecase.IRendezVousUseCase) *RendezVousHandler {
	return &RendezVousHandler{usecase: uc}
}

func commandFromRequest(req request.RendezVousRequest) (usecase.CreateRendezVousCommand, *pkg.AppError) {
	date, err := req.ResolveDate()
	if err != nil {
		return usecase.CreateRendezVousCommand{}, pkg.NewDomainErrorSimple("INVALID_DATE", "date must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
	}
	return usecase.CreateRendezVousCommand{
		ClientFullName:    req.ClientFullName,
		ClientPhoneNumber: req.ClientPhoneNumber,
		ClientEmail:       req.ClientEmail,
		Date:              date,
		Heure:             req.Heure,
		Type:              req.Type,
		Description:       req.Description,
		EstimationID:      req.EstimationID,
		PreferredLanguage: req.PreferredLanguage,
		ContactMethod:     req.ContactMethod,
	}, nil
}

// Create registers a new appointment request and alerts the managers.
func (h *RendezVousHandler) Create(c *gin.Context) {
	var req request.RendezVousRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing required fields", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	cmd, appErr := commandFromRequest(req)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[rendezvous][handler] create failed err=%v", err)
		appErr := mapRendezVousError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[rendezvous][handler] create success id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromRendezVous(created, "Rendez-vous created successfully"))
}

// CreateAndConfirm registers a staff-entered appointment already confirmed.
func (h *RendezVousHandler) CreateAndConfirm(c *gin.Context) {
	var req request.RendezVousRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing required fields", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	cmd, appErr := commandFromRequest(req)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateAndConfirm(c.Request.Context(), cmd, req.ConfirmedBy)
	if err != nil {
		log.Printf("[rendezvous][handler] create-confirm failed err=%v", err)
		appErr := mapRendezVousError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[rendezvous][handler] create-confirm success id=%s by=%s", created.ID, created.ConfirmedBy)

	c.JSON(http.StatusCreated, response.FromRendezVous(created, "Rendez-vous created and confirmed"))
}

// Confirm marks an existing appointment confirmed and notifies the client.
func (h *RendezVousHandler) Confirm(c *gin.Context) {
	id := c.Param("id")
	var req request.ConfirmRendezVousRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "confirmedBy is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Confirm(c.Request.Context(), id, req.ConfirmedBy)
	if err != nil {
		log.Printf("[rendezvous][handler] confirm failed id=%s err=%v", id, err)
		appErr := mapRendezVousError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRendezVous(updated, "Rendez-vous confirmed"))
}

// GetAll lists appointments, optionally bounded by startDate/endDate query
// parameters (YYYY-MM-DD, end date inclusive).
func (h *RendezVousHandler) GetAll(c *gin.Context) {
	list, err := h.usecase.GetAll(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		log.Printf("[rendezvous][handler] list failed err=%v", err)
		appErr := mapRendezVousError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetByID returns one appointment.
func (h *RendezVousHandler) GetByID(c *gin.Context) {
	rdv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRendezVousError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, rdv)
}

// GetByDate returns the appointments of one calendar day.
func (h *RendezVousHandler) GetByDate(c *gin.Context) {
	list, err := h.usecase.GetByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		appErr := mapRendezVousError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, list)
}

// Update replaces the appointment details, preserving its confirmation state.
func (h *RendezVousHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req request.RendezVousRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing required fields", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	cmd, appErr := commandFromRequest(req)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, cmd)
	if err != nil {
		log.Printf("[rendezvous][handler] update failed id=%s err=%v", id, err)
		appErr := mapRendezVousError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRendezVous(updated, "Rendez-vous updated successfully"))
}

// Delete removes an appointment.
func (h *RendezVousHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[rendezvous][handler] delete failed id=%s err=%v", id, err)
		appErr := mapRendezVousError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapRendezVousError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRendezVousID), errors.Is(err, usecase.ErrInvalidRendezVousData),
		errors.Is(err, usecase.ErrInvalidConfirmedBy), errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRendezVousNotFound):
		return pkg.NewDomainErrorSimple("RENDEZVOUS_NOT_FOUND", "Rendez-vous not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
