package handlers

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gmcl_backoffice/internal/adapter/http/dto/request"
	"gmcl_backoffice/internal/adapter/http/dto/response"
	"gmcl_backoffice/internal/usecase"
	"gmcl_backoffice/internal/usecase/interfaces"
	"gmcl_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

const (
	maxEstimationImages    = 5
	maxEstimationImageSize = 5 << 20 // 5MB per file
	imagesFormField        = "images"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/heic": true,
	"image/heif": true,
}

// EstimationHandler handles HTTP requests for damage estimations.

type EstimationHandler struct {
	usecase   usecase.IEstimationUseCase
	uploadDir string
}

func NewEstimationHandler(uc usecase.IEstimationUseCase, uploadDir string) *EstimationHandler {
	return &EstimationHandler{usecase: uc, uploadDir: uploadDir}
}

// Create receives the multipart intake form, saves valid images to the
// uploads directory and runs the estimation pipeline. All files are
// validated before any of them is written to disk.
func (h *EstimationHandler) Create(c *gin.Context) {
	var req request.CreateEstimationRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Printf("[estimation][handler] invalid form err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing required fields", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	files, appErr := h.collectImages(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateEstimationCommand{
		Type:              req.Type,
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		Brand:             req.Brand,
		Model:             req.Model,
		Trim:              req.Trim,
		Year:              req.Year,
		Description:       req.Description,
		PreferredLanguage: req.PreferredLanguage,
		ContactMethod:     req.ContactMethod,
		Files:             files,
	})
	if err != nil {
		log.Printf("[estimation][handler] create failed err=%v", err)
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[estimation][handler] create success id=%s images=%d", created.ID, len(created.Images))

	c.JSON(http.StatusCreated, response.FromEstimation(created, "Estimation created successfully"))
}

// collectImages validates every uploaded part (count, size, content type)
// and only then writes them to the uploads directory. HEIC/HEIF parts are
// saved under a .jpg name so the stored path already matches the converted
// output.
func (h *EstimationHandler) collectImages(c *gin.Context) ([]interfaces.UploadedImage, *pkg.AppError) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body at all means no images, which is fine.
		return nil, nil
	}
	parts := form.File[imagesFormField]
	if len(parts) == 0 {
		return nil, nil
	}
	if len(parts) > maxEstimationImages {
		return nil, pkg.NewDomainErrorSimple("TOO_MANY_FILES", fmt.Sprintf("At most %d images are allowed", maxEstimationImages), http.StatusBadRequest)
	}
	for _, part := range parts {
		if part.Size > maxEstimationImageSize {
			return nil, pkg.NewDomainErrorSimple("FILE_TOO_LARGE", fmt.Sprintf("Each image must be at most %dMB", maxEstimationImageSize>>20), http.StatusBadRequest)
		}
		if !allowedImageTypes[imageContentType(part)] {
			return nil, pkg.NewDomainErrorSimple("UNSUPPORTED_FILE_TYPE", "Only JPEG, PNG and HEIC images are accepted", http.StatusBadRequest)
		}
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		log.Printf("[estimation][handler] creating upload dir failed dir=%s err=%v", h.uploadDir, err)
		return nil, pkg.NewDomainError("UPLOAD_FAILED", "Could not store uploaded images", err, http.StatusInternalServerError)
	}

	files := make([]interfaces.UploadedImage, 0, len(parts))
	for _, part := range parts {
		contentType := imageContentType(part)
		dst := filepath.Join(h.uploadDir, uploadName(part.Filename, contentType))
		if err := c.SaveUploadedFile(part, dst); err != nil {
			log.Printf("[estimation][handler] saving upload failed name=%s err=%v", part.Filename, err)
			return nil, pkg.NewDomainError("UPLOAD_FAILED", "Could not store uploaded images", err, http.StatusInternalServerError)
		}
		files = append(files, interfaces.UploadedImage{
			Path:         dst,
			ContentType:  contentType,
			OriginalName: part.Filename,
		})
	}
	return files, nil
}

func imageContentType(part *multipart.FileHeader) string {
	contentType := strings.ToLower(strings.TrimSpace(part.Header.Get("Content-Type")))
	if contentType != "" {
		return contentType
	}
	switch strings.ToLower(filepath.Ext(part.Filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".heic":
		return "image/heic"
	case ".heif":
		return "image/heif"
	}
	return ""
}

// uploadName builds a collision-resistant file name; HEIC/HEIF inputs get a
// .jpg extension up front since they are converted in place.
func uploadName(original, contentType string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if contentType == "image/heic" || contentType == "image/heif" || ext == ".heic" || ext == ".heif" {
		ext = ".jpg"
	}
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
}

// GetAll lists every estimation, newest first.
func (h *EstimationHandler) GetAll(c *gin.Context) {
	estimations, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[estimation][handler] list failed err=%v", err)
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimations(estimations))
}

// MarkAsSeen records that a staff member viewed the estimation.
func (h *EstimationHandler) MarkAsSeen(c *gin.Context) {
	var req request.MarkAsSeenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "estimationId and seenBy are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.MarkAsSeen(c.Request.Context(), req.EstimationID, req.SeenBy)
	if err != nil {
		log.Printf("[estimation][handler] mark-as-seen failed id=%s err=%v", req.EstimationID, err)
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimation(updated, "Estimation marked as seen"))
}

// Reply stores the staff answer and notifies the client.
func (h *EstimationHandler) Reply(c *gin.Context) {
	var req request.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "estimationId, replyBy and replyMessage are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Reply(c.Request.Context(), req.EstimationID, req.ReplyBy, req.ReplyMessage)
	if err != nil {
		log.Printf("[estimation][handler] reply failed id=%s err=%v", req.EstimationID, err)
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[estimation][handler] reply success id=%s by=%s", updated.ID, updated.ReplyBy)

	c.JSON(http.StatusOK, response.FromEstimation(updated, "Reply sent successfully"))
}

// Delete removes an estimation.
func (h *EstimationHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[estimation][handler] delete failed id=%s err=%v", id, err)
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Success: true, Message: "Estimation deleted successfully"})
}

func mapEstimationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimationID), errors.Is(err, usecase.ErrInvalidEstimationData),
		errors.Is(err, usecase.ErrInvalidSeenBy), errors.Is(err, usecase.ErrInvalidReply):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimationNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATION_NOT_FOUND", "Estimation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
