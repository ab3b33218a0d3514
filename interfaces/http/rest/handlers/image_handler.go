package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"pupper-backend/application/services"
	"pupper-backend/domain/entities"
	"pupper-backend/pkg/common"
	"pupper-backend/pkg/errors"
)

// 50MB of image data grows by ~4/3 when base64 encoded
const maxImageBodyBytes = 70 << 20

// ImageService is the surface the image handler needs
type ImageService interface {
	Upload(ctx context.Context, in services.UploadInput) (*entities.Image, error)
	Get(ctx context.Context, imageID string) (*entities.Image, error)
}

// ImageHandler handles image upload and status requests
type ImageHandler struct {
	service ImageService
	errors  *errors.Handler
	logger  *zap.Logger
}

// NewImageHandler creates a new image handler
func NewImageHandler(service ImageService, errHandler *errors.Handler, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{
		service: service,
		errors:  errHandler,
		logger:  logger,
	}
}

// UploadImageRequest is the request body for an image upload
type UploadImageRequest struct {
	ImageData   string   `json:"image_data" validate:"required"`
	ContentType string   `json:"content_type" validate:"required"`
	DogID       string   `json:"dog_id"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Upload handles POST /images
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req UploadImageRequest
	if err := common.ParseJSONBody(r, &req, maxImageBodyBytes); err != nil {
		h.errors.Handle(w, r, errors.NewValidationError("Invalid JSON in request body"))
		return
	}
	if req.ImageData == "" {
		h.errors.Handle(w, r, errors.NewValidationError("Missing required field: image_data"))
		return
	}
	if req.ContentType == "" {
		h.errors.Handle(w, r, errors.NewValidationError("Missing required field: content_type"))
		return
	}

	image, err := h.service.Upload(r.Context(), services.UploadInput{
		ImageData:   req.ImageData,
		ContentType: req.ContentType,
		DogID:       req.DogID,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, "Image uploaded successfully", image)
}

// Get handles GET /images/{imageID}
func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")

	image, err := h.service.Get(r.Context(), imageID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Image retrieved successfully", image)
}
