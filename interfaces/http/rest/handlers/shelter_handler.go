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
	"pupper-backend/pkg/utils"
)

// ShelterService is the surface the shelter handler needs
type ShelterService interface {
	Create(ctx context.Context, in services.CreateShelterInput) (*entities.Shelter, error)
	Get(ctx context.Context, shelterID string) (*entities.Shelter, error)
	List(ctx context.Context) ([]entities.Shelter, error)
}

// ShelterHandler handles shelter HTTP requests
type ShelterHandler struct {
	service ShelterService
	errors  *errors.Handler
	logger  *zap.Logger
}

// NewShelterHandler creates a new shelter handler
func NewShelterHandler(service ShelterService, errHandler *errors.Handler, logger *zap.Logger) *ShelterHandler {
	return &ShelterHandler{
		service: service,
		errors:  errHandler,
		logger:  logger,
	}
}

// CreateShelterRequest is the request body for creating a shelter
type CreateShelterRequest struct {
	ShelterName  string `json:"shelter_name" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	ContactPhone string `json:"contact_phone"`
}

// Create handles POST /shelters
func (h *ShelterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateShelterRequest
	if err := common.ParseJSONBody(r, &req, maxDogBodyBytes); err != nil {
		h.errors.Handle(w, r, errors.NewValidationError("Invalid JSON in request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, errors.NewValidationError(err.Error()))
		return
	}

	shelter, err := h.service.Create(r.Context(), services.CreateShelterInput{
		ShelterName:  req.ShelterName,
		City:         req.City,
		State:        req.State,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, "Shelter created successfully", shelter)
}

// Get handles GET /shelters/{shelterID}
func (h *ShelterHandler) Get(w http.ResponseWriter, r *http.Request) {
	shelterID := chi.URLParam(r, "shelterID")

	shelter, err := h.service.Get(r.Context(), shelterID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Shelter retrieved successfully", shelter)
}

// List handles GET /shelters
func (h *ShelterHandler) List(w http.ResponseWriter, r *http.Request) {
	shelters, err := h.service.List(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Shelters retrieved successfully", map[string]interface{}{
		"shelters": shelters,
		"count":    len(shelters),
	})
}
