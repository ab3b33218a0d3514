package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"pupper-backend/application/services"
	"pupper-backend/domain/entities"
	"pupper-backend/pkg/common"
	"pupper-backend/pkg/errors"
	"pupper-backend/pkg/utils"
)

const maxDogBodyBytes = 1 << 20 // 1MB

// DogService is the surface the dog handler needs
type DogService interface {
	List(ctx context.Context, q url.Values) (*services.ListResult, error)
	Get(ctx context.Context, dogID string) (*entities.Dog, error)
	Create(ctx context.Context, in services.CreateDogInput) (*entities.Dog, error)
	Update(ctx context.Context, dogID string, in services.UpdateDogInput) (*entities.Dog, error)
	Delete(ctx context.Context, dogID string) (*entities.Dog, error)
	Vote(ctx context.Context, dogID, userID string, voteType entities.VoteType) (*entities.Vote, error)
}

// DogHandler handles dog-related HTTP requests
type DogHandler struct {
	service DogService
	errors  *errors.Handler
	logger  *zap.Logger
}

// NewDogHandler creates a new dog handler
func NewDogHandler(service DogService, errHandler *errors.Handler, logger *zap.Logger) *DogHandler {
	return &DogHandler{
		service: service,
		errors:  errHandler,
		logger:  logger,
	}
}

// CreateDogRequest is the request body for creating a dog
type CreateDogRequest struct {
	ShelterName      string   `json:"shelter_name" validate:"required"`
	City             string   `json:"city" validate:"required"`
	State            string   `json:"state" validate:"required"`
	DogName          string   `json:"dog_name" validate:"required"`
	DogSpecies       string   `json:"dog_species" validate:"required"`
	ShelterEntryDate string   `json:"shelter_entry_date" validate:"required"`
	DogDescription   string   `json:"dog_description" validate:"required"`
	DogBirthday      string   `json:"dog_birthday" validate:"required"`
	DogWeight        float64  `json:"dog_weight" validate:"required,gt=0"`
	DogColor         string   `json:"dog_color" validate:"required"`
	DogPhotoURL      string   `json:"dog_photo_url"`
	ShelterID        string   `json:"shelter_id"`
	Tags             []string `json:"tags"`
}

// UpdateDogRequest is the request body for a partial dog update
type UpdateDogRequest struct {
	ShelterName      *string   `json:"shelter_name"`
	City             *string   `json:"city"`
	State            *string   `json:"state"`
	DogName          *string   `json:"dog_name"`
	DogSpecies       *string   `json:"dog_species"`
	ShelterEntryDate *string   `json:"shelter_entry_date"`
	DogDescription   *string   `json:"dog_description"`
	DogBirthday      *string   `json:"dog_birthday"`
	DogWeight        *float64  `json:"dog_weight"`
	DogColor         *string   `json:"dog_color"`
	DogPhotoURL      *string   `json:"dog_photo_url"`
	Status           *string   `json:"status"`
	Tags             *[]string `json:"tags"`
}

// VoteRequest is the request body for voting on a dog
type VoteRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	VoteType string `json:"vote_type" validate:"required,oneof=wag growl"`
}

// List handles GET /dogs
func (h *DogHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), r.URL.Query())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Dogs retrieved successfully", result)
}

// Get handles GET /dogs/{dogID}
func (h *DogHandler) Get(w http.ResponseWriter, r *http.Request) {
	dogID := chi.URLParam(r, "dogID")

	dog, err := h.service.Get(r.Context(), dogID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Dog retrieved successfully", dog)
}

// Create handles POST /dogs
func (h *DogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDogRequest
	if err := common.ParseJSONBody(r, &req, maxDogBodyBytes); err != nil {
		h.errors.Handle(w, r, errors.NewValidationError("Invalid JSON in request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, errors.NewValidationError(err.Error()))
		return
	}

	dog, err := h.service.Create(r.Context(), services.CreateDogInput{
		ShelterName:      req.ShelterName,
		City:             req.City,
		State:            req.State,
		DogName:          req.DogName,
		DogSpecies:       req.DogSpecies,
		ShelterEntryDate: req.ShelterEntryDate,
		DogDescription:   req.DogDescription,
		DogBirthday:      req.DogBirthday,
		DogWeight:        req.DogWeight,
		DogColor:         req.DogColor,
		DogPhotoURL:      req.DogPhotoURL,
		ShelterID:        req.ShelterID,
		Tags:             req.Tags,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, "Dog successfully added to the system", dog)
}

// Update handles PUT /dogs/{dogID}
func (h *DogHandler) Update(w http.ResponseWriter, r *http.Request) {
	dogID := chi.URLParam(r, "dogID")

	var req UpdateDogRequest
	if err := common.ParseJSONBody(r, &req, maxDogBodyBytes); err != nil {
		h.errors.Handle(w, r, errors.NewValidationError("Invalid JSON in request body"))
		return
	}

	dog, err := h.service.Update(r.Context(), dogID, services.UpdateDogInput{
		ShelterName:      req.ShelterName,
		City:             req.City,
		State:            req.State,
		DogName:          req.DogName,
		DogSpecies:       req.DogSpecies,
		ShelterEntryDate: req.ShelterEntryDate,
		DogDescription:   req.DogDescription,
		DogBirthday:      req.DogBirthday,
		DogWeight:        req.DogWeight,
		DogColor:         req.DogColor,
		DogPhotoURL:      req.DogPhotoURL,
		Status:           req.Status,
		Tags:             req.Tags,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Dog updated successfully", dog)
}

// Delete handles DELETE /dogs/{dogID}
func (h *DogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	dogID := chi.URLParam(r, "dogID")

	dog, err := h.service.Delete(r.Context(), dogID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Dog successfully deleted from the system", map[string]interface{}{
		"dog_id":     dog.DogID,
		"dog_name":   dog.DogName,
		"deleted_at": utils.NowUTC(),
	})
}

// Vote handles POST /dogs/{dogID}/vote
func (h *DogHandler) Vote(w http.ResponseWriter, r *http.Request) {
	dogID := chi.URLParam(r, "dogID")

	var req VoteRequest
	if err := common.ParseJSONBody(r, &req, maxDogBodyBytes); err != nil {
		h.errors.Handle(w, r, errors.NewValidationError("Invalid JSON in request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, errors.NewValidationError(err.Error()))
		return
	}

	vote, err := h.service.Vote(r.Context(), dogID, req.UserID, entities.VoteType(req.VoteType))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Successfully recorded "+string(vote.VoteType)+" for dog", map[string]interface{}{
		"dog_id":    vote.DogID,
		"user_id":   vote.UserID,
		"vote_type": vote.VoteType,
		"timestamp": vote.CreatedAt,
	})
}
