package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"pupper-backend/domain/entities"
	"pupper-backend/pkg/common"
	"pupper-backend/pkg/errors"
	"pupper-backend/pkg/utils"
)

// UserService is the surface the user handler needs
type UserService interface {
	Create(ctx context.Context, p entities.NewUserParams) (*entities.User, error)
	Get(ctx context.Context, userID string) (*entities.User, error)
}

// UserHandler handles user HTTP requests
type UserHandler struct {
	service UserService
	errors  *errors.Handler
	logger  *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service UserService, errHandler *errors.Handler, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		errors:  errHandler,
		logger:  logger,
	}
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Email               string   `json:"email" validate:"required,email"`
	Username            string   `json:"username" validate:"required"`
	StatePreference     string   `json:"state_preference"`
	MinWeightPreference *float64 `json:"min_weight_preference"`
	MaxWeightPreference *float64 `json:"max_weight_preference"`
	MinAgePreference    *float64 `json:"min_age_preference"`
	MaxAgePreference    *float64 `json:"max_age_preference"`
	ColorPreference     string   `json:"color_preference"`
}

// Create handles POST /users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := common.ParseJSONBody(r, &req, maxDogBodyBytes); err != nil {
		h.errors.Handle(w, r, errors.NewValidationError("Invalid JSON in request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, errors.NewValidationError(err.Error()))
		return
	}

	user, err := h.service.Create(r.Context(), entities.NewUserParams{
		Email:               req.Email,
		Username:            req.Username,
		StatePreference:     req.StatePreference,
		MinWeightPreference: req.MinWeightPreference,
		MaxWeightPreference: req.MaxWeightPreference,
		MinAgePreference:    req.MinAgePreference,
		MaxAgePreference:    req.MaxAgePreference,
		ColorPreference:     req.ColorPreference,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, "User created successfully", user)
}

// Get handles GET /users/{userID}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	user, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "User retrieved successfully", user)
}
