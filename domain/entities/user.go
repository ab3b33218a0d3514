package entities

import (
	"strings"

	"github.com/google/uuid"

	"pupper-backend/pkg/utils"
)

// User is an adopter account with optional matching preferences
type User struct {
	UserID              string   `json:"user_id" dynamodbav:"user_id"`
	Email               string   `json:"email" dynamodbav:"email"`
	Username            string   `json:"username" dynamodbav:"username"`
	StatePreference     string   `json:"state_preference,omitempty" dynamodbav:"state_preference"`
	MinWeightPreference *float64 `json:"min_weight_preference,omitempty" dynamodbav:"min_weight_preference"`
	MaxWeightPreference *float64 `json:"max_weight_preference,omitempty" dynamodbav:"max_weight_preference"`
	MinAgePreference    *float64 `json:"min_age_preference,omitempty" dynamodbav:"min_age_preference"`
	MaxAgePreference    *float64 `json:"max_age_preference,omitempty" dynamodbav:"max_age_preference"`
	ColorPreference     string   `json:"color_preference,omitempty" dynamodbav:"color_preference"`
	IsActive            bool     `json:"is_active" dynamodbav:"is_active"`
	CreatedAt           string   `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt           string   `json:"updated_at" dynamodbav:"updated_at"`
}

// NewUserParams carries the caller-supplied fields for a new user
type NewUserParams struct {
	Email               string
	Username            string
	StatePreference     string
	MinWeightPreference *float64
	MaxWeightPreference *float64
	MinAgePreference    *float64
	MaxAgePreference    *float64
	ColorPreference     string
}

// NewUser builds a user record, normalizing the preference fields the
// same way dog records are normalized (state upper, color lower)
func NewUser(p NewUserParams) *User {
	now := utils.NowUTC()
	return &User{
		UserID:              uuid.New().String(),
		Email:               p.Email,
		Username:            p.Username,
		StatePreference:     strings.ToUpper(p.StatePreference),
		MinWeightPreference: p.MinWeightPreference,
		MaxWeightPreference: p.MaxWeightPreference,
		MinAgePreference:    p.MinAgePreference,
		MaxAgePreference:    p.MaxAgePreference,
		ColorPreference:     strings.ToLower(p.ColorPreference),
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
