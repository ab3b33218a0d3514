package entities

import (
	"strings"

	"github.com/google/uuid"

	"pupper-backend/pkg/utils"
)

// Shelter is an organization listing dogs for adoption
type Shelter struct {
	ShelterID    string `json:"shelter_id" dynamodbav:"shelter_id"`
	ShelterName  string `json:"shelter_name" dynamodbav:"shelter_name"`
	City         string `json:"city" dynamodbav:"city"`
	State        string `json:"state" dynamodbav:"state"`
	ContactEmail string `json:"contact_email" dynamodbav:"contact_email"`
	ContactPhone string `json:"contact_phone,omitempty" dynamodbav:"contact_phone"`
	IsActive     bool   `json:"is_active" dynamodbav:"is_active"`
	DogsCount    int    `json:"dogs_count" dynamodbav:"dogs_count"`
	CreatedAt    string `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    string `json:"updated_at" dynamodbav:"updated_at"`
}

// NewShelter builds a shelter record with the state uppercased
func NewShelter(name, city, state, contactEmail, contactPhone string) *Shelter {
	now := utils.NowUTC()
	return &Shelter{
		ShelterID:    uuid.New().String(),
		ShelterName:  name,
		City:         city,
		State:        strings.ToUpper(state),
		ContactEmail: contactEmail,
		ContactPhone: contactPhone,
		IsActive:     true,
		DogsCount:    0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
