package entities

import (
	"strings"

	"github.com/google/uuid"

	"pupper-backend/pkg/utils"
)

// DogStatus represents the adoption lifecycle state of a dog
type DogStatus string

const (
	DogStatusAvailable DogStatus = "available"
	DogStatusAdopted   DogStatus = "adopted"
	DogStatusPending   DogStatus = "pending"
)

// Dog is a shelter dog listed for adoption
type Dog struct {
	DogID              string    `json:"dog_id" dynamodbav:"dog_id"`
	ShelterName        string    `json:"shelter_name" dynamodbav:"shelter_name"`
	City               string    `json:"city" dynamodbav:"city"`
	State              string    `json:"state" dynamodbav:"state"`
	DogName            string    `json:"dog_name" dynamodbav:"dog_name"`
	DogSpecies         string    `json:"dog_species" dynamodbav:"dog_species"`
	ShelterEntryDate   string    `json:"shelter_entry_date" dynamodbav:"shelter_entry_date"`
	DogDescription     string    `json:"dog_description" dynamodbav:"dog_description"`
	DogBirthday        string    `json:"dog_birthday" dynamodbav:"dog_birthday"`
	DogWeight          float64   `json:"dog_weight" dynamodbav:"dog_weight"`
	DogColor           string    `json:"dog_color" dynamodbav:"dog_color"`
	DogAgeYears        float64   `json:"dog_age_years" dynamodbav:"dog_age_years"`
	DogPhotoURL        string    `json:"dog_photo_url" dynamodbav:"dog_photo_url"`
	DogPhoto400x400URL string    `json:"dog_photo_400x400_url" dynamodbav:"dog_photo_400x400_url"`
	DogPhoto50x50URL   string    `json:"dog_photo_50x50_url" dynamodbav:"dog_photo_50x50_url"`
	ShelterID          string    `json:"shelter_id,omitempty" dynamodbav:"shelter_id"`
	Tags               []string  `json:"tags" dynamodbav:"tags"`
	IsLabrador         bool      `json:"is_labrador" dynamodbav:"is_labrador"`
	WagCount           int       `json:"wag_count" dynamodbav:"wag_count"`
	GrowlCount         int       `json:"growl_count" dynamodbav:"growl_count"`
	Status             DogStatus `json:"status" dynamodbav:"status"`
	CreatedAt          string    `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt          string    `json:"updated_at" dynamodbav:"updated_at"`
}

// NewDogParams carries the caller-supplied fields for a new dog record.
// Validation happens before this is used; NewDog only normalizes.
type NewDogParams struct {
	ShelterName      string
	City             string
	State            string
	DogName          string
	DogSpecies       string
	ShelterEntryDate string
	DogDescription   string
	DogBirthday      string
	DogWeight        float64
	DogColor         string
	DogPhotoURL      string
	ShelterID        string
	Tags             []string
}

// NewDog builds a normalized dog record: state uppercased, color
// lowercased, age derived from birthday, counters zeroed, status available.
func NewDog(p NewDogParams) *Dog {
	now := utils.NowUTC()

	return &Dog{
		DogID:            uuid.New().String(),
		ShelterName:      p.ShelterName,
		City:             p.City,
		State:            strings.ToUpper(p.State),
		DogName:          p.DogName,
		DogSpecies:       p.DogSpecies,
		ShelterEntryDate: p.ShelterEntryDate,
		DogDescription:   p.DogDescription,
		DogBirthday:      p.DogBirthday,
		DogWeight:        p.DogWeight,
		DogColor:         strings.ToLower(p.DogColor),
		DogAgeYears:      utils.AgeYears(p.DogBirthday),
		DogPhotoURL:      p.DogPhotoURL,
		ShelterID:        p.ShelterID,
		Tags:             p.Tags,
		IsLabrador:       strings.Contains(strings.ToLower(p.DogSpecies), "labrador"),
		WagCount:         0,
		GrowlCount:       0,
		Status:           DogStatusAvailable,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Valid reports whether s is a known adoption status
func (s DogStatus) Valid() bool {
	switch s {
	case DogStatusAvailable, DogStatusAdopted, DogStatusPending:
		return true
	}
	return false
}
