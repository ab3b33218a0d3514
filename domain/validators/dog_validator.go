package validators

import (
	"fmt"
	"strings"

	"pupper-backend/pkg/errors"
	"pupper-backend/pkg/utils"
)

// speciesAllowList is the set of accepted species values. Only the
// Labrador Retriever family is listed — "Golden Retriever" is a valid
// image-classification label but not a valid species here.
var speciesAllowList = []string{
	"labrador retriever",
	"labrador",
	"lab",
}

// DogValidator enforces the dog-record domain rules shared by the
// create and update paths
type DogValidator struct{}

// NewDogValidator creates a dog validator
func NewDogValidator() *DogValidator {
	return &DogValidator{}
}

// ValidateSpecies checks a species value against the allow-list
func (v *DogValidator) ValidateSpecies(species string) error {
	s := strings.ToLower(strings.TrimSpace(species))
	for _, allowed := range speciesAllowList {
		if s == allowed {
			return nil
		}
	}
	if strings.Contains(s, "labrador") {
		return nil
	}
	return errors.NewValidationError("Only Labrador Retrievers are allowed in the Pupper app")
}

// ValidateWeight checks that a weight is a positive number
func (v *DogValidator) ValidateWeight(weight float64) error {
	if weight <= 0 {
		return errors.NewValidationError("Dog weight must be a positive number")
	}
	return nil
}

// ValidateDate checks an MM/DD/YYYY date field
func (v *DogValidator) ValidateDate(field, value string) error {
	if _, err := utils.ParseDate(value); err != nil {
		return errors.NewValidationError(fmt.Sprintf("%s must be in MM/DD/YYYY format", field))
	}
	return nil
}

// ValidateStatus checks an adoption status value
func (v *DogValidator) ValidateStatus(status string) error {
	switch strings.ToLower(status) {
	case "available", "adopted", "pending":
		return nil
	}
	return errors.NewValidationError("status must be one of: available, adopted, pending")
}
