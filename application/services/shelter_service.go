package services

import (
	"context"

	"go.uber.org/zap"

	"pupper-backend/application/ports"
	"pupper-backend/domain/entities"
)

// ShelterService manages shelter records
type ShelterService struct {
	shelters ports.ShelterRepository
	logger   *zap.Logger
}

// NewShelterService creates a shelter service
func NewShelterService(shelters ports.ShelterRepository, logger *zap.Logger) *ShelterService {
	return &ShelterService{shelters: shelters, logger: logger}
}

// CreateShelterInput carries the fields for a new shelter
type CreateShelterInput struct {
	ShelterName  string
	City         string
	State        string
	ContactEmail string
	ContactPhone string
}

// Create stores a new shelter record
func (s *ShelterService) Create(ctx context.Context, in CreateShelterInput) (*entities.Shelter, error) {
	shelter := entities.NewShelter(in.ShelterName, in.City, in.State, in.ContactEmail, in.ContactPhone)
	if err := s.shelters.Save(ctx, shelter); err != nil {
		return nil, err
	}
	s.logger.Info("shelter created", zap.String("shelter_id", shelter.ShelterID))
	return shelter, nil
}

// Get fetches a shelter by identifier
func (s *ShelterService) Get(ctx context.Context, shelterID string) (*entities.Shelter, error) {
	return s.shelters.FindByID(ctx, shelterID)
}

// List returns all shelters
func (s *ShelterService) List(ctx context.Context) ([]entities.Shelter, error) {
	return s.shelters.FindAll(ctx)
}
