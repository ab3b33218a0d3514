// Package ports defines the interfaces the application services depend
// on. Infrastructure supplies the DynamoDB, S3 and Rekognition
// implementations; tests supply in-memory fakes.
package ports

import (
	"context"

	"pupper-backend/domain/entities"
)

// DogRepository persists dog records. FindAll is a full-table scan:
// the listing pipeline filters in memory by design.
type DogRepository interface {
	Save(ctx context.Context, dog *entities.Dog) error
	FindByID(ctx context.Context, dogID string) (*entities.Dog, error)
	FindAll(ctx context.Context) ([]entities.Dog, error)
	// Update applies a partial update to the named attributes and
	// returns the record as stored afterwards
	Update(ctx context.Context, dogID string, updates map[string]interface{}) (*entities.Dog, error)
	Delete(ctx context.Context, dogID string) error
	// IncrementCounter atomically adds one to a vote counter field
	IncrementCounter(ctx context.Context, dogID, field string) error
}

// VoteRepository persists vote records keyed by (user, dog)
type VoteRepository interface {
	Save(ctx context.Context, vote *entities.Vote) error
	FindByUserAndDog(ctx context.Context, userID, dogID string) (*entities.Vote, error)
}

// ImageRepository persists image metadata records
type ImageRepository interface {
	Save(ctx context.Context, image *entities.Image) error
	FindByID(ctx context.Context, imageID string) (*entities.Image, error)
	Update(ctx context.Context, imageID string, updates map[string]interface{}) (*entities.Image, error)
	// UpdateIfStatus applies updates only while the record's
	// processing status still equals expected. When the status has
	// already advanced it returns the current record and applied
	// false instead of clobbering it.
	UpdateIfStatus(ctx context.Context, imageID string, updates map[string]interface{}, expected entities.ProcessingStatus) (image *entities.Image, applied bool, err error)
	Delete(ctx context.Context, imageID string) error
}

// ShelterRepository persists shelter records
type ShelterRepository interface {
	Save(ctx context.Context, shelter *entities.Shelter) error
	FindByID(ctx context.Context, shelterID string) (*entities.Shelter, error)
	FindAll(ctx context.Context) ([]entities.Shelter, error)
}

// UserRepository persists user records
type UserRepository interface {
	Save(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, userID string) (*entities.User, error)
}
