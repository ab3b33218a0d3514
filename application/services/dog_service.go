package services

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"pupper-backend/application/ports"
	"pupper-backend/domain/entities"
	"pupper-backend/domain/search"
	"pupper-backend/domain/validators"
	"pupper-backend/pkg/common"
	"pupper-backend/pkg/errors"
	"pupper-backend/pkg/utils"
)

// DogService implements the dog CRUD, listing and voting operations
type DogService struct {
	dogs      ports.DogRepository
	votes     ports.VoteRepository
	validator *validators.DogValidator
	logger    *zap.Logger
}

// NewDogService creates a dog service
func NewDogService(dogs ports.DogRepository, votes ports.VoteRepository, logger *zap.Logger) *DogService {
	return &DogService{
		dogs:      dogs,
		votes:     votes,
		validator: validators.NewDogValidator(),
		logger:    logger,
	}
}

// CreateDogInput carries the fields for a new dog record. Presence of
// required fields is checked at the handler; domain rules here.
type CreateDogInput struct {
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

// UpdateDogInput carries a partial update; nil fields are untouched
type UpdateDogInput struct {
	ShelterName      *string
	City             *string
	State            *string
	DogName          *string
	DogSpecies       *string
	ShelterEntryDate *string
	DogDescription   *string
	DogBirthday      *string
	DogWeight        *float64
	DogColor         *string
	DogPhotoURL      *string
	Status           *string
	Tags             *[]string
}

// SortInfo echoes the sort actually applied to a listing
type SortInfo struct {
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

// ListResult is the payload for the dog listing endpoint
type ListResult struct {
	Dogs           []entities.Dog    `json:"dogs"`
	Pagination     common.Pagination `json:"pagination"`
	FiltersApplied map[string]string `json:"filters_applied"`
	Sort           SortInfo          `json:"sort"`
}

// List scans the full dog table and runs the filter/sort/paginate
// pipeline over it in memory
func (s *DogService) List(ctx context.Context, q url.Values) (*ListResult, error) {
	dogs, err := s.dogs.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filters := search.ParseFilters(q)
	filtered := search.Apply(dogs, filters)
	sortBy, sortOrder := search.Sort(filtered, q.Get("sort_by"), q.Get("sort_order"))

	page, limit := common.ParsePageParams(q)
	pg := search.Paginate(filtered, page, limit)

	s.logger.Info("dog listing served",
		zap.Int("total", len(dogs)),
		zap.Int("matched", pg.Pagination.TotalItems),
		zap.Int("page", pg.Pagination.CurrentPage),
	)

	return &ListResult{
		Dogs:           pg.Dogs,
		Pagination:     pg.Pagination,
		FiltersApplied: search.Applied(q),
		Sort:           SortInfo{SortBy: sortBy, SortOrder: sortOrder},
	}, nil
}

// Get fetches a single dog by identifier
func (s *DogService) Get(ctx context.Context, dogID string) (*entities.Dog, error) {
	return s.dogs.FindByID(ctx, dogID)
}

// Create validates and stores a new dog record
func (s *DogService) Create(ctx context.Context, in CreateDogInput) (*entities.Dog, error) {
	if err := s.validator.ValidateSpecies(in.DogSpecies); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateWeight(in.DogWeight); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateDate("dog_birthday", in.DogBirthday); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateDate("shelter_entry_date", in.ShelterEntryDate); err != nil {
		return nil, err
	}

	dog := entities.NewDog(entities.NewDogParams{
		ShelterName:      in.ShelterName,
		City:             in.City,
		State:            in.State,
		DogName:          in.DogName,
		DogSpecies:       in.DogSpecies,
		ShelterEntryDate: in.ShelterEntryDate,
		DogDescription:   in.DogDescription,
		DogBirthday:      in.DogBirthday,
		DogWeight:        in.DogWeight,
		DogColor:         in.DogColor,
		DogPhotoURL:      in.DogPhotoURL,
		ShelterID:        in.ShelterID,
		Tags:             in.Tags,
	})

	if err := s.dogs.Save(ctx, dog); err != nil {
		return nil, err
	}

	s.logger.Info("dog created",
		zap.String("dog_id", dog.DogID),
		zap.String("shelter", dog.ShelterName),
	)
	return dog, nil
}

// Update applies a partial update, re-validating only the supplied
// fields. The identifier and creation timestamp never change.
func (s *DogService) Update(ctx context.Context, dogID string, in UpdateDogInput) (*entities.Dog, error) {
	updates := make(map[string]interface{})

	if in.ShelterName != nil {
		updates["shelter_name"] = *in.ShelterName
	}
	if in.City != nil {
		updates["city"] = *in.City
	}
	if in.State != nil {
		updates["state"] = strings.ToUpper(*in.State)
	}
	if in.DogName != nil {
		updates["dog_name"] = *in.DogName
	}
	if in.DogSpecies != nil {
		if err := s.validator.ValidateSpecies(*in.DogSpecies); err != nil {
			return nil, err
		}
		updates["dog_species"] = *in.DogSpecies
		updates["is_labrador"] = strings.Contains(strings.ToLower(*in.DogSpecies), "labrador")
	}
	if in.ShelterEntryDate != nil {
		if err := s.validator.ValidateDate("shelter_entry_date", *in.ShelterEntryDate); err != nil {
			return nil, err
		}
		updates["shelter_entry_date"] = *in.ShelterEntryDate
	}
	if in.DogDescription != nil {
		updates["dog_description"] = *in.DogDescription
	}
	if in.DogBirthday != nil {
		if err := s.validator.ValidateDate("dog_birthday", *in.DogBirthday); err != nil {
			return nil, err
		}
		updates["dog_birthday"] = *in.DogBirthday
		updates["dog_age_years"] = utils.AgeYears(*in.DogBirthday)
	}
	if in.DogWeight != nil {
		if err := s.validator.ValidateWeight(*in.DogWeight); err != nil {
			return nil, err
		}
		updates["dog_weight"] = *in.DogWeight
	}
	if in.DogColor != nil {
		updates["dog_color"] = strings.ToLower(*in.DogColor)
	}
	if in.DogPhotoURL != nil {
		updates["dog_photo_url"] = *in.DogPhotoURL
	}
	if in.Status != nil {
		if err := s.validator.ValidateStatus(*in.Status); err != nil {
			return nil, err
		}
		updates["status"] = strings.ToLower(*in.Status)
	}
	if in.Tags != nil {
		updates["tags"] = *in.Tags
	}

	if len(updates) == 0 {
		return nil, errors.NewValidationError("No updatable fields provided")
	}
	updates["updated_at"] = utils.NowUTC()

	dog, err := s.dogs.Update(ctx, dogID, updates)
	if err != nil {
		return nil, err
	}

	s.logger.Info("dog updated",
		zap.String("dog_id", dogID),
		zap.Int("fields", len(updates)),
	)
	return dog, nil
}

// Delete hard-deletes a dog record. An unknown identifier is a
// not-found error on every call, not just the first.
func (s *DogService) Delete(ctx context.Context, dogID string) (*entities.Dog, error) {
	dog, err := s.dogs.FindByID(ctx, dogID)
	if err != nil {
		return nil, err
	}
	if err := s.dogs.Delete(ctx, dogID); err != nil {
		return nil, err
	}

	s.logger.Info("dog deleted", zap.String("dog_id", dogID))
	return dog, nil
}

// Vote records a wag or growl and bumps the matching counter on the
// dog. Counter increments are unconditional; re-votes by the same user
// overwrite the vote record but still increment.
func (s *DogService) Vote(ctx context.Context, dogID, userID string, voteType entities.VoteType) (*entities.Vote, error) {
	if !voteType.Valid() {
		return nil, errors.NewValidationError("Vote type must be 'wag' or 'growl'")
	}

	if _, err := s.dogs.FindByID(ctx, dogID); err != nil {
		return nil, err
	}

	// A lookup failure never blocks the vote; the table is an upsert
	previous, err := s.votes.FindByUserAndDog(ctx, userID, dogID)
	switch {
	case err != nil && !errors.IsNotFound(err):
		s.logger.Warn("could not check for existing vote",
			zap.String("dog_id", dogID),
			zap.String("user_id", userID),
			zap.Error(err),
		)
	case previous != nil:
		s.logger.Info("re-vote overwrites previous record",
			zap.String("dog_id", dogID),
			zap.String("user_id", userID),
			zap.String("previous_type", string(previous.VoteType)),
		)
	}

	vote := entities.NewVote(userID, dogID, voteType)
	if err := s.votes.Save(ctx, vote); err != nil {
		return nil, err
	}
	if err := s.dogs.IncrementCounter(ctx, dogID, voteType.CounterField()); err != nil {
		return nil, err
	}

	s.logger.Info("vote recorded",
		zap.String("dog_id", dogID),
		zap.String("user_id", userID),
		zap.String("vote_type", string(vote.VoteType)),
	)
	return vote, nil
}
