package services

import (
	"context"
	"fmt"
	"sync"

	"pupper-backend/application/ports"
	"pupper-backend/domain/entities"
	"pupper-backend/pkg/errors"
)

// In-memory fakes for the ports interfaces. They mirror the DynamoDB
// behavior the services rely on: FindByID on a missing key is a
// not-found error, Update on a missing key is a not-found error, and
// IncrementCounter is atomic under the mutex.

type fakeDogRepo struct {
	mu      sync.Mutex
	dogs    map[string]entities.Dog
	saveErr error
	findErr error
}

func newFakeDogRepo() *fakeDogRepo {
	return &fakeDogRepo{dogs: make(map[string]entities.Dog)}
}

func (r *fakeDogRepo) Save(ctx context.Context, dog *entities.Dog) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dogs[dog.DogID] = *dog
	return nil
}

func (r *fakeDogRepo) FindByID(ctx context.Context, dogID string) (*entities.Dog, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	dog, ok := r.dogs[dogID]
	if !ok {
		return nil, errors.NewNotFoundError("dog")
	}
	return &dog, nil
}

func (r *fakeDogRepo) FindAll(ctx context.Context) ([]entities.Dog, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Dog, 0, len(r.dogs))
	for _, dog := range r.dogs {
		out = append(out, dog)
	}
	return out, nil
}

func (r *fakeDogRepo) Update(ctx context.Context, dogID string, updates map[string]interface{}) (*entities.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dog, ok := r.dogs[dogID]
	if !ok {
		return nil, errors.NewNotFoundError("dog")
	}
	for field, value := range updates {
		applyDogUpdate(&dog, field, value)
	}
	r.dogs[dogID] = dog
	return &dog, nil
}

func applyDogUpdate(dog *entities.Dog, field string, value interface{}) {
	switch field {
	case "shelter_name":
		dog.ShelterName = value.(string)
	case "city":
		dog.City = value.(string)
	case "state":
		dog.State = value.(string)
	case "dog_name":
		dog.DogName = value.(string)
	case "dog_species":
		dog.DogSpecies = value.(string)
	case "shelter_entry_date":
		dog.ShelterEntryDate = value.(string)
	case "dog_description":
		dog.DogDescription = value.(string)
	case "dog_birthday":
		dog.DogBirthday = value.(string)
	case "dog_weight":
		dog.DogWeight = value.(float64)
	case "dog_color":
		dog.DogColor = value.(string)
	case "dog_age_years":
		dog.DogAgeYears = value.(float64)
	case "dog_photo_url":
		dog.DogPhotoURL = value.(string)
	case "dog_photo_400x400_url":
		dog.DogPhoto400x400URL = value.(string)
	case "dog_photo_50x50_url":
		dog.DogPhoto50x50URL = value.(string)
	case "is_labrador":
		dog.IsLabrador = value.(bool)
	case "status":
		dog.Status = entities.DogStatus(value.(string))
	case "tags":
		dog.Tags = value.([]string)
	case "updated_at":
		dog.UpdatedAt = value.(string)
	}
}

func (r *fakeDogRepo) Delete(ctx context.Context, dogID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.dogs, dogID)
	return nil
}

func (r *fakeDogRepo) IncrementCounter(ctx context.Context, dogID, field string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	dog, ok := r.dogs[dogID]
	if !ok {
		return errors.NewNotFoundError("dog")
	}
	switch field {
	case "wag_count":
		dog.WagCount++
	case "growl_count":
		dog.GrowlCount++
	default:
		return fmt.Errorf("unknown counter field %q", field)
	}
	r.dogs[dogID] = dog
	return nil
}

type fakeVoteRepo struct {
	mu      sync.Mutex
	votes   map[string]entities.Vote
	saveErr error
	findErr error
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[string]entities.Vote)}
}

func voteKey(userID, dogID string) string {
	return userID + "/" + dogID
}

func (r *fakeVoteRepo) Save(ctx context.Context, vote *entities.Vote) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.votes[voteKey(vote.UserID, vote.DogID)] = *vote
	return nil
}

func (r *fakeVoteRepo) FindByUserAndDog(ctx context.Context, userID, dogID string) (*entities.Vote, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	vote, ok := r.votes[voteKey(userID, dogID)]
	if !ok {
		return nil, errors.NewNotFoundError("vote")
	}
	return &vote, nil
}

type fakeImageRepo struct {
	mu     sync.Mutex
	images map[string]entities.Image
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: make(map[string]entities.Image)}
}

func (r *fakeImageRepo) Save(ctx context.Context, image *entities.Image) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images[image.ImageID] = *image
	return nil
}

func (r *fakeImageRepo) FindByID(ctx context.Context, imageID string) (*entities.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	image, ok := r.images[imageID]
	if !ok {
		return nil, errors.NewNotFoundError("image")
	}
	return &image, nil
}

func (r *fakeImageRepo) Update(ctx context.Context, imageID string, updates map[string]interface{}) (*entities.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	image, ok := r.images[imageID]
	if !ok {
		return nil, errors.NewNotFoundError("image")
	}
	for field, value := range updates {
		applyImageUpdate(&image, field, value)
	}
	r.images[imageID] = image
	return &image, nil
}

func (r *fakeImageRepo) UpdateIfStatus(ctx context.Context, imageID string, updates map[string]interface{}, expected entities.ProcessingStatus) (*entities.Image, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	image, ok := r.images[imageID]
	if !ok {
		return nil, false, errors.NewNotFoundError("image")
	}
	if image.ProcessingStatus != expected {
		return &image, false, nil
	}
	for field, value := range updates {
		applyImageUpdate(&image, field, value)
	}
	r.images[imageID] = image
	return &image, true, nil
}

func applyImageUpdate(image *entities.Image, field string, value interface{}) {
	switch field {
	case "processing_status":
		image.ProcessingStatus = value.(entities.ProcessingStatus)
	case "is_labrador":
		image.IsLabrador = value.(bool)
	case "confidence":
		image.Confidence = value.(float64)
	case "detected_labels":
		image.DetectedLabels = value.([]entities.Label)
	case "resized_urls":
		image.ResizedURLs = value.(map[string]string)
	case "dimensions":
		image.Dimensions = value.(map[string]entities.Dimensions)
	case "error_message":
		image.ErrorMessage = value.(string)
	case "updated_at":
		image.UpdatedAt = value.(string)
	}
}

func (r *fakeImageRepo) Delete(ctx context.Context, imageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.images, imageID)
	return nil
}

type fakeObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
	getErr  error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte)}
}

func (s *fakeObjectStore) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	if s.putErr != nil {
		return "", s.putErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = body
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.Bucket(), key), nil
}

func (s *fakeObjectStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.objects[key]
	if !ok {
		return nil, errors.NewNotFoundError("object")
	}
	return body, nil
}

func (s *fakeObjectStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *fakeObjectStore) Bucket() string { return "test-bucket" }

func (s *fakeObjectStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}

type fakeClassifier struct {
	result *entities.Classification
	err    error
	// onClassify runs before the result is returned, letting a test
	// interleave other pipeline activity with the classification call
	onClassify func()
}

func (c *fakeClassifier) Classify(ctx context.Context, bucket, key string) (*entities.Classification, error) {
	if c.onClassify != nil {
		c.onClassify()
	}
	if c.err != nil {
		return nil, c.err
	}
	return c.result, nil
}

type fakeResizer struct {
	err error
}

func (r *fakeResizer) Resize(data []byte) (map[string]ports.Derived, error) {
	if r.err != nil {
		return nil, r.err
	}
	return map[string]ports.Derived{
		"400x400": {Data: []byte("resized-400"), Width: 400, Height: 400, ContentType: "image/png", Ext: "png"},
		"50x50":   {Data: []byte("resized-50"), Width: 50, Height: 50, ContentType: "image/png", Ext: "png"},
	}, nil
}
