package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pupper-backend/application/services"
	"pupper-backend/domain/entities"
	"pupper-backend/pkg/errors"
)

type fakeImageService struct {
	image *entities.Image
	err   error

	uploadIn services.UploadInput
}

func (f *fakeImageService) Upload(ctx context.Context, in services.UploadInput) (*entities.Image, error) {
	f.uploadIn = in
	return f.image, f.err
}

func (f *fakeImageService) Get(ctx context.Context, imageID string) (*entities.Image, error) {
	return f.image, f.err
}

func newImageTestRouter(svc ImageService) *chi.Mux {
	logger := zap.NewNop()
	h := NewImageHandler(svc, errors.NewHandler(logger), logger)

	r := chi.NewRouter()
	r.Post("/images", h.Upload)
	r.Get("/images/{imageID}", h.Get)
	return r
}

func TestImageHandlerUpload(t *testing.T) {
	svc := &fakeImageService{
		image: &entities.Image{ImageID: "img-1", ProcessingStatus: entities.ProcessingQueued},
	}
	router := newImageTestRouter(svc)

	rec, envelope := doJSON(t, router, http.MethodPost, "/images",
		UploadImageRequest{ImageData: "aGVsbG8=", ContentType: "image/png", DogID: "dog-1"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Image uploaded successfully", envelope.Message)
	assert.Equal(t, "dog-1", svc.uploadIn.DogID)
}

func TestImageHandlerUploadMissingFields(t *testing.T) {
	router := newImageTestRouter(&fakeImageService{})

	t.Run("missing image data", func(t *testing.T) {
		rec, envelope := doJSON(t, router, http.MethodPost, "/images",
			UploadImageRequest{ContentType: "image/png"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing required field: image_data", envelope.Error)
	})

	t.Run("missing content type", func(t *testing.T) {
		rec, envelope := doJSON(t, router, http.MethodPost, "/images",
			UploadImageRequest{ImageData: "aGVsbG8="})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing required field: content_type", envelope.Error)
	})
}

func TestImageHandlerUploadRejected(t *testing.T) {
	svc := &fakeImageService{
		err: errors.NewValidationError("Image rejected: no Labrador Retriever detected").
			WithDetails(map[string]interface{}{
				"is_labrador": false,
				"is_dog":      false,
			}),
	}
	router := newImageTestRouter(svc)

	rec, envelope := doJSON(t, router, http.MethodPost, "/images",
		UploadImageRequest{ImageData: "aGVsbG8=", ContentType: "image/png"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Error, "no Labrador Retriever detected")
	require.NotNil(t, envelope.Details)
	assert.Equal(t, false, envelope.Details["is_labrador"])
}

func TestImageHandlerGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &fakeImageService{
			image: &entities.Image{ImageID: "img-1", ProcessingStatus: entities.ProcessingCompleted},
		}
		rec, envelope := doJSON(t, newImageTestRouter(svc), http.MethodGet, "/images/img-1", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, envelope.Success)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeImageService{err: errors.NewNotFoundError("image")}
		rec, envelope := doJSON(t, newImageTestRouter(svc), http.MethodGet, "/images/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "image not found", envelope.Error)
	})
}
