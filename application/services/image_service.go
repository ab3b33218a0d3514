package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pupper-backend/application/ports"
	"pupper-backend/domain/entities"
	"pupper-backend/pkg/errors"
	"pupper-backend/pkg/utils"
)

const (
	minUploadBytes = 1024
	maxUploadBytes = 50 * 1024 * 1024
)

// allowedContentTypes maps accepted upload types to the stored file
// extension
var allowedContentTypes = map[string]string{
	"image/jpeg": "jpeg",
	"image/jpg":  "jpeg",
	"image/png":  "png",
	"image/webp": "webp",
}

// ImageService runs the upload, classification and resize pipeline
type ImageService struct {
	images     ports.ImageRepository
	dogs       ports.DogRepository
	store      ports.ObjectStore
	classifier ports.Classifier
	resizer    ports.Resizer
	// fallbackAccept controls what happens when the classifier is
	// unreachable: accept the upload with a warning, or reject it
	fallbackAccept bool
	logger         *zap.Logger
}

// NewImageService creates an image service
func NewImageService(
	images ports.ImageRepository,
	dogs ports.DogRepository,
	store ports.ObjectStore,
	classifier ports.Classifier,
	resizer ports.Resizer,
	fallbackAccept bool,
	logger *zap.Logger,
) *ImageService {
	return &ImageService{
		images:         images,
		dogs:           dogs,
		store:          store,
		classifier:     classifier,
		resizer:        resizer,
		fallbackAccept: fallbackAccept,
		logger:         logger,
	}
}

// UploadInput is a base64 image upload request
type UploadInput struct {
	ImageData   string
	ContentType string
	DogID       string
	Description string
	Tags        []string
}

// Upload validates, stores and classifies an uploaded image. Rejected
// images are removed from storage and the caller gets the detected
// labels back as evidence.
func (s *ImageService) Upload(ctx context.Context, in UploadInput) (*entities.Image, error) {
	contentType := strings.ToLower(in.ContentType)
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return nil, errors.NewValidationError(
			"Unsupported content type. Supported: image/jpeg, image/jpg, image/png, image/webp")
	}

	raw, err := decodeImageData(in.ImageData)
	if err != nil {
		return nil, err
	}
	if len(raw) < minUploadBytes {
		return nil, errors.NewValidationError("Image is too small (minimum 1KB)")
	}
	if len(raw) > maxUploadBytes {
		return nil, errors.NewValidationError(
			fmt.Sprintf("Image size (%d bytes) exceeds maximum allowed size (50MB)", len(raw)))
	}

	if err := checkDeclaredType(raw, contentType); err != nil {
		return nil, err
	}

	imageID := uuid.New().String()
	key := fmt.Sprintf("uploads/%s/original.%s", imageID, ext)

	if _, err := s.store.Put(ctx, key, raw, contentType); err != nil {
		return nil, err
	}

	image := entities.NewImage(imageID, s.store.Bucket(), key, contentType,
		int64(len(raw)), in.DogID, in.Description, in.Tags)
	if err := s.images.Save(ctx, image); err != nil {
		s.discard(ctx, image)
		return nil, err
	}

	s.logger.Info("image uploaded",
		zap.String("image_id", imageID),
		zap.String("key", key),
		zap.Int("size_bytes", len(raw)),
	)

	return s.classify(ctx, image)
}

// classify runs the stored original through the vision service and
// either queues the image for resizing or discards it
func (s *ImageService) classify(ctx context.Context, image *entities.Image) (*entities.Image, error) {
	result, err := s.classifier.Classify(ctx, image.S3Bucket, image.S3Key)
	if err != nil {
		if !s.fallbackAccept {
			s.discard(ctx, image)
			return nil, errors.NewExternalError("image classification", err)
		}
		// Documented fallback: the only swallowed failure in the system
		s.logger.Warn("classifier unreachable, accepting upload without classification",
			zap.String("image_id", image.ImageID),
			zap.Error(err),
		)
		return s.markQueued(ctx, image.ImageID, map[string]interface{}{
			"processing_status": entities.ProcessingQueued,
			"updated_at":        utils.NowUTC(),
		})
	}

	if !result.IsLabrador {
		s.discard(ctx, image)
		s.logger.Info("image rejected by classification",
			zap.String("image_id", image.ImageID),
			zap.Bool("is_dog", result.IsDog),
			zap.Int("labels", len(result.Labels)),
		)
		return nil, errors.NewValidationError("Image rejected: no Labrador Retriever detected").
			WithDetails(map[string]interface{}{
				"is_labrador":     false,
				"is_dog":          result.IsDog,
				"detected_labels": result.Labels,
			})
	}

	return s.markQueued(ctx, image.ImageID, map[string]interface{}{
		"is_labrador":       true,
		"confidence":        result.Confidence,
		"detected_labels":   result.Labels,
		"processing_status": entities.ProcessingQueued,
		"updated_at":        utils.NowUTC(),
	})
}

// markQueued records the classification outcome without rolling the
// processing status back: the S3 event fires when the original lands
// in the store, so the resize worker can reach the record first.
func (s *ImageService) markQueued(ctx context.Context, imageID string, updates map[string]interface{}) (*entities.Image, error) {
	image, applied, err := s.images.UpdateIfStatus(ctx, imageID, updates, entities.ProcessingPending)
	if err != nil {
		return nil, err
	}
	if !applied {
		s.logger.Info("processing already advanced past queued",
			zap.String("image_id", imageID),
			zap.String("processing_status", string(image.ProcessingStatus)),
		)
		// Keep the classification result; only the status stays put
		delete(updates, "processing_status")
		if len(updates) > 1 {
			return s.images.Update(ctx, imageID, updates)
		}
	}
	return image, nil
}

// Get fetches image metadata, processing status and derived URLs
func (s *ImageService) Get(ctx context.Context, imageID string) (*entities.Image, error) {
	return s.images.FindByID(ctx, imageID)
}

// ProcessStoredImage is the resize pipeline, invoked asynchronously
// when an original object lands in the store. Any failure marks the
// whole image failed with the error message; there is no retry.
func (s *ImageService) ProcessStoredImage(ctx context.Context, key string) error {
	imageID, ok := imageIDFromKey(key)
	if !ok {
		s.logger.Warn("ignoring object with unexpected key", zap.String("key", key))
		return nil
	}

	image, err := s.images.FindByID(ctx, imageID)
	if err != nil {
		return err
	}

	if _, err := s.images.Update(ctx, imageID, map[string]interface{}{
		"processing_status": entities.ProcessingInProgress,
		"updated_at":        utils.NowUTC(),
	}); err != nil {
		return err
	}

	data, err := s.store.Get(ctx, key)
	if err != nil {
		return s.markFailed(ctx, imageID, err)
	}

	derived, err := s.resizer.Resize(data)
	if err != nil {
		return s.markFailed(ctx, imageID, err)
	}

	resizedURLs := make(map[string]string, len(derived))
	dimensions := make(map[string]entities.Dimensions, len(derived))
	for name, d := range derived {
		dkey := fmt.Sprintf("uploads/%s/%s.%s", imageID, name, d.Ext)
		url, err := s.store.Put(ctx, dkey, d.Data, d.ContentType)
		if err != nil {
			return s.markFailed(ctx, imageID, err)
		}
		resizedURLs[name] = url
		dimensions[name] = entities.Dimensions{Width: d.Width, Height: d.Height}
	}

	if _, err := s.images.Update(ctx, imageID, map[string]interface{}{
		"processing_status": entities.ProcessingCompleted,
		"resized_urls":      resizedURLs,
		"dimensions":        dimensions,
		"updated_at":        utils.NowUTC(),
	}); err != nil {
		return err
	}

	s.propagateDogPhotos(ctx, image.DogID, resizedURLs)

	s.logger.Info("image processing completed",
		zap.String("image_id", imageID),
		zap.Int("variants", len(derived)),
	)
	return nil
}

// propagateDogPhotos writes the standard derivative URLs onto the
// linked dog record, when there is one
func (s *ImageService) propagateDogPhotos(ctx context.Context, dogID string, urls map[string]string) {
	if dogID == "" {
		return
	}
	updates := make(map[string]interface{})
	if url, ok := urls["400x400"]; ok {
		updates["dog_photo_400x400_url"] = url
	}
	if url, ok := urls["50x50"]; ok {
		updates["dog_photo_50x50_url"] = url
	}
	if len(updates) == 0 {
		return
	}
	updates["updated_at"] = utils.NowUTC()

	if _, err := s.dogs.Update(ctx, dogID, updates); err != nil {
		s.logger.Warn("could not propagate photo URLs to dog record",
			zap.String("dog_id", dogID),
			zap.Error(err),
		)
	}
}

func (s *ImageService) markFailed(ctx context.Context, imageID string, cause error) error {
	if _, err := s.images.Update(ctx, imageID, map[string]interface{}{
		"processing_status": entities.ProcessingFailed,
		"error_message":     cause.Error(),
		"updated_at":        utils.NowUTC(),
	}); err != nil {
		s.logger.Error("could not mark image failed",
			zap.String("image_id", imageID),
			zap.Error(err),
		)
	}
	return cause
}

// discard removes both the stored object and the metadata record
func (s *ImageService) discard(ctx context.Context, image *entities.Image) {
	if err := s.store.Delete(ctx, image.S3Key); err != nil {
		s.logger.Error("could not delete rejected object",
			zap.String("key", image.S3Key),
			zap.Error(err),
		)
	}
	if err := s.images.Delete(ctx, image.ImageID); err != nil {
		s.logger.Error("could not delete rejected image record",
			zap.String("image_id", image.ImageID),
			zap.Error(err),
		)
	}
}

// decodeImageData decodes a base64 payload, stripping any data-URL
// prefix ("data:image/png;base64,...")
func decodeImageData(data string) ([]byte, error) {
	if idx := strings.Index(data, ","); idx >= 0 && strings.Contains(data[:idx], ";base64") {
		data = data[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.NewValidationError("Invalid base64 image data")
	}
	return raw, nil
}

// checkDeclaredType sniffs the decoded bytes and rejects uploads whose
// declared content type disagrees with the actual data
func checkDeclaredType(raw []byte, declared string) error {
	detected := mimetype.Detect(raw)
	if detected.Is(declared) {
		return nil
	}
	if declared == "image/jpg" && detected.Is("image/jpeg") {
		return nil
	}
	return errors.NewValidationError(
		fmt.Sprintf("Declared content type %s does not match uploaded data (%s)", declared, detected.String()))
}

// imageIDFromKey extracts the image identifier from an object key of
// the form uploads/{image_id}/original.{ext}
func imageIDFromKey(key string) (string, bool) {
	parts := strings.Split(key, "/")
	if len(parts) != 3 || parts[0] != "uploads" || !strings.HasPrefix(parts[2], "original.") {
		return "", false
	}
	return parts[1], true
}
