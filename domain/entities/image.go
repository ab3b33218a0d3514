package entities

import (
	"fmt"

	"pupper-backend/pkg/utils"
)

// ProcessingStatus tracks an upload through the image pipeline:
// pending -> queued -> processing -> completed | failed
type ProcessingStatus string

const (
	ProcessingPending    ProcessingStatus = "pending"
	ProcessingQueued     ProcessingStatus = "queued"
	ProcessingInProgress ProcessingStatus = "processing"
	ProcessingCompleted  ProcessingStatus = "completed"
	ProcessingFailed     ProcessingStatus = "failed"
)

// Dimensions are the pixel bounds of a derived image
type Dimensions struct {
	Width  int `json:"width" dynamodbav:"width"`
	Height int `json:"height" dynamodbav:"height"`
}

// Label is a single detection returned by the vision service
type Label struct {
	Name       string  `json:"name" dynamodbav:"name"`
	Confidence float64 `json:"confidence" dynamodbav:"confidence"`
}

// Classification is the outcome of running an uploaded image through
// the vision service
type Classification struct {
	IsDog      bool    `json:"is_dog"`
	IsLabrador bool    `json:"is_labrador"`
	Confidence float64 `json:"confidence"`
	Labels     []Label `json:"labels"`
}

// Image is the stored metadata for one uploaded photo
type Image struct {
	ImageID          string                `json:"image_id" dynamodbav:"image_id"`
	DogID            string                `json:"dog_id,omitempty" dynamodbav:"dog_id"`
	OriginalURL      string                `json:"original_url" dynamodbav:"original_url"`
	S3Bucket         string                `json:"s3_bucket" dynamodbav:"s3_bucket"`
	S3Key            string                `json:"s3_key" dynamodbav:"s3_key"`
	ContentType      string                `json:"content_type" dynamodbav:"content_type"`
	SizeBytes        int64                 `json:"size_bytes" dynamodbav:"size_bytes"`
	Description      string                `json:"description,omitempty" dynamodbav:"description"`
	Tags             []string              `json:"tags" dynamodbav:"tags"`
	Status           string                `json:"status" dynamodbav:"status"`
	ProcessingStatus ProcessingStatus      `json:"processing_status" dynamodbav:"processing_status"`
	ResizedURLs      map[string]string     `json:"resized_urls" dynamodbav:"resized_urls"`
	Dimensions       map[string]Dimensions `json:"dimensions" dynamodbav:"dimensions"`
	IsLabrador       bool                  `json:"is_labrador" dynamodbav:"is_labrador"`
	Confidence       float64               `json:"confidence" dynamodbav:"confidence"`
	DetectedLabels   []Label               `json:"detected_labels" dynamodbav:"detected_labels"`
	ErrorMessage     string                `json:"error_message,omitempty" dynamodbav:"error_message"`
	CreatedAt        string                `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt        string                `json:"updated_at" dynamodbav:"updated_at"`
}

// NewImage builds the metadata record written right after the original
// bytes land in the object store
func NewImage(imageID, bucket, key, contentType string, sizeBytes int64, dogID, description string, tags []string) *Image {
	now := utils.NowUTC()
	return &Image{
		ImageID:          imageID,
		DogID:            dogID,
		OriginalURL:      fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key),
		S3Bucket:         bucket,
		S3Key:            key,
		ContentType:      contentType,
		SizeBytes:        sizeBytes,
		Description:      description,
		Tags:             tags,
		Status:           "uploaded",
		ProcessingStatus: ProcessingPending,
		ResizedURLs:      map[string]string{},
		Dimensions:       map[string]Dimensions{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
