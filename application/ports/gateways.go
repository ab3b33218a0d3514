package ports

import (
	"context"

	"pupper-backend/domain/entities"
)

// ObjectStore stores raw image bytes and issues public URLs
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (url string, err error)
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Bucket() string
}

// Classifier runs an uploaded image through the vision service
type Classifier interface {
	Classify(ctx context.Context, bucket, key string) (*entities.Classification, error)
}

// Derived is one resized rendition of an original image
type Derived struct {
	Data        []byte
	Width       int
	Height      int
	ContentType string
	Ext         string
}

// Resizer produces the fixed set of named derivative images
type Resizer interface {
	Resize(data []byte) (map[string]Derived, error)
}
