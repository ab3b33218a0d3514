package main

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"pupper-backend/infrastructure/config"
	"pupper-backend/infrastructure/di"
)

var container *di.Container

func init() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
}

// Handler processes S3 object-created notifications for uploaded
// originals and generates the resized derivatives.
func Handler(ctx context.Context, event events.S3Event) error {
	logger := container.Logger

	for _, record := range event.Records {
		// S3 URL-encodes object keys in event notifications
		key, err := url.QueryUnescape(record.S3.Object.Key)
		if err != nil {
			key = record.S3.Object.Key
		}

		// Derivatives land in the same prefix as the original;
		// skip them so our own writes don't re-trigger processing.
		if !isOriginal(key) {
			logger.Debug("skipping non-original object", zap.String("key", key))
			continue
		}

		logger.Info("processing uploaded image",
			zap.String("bucket", record.S3.Bucket.Name),
			zap.String("key", key),
		)

		if err := container.ImageService.ProcessStoredImage(ctx, key); err != nil {
			logger.Error("image processing failed",
				zap.String("key", key),
				zap.Error(err),
			)
			return err
		}
	}
	return nil
}

func isOriginal(key string) bool {
	base := key[strings.LastIndex(key, "/")+1:]
	return strings.HasPrefix(base, "original.")
}

func main() {
	lambda.Start(Handler)
}
