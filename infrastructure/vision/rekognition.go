// Package vision implements the classifier port against Amazon
// Rekognition.
package vision

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rekotypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"go.uber.org/zap"

	"pupper-backend/application/ports"
	"pupper-backend/domain/entities"
	apperrors "pupper-backend/pkg/errors"
)

const maxLabels = 50

// labradorKeywords are the accepted classification labels. Note that
// "golden retriever" is accepted here although it is not a valid
// species value on the create/update path; the two allow-lists are
// intentionally separate.
var labradorKeywords = []string{
	"labrador retriever",
	"labrador",
	"lab",
	"golden retriever",
	"retriever",
}

// RekognitionClassifier implements ports.Classifier
type RekognitionClassifier struct {
	client        *rekognition.Client
	minConfidence float32
	logger        *zap.Logger
}

// NewRekognitionClassifier creates a classifier with the given minimum
// label confidence (percent)
func NewRekognitionClassifier(client *rekognition.Client, minConfidence float64, logger *zap.Logger) ports.Classifier {
	return &RekognitionClassifier{
		client:        client,
		minConfidence: float32(minConfidence),
		logger:        logger,
	}
}

// Classify runs DetectLabels against the stored object and decides
// whether an accepted breed is present. A DetectText pass supplies a
// secondary breed hint for images where only a generic "Dog" label is
// found.
func (c *RekognitionClassifier) Classify(ctx context.Context, bucket, key string) (*entities.Classification, error) {
	s3Object := &rekotypes.S3Object{
		Bucket: aws.String(bucket),
		Name:   aws.String(key),
	}

	out, err := c.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &rekotypes.Image{S3Object: s3Object},
		MaxLabels:     aws.Int32(maxLabels),
		MinConfidence: aws.Float32(c.minConfidence),
	})
	if err != nil {
		c.logger.Error("label detection failed", zap.Error(err), zap.String("key", key))
		return nil, apperrors.NewExternalError("vision service", err)
	}

	result := &entities.Classification{}
	for _, label := range out.Labels {
		name := aws.ToString(label.Name)
		confidence := float64(aws.ToFloat32(label.Confidence))
		result.Labels = append(result.Labels, entities.Label{Name: name, Confidence: confidence})

		lower := strings.ToLower(name)
		if strings.Contains(lower, "dog") {
			result.IsDog = true
		}
		for _, keyword := range labradorKeywords {
			if strings.Contains(lower, keyword) {
				result.IsLabrador = true
				if confidence > result.Confidence {
					result.Confidence = confidence
				}
				break
			}
		}
	}

	// A dog with no breed label still passes if text in the image
	// names the breed ("adopt a lab" style shelter photos)
	if result.IsDog && !result.IsLabrador {
		if hit, confidence := c.detectBreedText(ctx, s3Object); hit {
			result.IsLabrador = true
			result.Confidence = confidence
		}
	}

	c.logger.Info("image classified",
		zap.String("key", key),
		zap.Bool("is_dog", result.IsDog),
		zap.Bool("is_labrador", result.IsLabrador),
		zap.Float64("confidence", result.Confidence),
		zap.Int("labels", len(result.Labels)),
	)
	return result, nil
}

// detectBreedText looks for breed keywords in text detected within the
// image. Failures here are non-fatal; label detection already
// succeeded.
func (c *RekognitionClassifier) detectBreedText(ctx context.Context, s3Object *rekotypes.S3Object) (bool, float64) {
	out, err := c.client.DetectText(ctx, &rekognition.DetectTextInput{
		Image: &rekotypes.Image{S3Object: s3Object},
	})
	if err != nil {
		c.logger.Warn("text detection failed", zap.Error(err))
		return false, 0
	}

	var lines []string
	for _, detection := range out.TextDetections {
		if detection.Type == rekotypes.TextTypesLine {
			lines = append(lines, strings.ToLower(aws.ToString(detection.DetectedText)))
		}
	}
	joined := strings.Join(lines, " ")
	for _, keyword := range labradorKeywords {
		if strings.Contains(joined, keyword) {
			return true, 80.0
		}
	}
	return false, 0
}
