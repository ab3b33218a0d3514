// Package storage implements the object-store port against S3.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"pupper-backend/application/ports"
	apperrors "pupper-backend/pkg/errors"
)

// S3Store stores image bytes in a single bucket with public URLs
type S3Store struct {
	client *s3.Client
	bucket string
	logger *zap.Logger
}

// NewS3Store creates a new S3Store
func NewS3Store(client *s3.Client, bucket string, logger *zap.Logger) ports.ObjectStore {
	return &S3Store{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Put stores an object and returns its public URL
func (s *S3Store) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Error("failed to put object", zap.Error(err), zap.String("key", key))
		return "", apperrors.NewExternalError("object store", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}

// Get downloads an object
func (s *S3Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error("failed to get object", zap.Error(err), zap.String("key", key))
		return nil, apperrors.NewExternalError("object store", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, apperrors.NewExternalError("object store", err)
	}
	return data, nil
}

// Delete removes an object
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error("failed to delete object", zap.Error(err), zap.String("key", key))
		return apperrors.NewExternalError("object store", err)
	}
	return nil
}

// Bucket returns the backing bucket name
func (s *S3Store) Bucket() string {
	return s.bucket
}
