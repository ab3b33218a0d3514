package dynamodb

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"pupper-backend/application/ports"
	"pupper-backend/domain/entities"
	apperrors "pupper-backend/pkg/errors"
)

// ImageRepository implements ports.ImageRepository against the images table
type ImageRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewImageRepository creates a new ImageRepository
func NewImageRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ImageRepository {
	return &ImageRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Save persists an image metadata record
func (r *ImageRepository) Save(ctx context.Context, image *entities.Image) error {
	av, err := attributevalue.MarshalMap(image)
	if err != nil {
		return fmt.Errorf("failed to marshal image: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		r.logger.Error("failed to save image", zap.Error(err), zap.String("image_id", image.ImageID))
		return apperrors.NewExternalError("record store", err)
	}
	return nil
}

// FindByID fetches an image metadata record
func (r *ImageRepository) FindByID(ctx context.Context, imageID string) (*entities.Image, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       imageKey(imageID),
	})
	if err != nil {
		r.logger.Error("failed to get image", zap.Error(err), zap.String("image_id", imageID))
		return nil, apperrors.NewExternalError("record store", err)
	}
	if out.Item == nil {
		return nil, apperrors.NewNotFoundError("Image")
	}

	var image entities.Image
	if err := attributevalue.UnmarshalMap(out.Item, &image); err != nil {
		return nil, fmt.Errorf("failed to unmarshal image: %w", err)
	}
	return &image, nil
}

// Update applies a partial update, used for processing-status
// transitions and classification results
func (r *ImageRepository) Update(ctx context.Context, imageID string, updates map[string]interface{}) (*entities.Image, error) {
	upd := expression.UpdateBuilder{}
	for name, value := range updates {
		upd = upd.Set(expression.Name(name), expression.Value(value))
	}

	expr, err := expression.NewBuilder().
		WithUpdate(upd).
		WithCondition(expression.AttributeExists(expression.Name("image_id"))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build update expression: %w", err)
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       imageKey(imageID),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if stderrors.As(err, &ccf) {
			return nil, apperrors.NewNotFoundError("Image")
		}
		r.logger.Error("failed to update image", zap.Error(err), zap.String("image_id", imageID))
		return nil, apperrors.NewExternalError("record store", err)
	}

	var image entities.Image
	if err := attributevalue.UnmarshalMap(out.Attributes, &image); err != nil {
		return nil, fmt.Errorf("failed to unmarshal image: %w", err)
	}
	return &image, nil
}

// UpdateIfStatus applies a partial update conditioned on the current
// processing status. The resize worker fires off the S3 event, so its
// status writes can land before the classification result does; the
// condition keeps a stale write from rolling the status back.
func (r *ImageRepository) UpdateIfStatus(ctx context.Context, imageID string, updates map[string]interface{}, expected entities.ProcessingStatus) (*entities.Image, bool, error) {
	upd := expression.UpdateBuilder{}
	for name, value := range updates {
		upd = upd.Set(expression.Name(name), expression.Value(value))
	}

	expr, err := expression.NewBuilder().
		WithUpdate(upd).
		WithCondition(expression.Name("processing_status").Equal(expression.Value(expected))).
		Build()
	if err != nil {
		return nil, false, fmt.Errorf("failed to build update expression: %w", err)
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       imageKey(imageID),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if stderrors.As(err, &ccf) {
			// Missing record and advanced status both fail the
			// condition; FindByID tells them apart
			current, findErr := r.FindByID(ctx, imageID)
			if findErr != nil {
				return nil, false, findErr
			}
			return current, false, nil
		}
		r.logger.Error("failed to update image", zap.Error(err), zap.String("image_id", imageID))
		return nil, false, apperrors.NewExternalError("record store", err)
	}

	var image entities.Image
	if err := attributevalue.UnmarshalMap(out.Attributes, &image); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal image: %w", err)
	}
	return &image, true, nil
}

// Delete removes an image metadata record
func (r *ImageRepository) Delete(ctx context.Context, imageID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       imageKey(imageID),
	})
	if err != nil {
		r.logger.Error("failed to delete image", zap.Error(err), zap.String("image_id", imageID))
		return apperrors.NewExternalError("record store", err)
	}
	return nil
}

func imageKey(imageID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"image_id": &types.AttributeValueMemberS{Value: imageID},
	}
}
