// Package dynamodb implements the persistence ports against DynamoDB,
// one repository per table.
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

// DogRepository implements ports.DogRepository against the dogs table
type DogRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewDogRepository creates a new DogRepository
func NewDogRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.DogRepository {
	return &DogRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Save persists a dog record
func (r *DogRepository) Save(ctx context.Context, dog *entities.Dog) error {
	av, err := attributevalue.MarshalMap(dog)
	if err != nil {
		return fmt.Errorf("failed to marshal dog: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		r.logger.Error("failed to save dog", zap.Error(err), zap.String("dog_id", dog.DogID))
		return apperrors.NewExternalError("record store", err)
	}
	return nil
}

// FindByID fetches a single dog record
func (r *DogRepository) FindByID(ctx context.Context, dogID string) (*entities.Dog, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       dogKey(dogID),
	})
	if err != nil {
		r.logger.Error("failed to get dog", zap.Error(err), zap.String("dog_id", dogID))
		return nil, apperrors.NewExternalError("record store", err)
	}
	if out.Item == nil {
		return nil, apperrors.NewNotFoundError("Dog")
	}

	var dog entities.Dog
	if err := attributevalue.UnmarshalMap(out.Item, &dog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dog: %w", err)
	}
	return &dog, nil
}

// FindAll scans the whole table. The listing pipeline filters in
// memory, so no filter expression is pushed down.
func (r *DogRepository) FindAll(ctx context.Context) ([]entities.Dog, error) {
	var dogs []entities.Dog

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			r.logger.Error("failed to scan dogs", zap.Error(err))
			return nil, apperrors.NewExternalError("record store", err)
		}
		var page []entities.Dog
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal dogs: %w", err)
		}
		dogs = append(dogs, page...)
	}
	return dogs, nil
}

// Update applies a partial update via an update expression and returns
// the record as stored afterwards. The key attributes never change.
func (r *DogRepository) Update(ctx context.Context, dogID string, updates map[string]interface{}) (*entities.Dog, error) {
	upd := expression.UpdateBuilder{}
	for name, value := range updates {
		upd = upd.Set(expression.Name(name), expression.Value(value))
	}

	expr, err := expression.NewBuilder().
		WithUpdate(upd).
		WithCondition(expression.AttributeExists(expression.Name("dog_id"))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build update expression: %w", err)
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       dogKey(dogID),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if stderrors.As(err, &ccf) {
			return nil, apperrors.NewNotFoundError("Dog")
		}
		r.logger.Error("failed to update dog", zap.Error(err), zap.String("dog_id", dogID))
		return nil, apperrors.NewExternalError("record store", err)
	}

	var dog entities.Dog
	if err := attributevalue.UnmarshalMap(out.Attributes, &dog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dog: %w", err)
	}
	return &dog, nil
}

// Delete removes a dog record
func (r *DogRepository) Delete(ctx context.Context, dogID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       dogKey(dogID),
	})
	if err != nil {
		r.logger.Error("failed to delete dog", zap.Error(err), zap.String("dog_id", dogID))
		return apperrors.NewExternalError("record store", err)
	}
	return nil
}

// IncrementCounter atomically adds one to a vote counter field
func (r *DogRepository) IncrementCounter(ctx context.Context, dogID, field string) error {
	expr, err := expression.NewBuilder().
		WithUpdate(expression.Add(expression.Name(field), expression.Value(1))).
		WithCondition(expression.AttributeExists(expression.Name("dog_id"))).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build counter expression: %w", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       dogKey(dogID),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if stderrors.As(err, &ccf) {
			return apperrors.NewNotFoundError("Dog")
		}
		r.logger.Error("failed to increment counter",
			zap.Error(err),
			zap.String("dog_id", dogID),
			zap.String("field", field),
		)
		return apperrors.NewExternalError("record store", err)
	}
	return nil
}

func dogKey(dogID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"dog_id": &types.AttributeValueMemberS{Value: dogID},
	}
}
