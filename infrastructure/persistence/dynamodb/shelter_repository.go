package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"pupper-backend/application/ports"
	"pupper-backend/domain/entities"
	apperrors "pupper-backend/pkg/errors"
)

// ShelterRepository implements ports.ShelterRepository
type ShelterRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewShelterRepository creates a new ShelterRepository
func NewShelterRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ShelterRepository {
	return &ShelterRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Save persists a shelter record
func (r *ShelterRepository) Save(ctx context.Context, shelter *entities.Shelter) error {
	av, err := attributevalue.MarshalMap(shelter)
	if err != nil {
		return fmt.Errorf("failed to marshal shelter: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		r.logger.Error("failed to save shelter", zap.Error(err), zap.String("shelter_id", shelter.ShelterID))
		return apperrors.NewExternalError("record store", err)
	}
	return nil
}

// FindByID fetches a shelter record
func (r *ShelterRepository) FindByID(ctx context.Context, shelterID string) (*entities.Shelter, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"shelter_id": &types.AttributeValueMemberS{Value: shelterID},
		},
	})
	if err != nil {
		return nil, apperrors.NewExternalError("record store", err)
	}
	if out.Item == nil {
		return nil, apperrors.NewNotFoundError("Shelter")
	}

	var shelter entities.Shelter
	if err := attributevalue.UnmarshalMap(out.Item, &shelter); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shelter: %w", err)
	}
	return &shelter, nil
}

// FindAll scans all shelter records
func (r *ShelterRepository) FindAll(ctx context.Context) ([]entities.Shelter, error) {
	var shelters []entities.Shelter

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			r.logger.Error("failed to scan shelters", zap.Error(err))
			return nil, apperrors.NewExternalError("record store", err)
		}
		var page []entities.Shelter
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shelters: %w", err)
		}
		shelters = append(shelters, page...)
	}
	return shelters, nil
}
