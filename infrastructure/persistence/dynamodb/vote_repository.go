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

// VoteRepository implements ports.VoteRepository against the votes
// table, keyed on (user_id, dog_id) so a re-vote overwrites
type VoteRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewVoteRepository creates a new VoteRepository
func NewVoteRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.VoteRepository {
	return &VoteRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Save upserts a vote record
func (r *VoteRepository) Save(ctx context.Context, vote *entities.Vote) error {
	av, err := attributevalue.MarshalMap(vote)
	if err != nil {
		return fmt.Errorf("failed to marshal vote: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		r.logger.Error("failed to save vote",
			zap.Error(err),
			zap.String("user_id", vote.UserID),
			zap.String("dog_id", vote.DogID),
		)
		return apperrors.NewExternalError("record store", err)
	}
	return nil
}

// FindByUserAndDog fetches the active vote for a (user, dog) pair
func (r *VoteRepository) FindByUserAndDog(ctx context.Context, userID, dogID string) (*entities.Vote, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
			"dog_id":  &types.AttributeValueMemberS{Value: dogID},
		},
	})
	if err != nil {
		return nil, apperrors.NewExternalError("record store", err)
	}
	if out.Item == nil {
		return nil, apperrors.NewNotFoundError("Vote")
	}

	var vote entities.Vote
	if err := attributevalue.UnmarshalMap(out.Item, &vote); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vote: %w", err)
	}
	return &vote, nil
}
