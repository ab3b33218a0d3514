// Package di wires the application together for both Lambda and local
// entrypoints.
package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsrekognition "github.com/aws/aws-sdk-go-v2/service/rekognition"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"pupper-backend/application/services"
	"pupper-backend/infrastructure/config"
	"pupper-backend/infrastructure/imaging"
	"pupper-backend/infrastructure/persistence/dynamodb"
	"pupper-backend/infrastructure/storage"
	"pupper-backend/infrastructure/vision"
)

// Container holds the wired application services
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	DogService     *services.DogService
	ImageService   *services.ImageService
	ShelterService *services.ShelterService
	UserService    *services.UserService
}

// InitializeContainer builds all dependencies from configuration
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, err
	}

	awsCfg, err := ProvideAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	ddbClient := awsdynamodb.NewFromConfig(awsCfg)
	s3Client := awss3.NewFromConfig(awsCfg)
	rekoClient := awsrekognition.NewFromConfig(awsCfg)

	dogRepo := dynamodb.NewDogRepository(ddbClient, cfg.DogsTable, logger)
	voteRepo := dynamodb.NewVoteRepository(ddbClient, cfg.VotesTable, logger)
	imageRepo := dynamodb.NewImageRepository(ddbClient, cfg.ImagesTable, logger)
	shelterRepo := dynamodb.NewShelterRepository(ddbClient, cfg.SheltersTable, logger)
	userRepo := dynamodb.NewUserRepository(ddbClient, cfg.UsersTable, logger)

	store := storage.NewS3Store(s3Client, cfg.ImagesBucket, logger)
	classifier := vision.NewRekognitionClassifier(rekoClient, cfg.MinConfidence, logger)
	resizer := imaging.NewResizer()

	return &Container{
		Config: cfg,
		Logger: logger,

		DogService: services.NewDogService(dogRepo, voteRepo, logger),
		ImageService: services.NewImageService(
			imageRepo, dogRepo, store, classifier, resizer, cfg.FallbackAccept, logger),
		ShelterService: services.NewShelterService(shelterRepo, logger),
		UserService:    services.NewUserService(userRepo, logger),
	}, nil
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() || cfg.IsLambda {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}
