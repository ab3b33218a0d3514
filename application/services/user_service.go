package services

import (
	"context"

	"go.uber.org/zap"

	"pupper-backend/application/ports"
	"pupper-backend/domain/entities"
)

// UserService manages adopter accounts
type UserService struct {
	users  ports.UserRepository
	logger *zap.Logger
}

// NewUserService creates a user service
func NewUserService(users ports.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create stores a new user record
func (s *UserService) Create(ctx context.Context, p entities.NewUserParams) (*entities.User, error) {
	user := entities.NewUser(p)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user created", zap.String("user_id", user.UserID))
	return user, nil
}

// Get fetches a user by identifier
func (s *UserService) Get(ctx context.Context, userID string) (*entities.User, error) {
	return s.users.FindByID(ctx, userID)
}
