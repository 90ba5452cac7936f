package service

import (
	"context"
	"fmt"

	"github.com/fitlog/exercise-tracker/internal/logger"
	"github.com/fitlog/exercise-tracker/internal/store"
	"github.com/fitlog/exercise-tracker/models"
)

// userService is the concrete implementation of UserService.
// It handles user sign-up and listing using a UserRepository for persistence.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a new UserService wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// CreateUser creates a new tracked user.
//
// It validates that the username is non-empty and delegates persistence to
// the UserRepository. No uniqueness constraint is enforced: two users may
// share a username.
//
// Returns the persisted user shaped as {username, id} or:
//   - ErrEmptyUsername if the username is empty.
//   - A wrapped storage error if the repository call fails.
func (s *userService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" {
		log.Error().Msg("empty username provided")
		return models.UserResponse{}, ErrEmptyUsername
	}

	createdUser, err := s.userRepository.CreateUser(ctx, models.User{Username: request.Username})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.UserResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return models.UserResponse{
		Username: createdUser.Username,
		ID:       formatID(createdUser.UserID),
	}, nil
}

// GetAllUsers returns every tracked user, each reduced to {username, id}.
//
// The sequence comes back in storage's natural order; no ordering is
// guaranteed.
func (s *userService) GetAllUsers(ctx context.Context) ([]models.UserResponse, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.FindAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users ended with error")
		return nil, fmt.Errorf("listing users ended with error: %w", err)
	}

	responses := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, models.UserResponse{
			Username: user.Username,
			ID:       formatID(user.UserID),
		})
	}

	return responses, nil
}
