package service

import (
	"context"

	"github.com/fitlog/exercise-tracker/models"
)

// UserService creates and lists tracked users.
type UserService interface {
	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]models.UserResponse, error)
}

// ExerciseService appends exercise records to a user and retrieves the
// filtered exercise log.
type ExerciseService interface {
	AddExercise(ctx context.Context, userID string, request models.AddExerciseRequest) (models.ExerciseResponse, error)
	GetLog(ctx context.Context, userID string, request models.LogRequest) (models.LogResponse, error)
}
