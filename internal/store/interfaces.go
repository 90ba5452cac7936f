package store

import (
	"context"

	"github.com/fitlog/exercise-tracker/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindAllUsers(ctx context.Context) ([]models.User, error)
}

type ExerciseRepository interface {
	CreateExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error)
	FindExercises(ctx context.Context, filter models.LogFilter) ([]models.Exercise, error)
}
