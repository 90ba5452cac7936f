package service

import (
	"github.com/fitlog/exercise-tracker/internal/logger"
	"github.com/fitlog/exercise-tracker/internal/store"
)

type Services struct {
	UserService     UserService
	ExerciseService ExerciseService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		UserService:     NewUserService(storages.UserRepository, logger),
		ExerciseService: NewExerciseService(storages.UserRepository, storages.ExerciseRepository, logger),
	}
}
