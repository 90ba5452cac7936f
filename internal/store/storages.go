package store

import (
	"context"

	"github.com/fitlog/exercise-tracker/internal/config"
	"github.com/fitlog/exercise-tracker/internal/logger"
)

// Storages aggregates all repositories backed by the shared database
// connection. It is the single storage handle injected into the service
// layer, replacing any notion of package-global connection state.
type Storages struct {
	UserRepository     UserRepository
	ExerciseRepository ExerciseRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		ExerciseRepository: NewExerciseRepository(db, log),
	}, nil
}
