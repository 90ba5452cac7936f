package store

import (
	"context"
	"fmt"

	"github.com/fitlog/exercise-tracker/internal/logger"
	"github.com/fitlog/exercise-tracker/models"
	"github.com/jackc/pgerrcode"
)

// exerciseRepository is the PostgreSQL-backed implementation of
// [ExerciseRepository]. It handles exercise creation and filtered log
// retrieval against the "exercises" table.
type exerciseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewExerciseRepository constructs an [ExerciseRepository] backed by the
// provided database connection and logger.
func NewExerciseRepository(db *DB, logger *logger.Logger) ExerciseRepository {
	logger.Debug().Msg("creating exercise repository")
	return &exerciseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateExercise persists a new exercise record and returns the fully
// populated [models.Exercise] with the server-assigned ExerciseID.
//
// The INSERT uses the [createExercise] prepared query which returns all
// columns via a RETURNING clause. Referential existence of the owning user
// is checked by the service layer before this call; the table carries no
// foreign key on purpose.
func (r *exerciseRepository) CreateExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createExercise,
		exercise.UserID, exercise.Description, exercise.Duration, exercise.Date)

	// create exercise in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*exerciseRepository.CreateExercise").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return models.Exercise{}, ErrExerciseNotSaved
		default:
			return models.Exercise{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved exercise from db
	if err := row.Scan(&exercise.ExerciseID, &exercise.UserID, &exercise.Description, &exercise.Duration, &exercise.Date); err != nil {
		log.Err(err).Str("func", "*exerciseRepository.CreateExercise").Msg("error: scanning error")
		return models.Exercise{}, err
	}

	return exercise, nil
}

// FindExercises returns the exercises matching the given filter.
//
// The query is assembled by [buildLogQuery]: always constrained to the
// filter's user, optionally bounded by an inclusive date range, optionally
// capped by a limit. Row order is storage's natural order; callers must not
// rely on a particular ordering.
func (r *exerciseRepository) FindExercises(ctx context.Context, filter models.LogFilter) ([]models.Exercise, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLogQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*exerciseRepository.FindExercises").Msg("error building log query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*exerciseRepository.FindExercises").Msg("error executing log query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		var exercise models.Exercise
		if err := rows.Scan(&exercise.ExerciseID, &exercise.UserID, &exercise.Description, &exercise.Duration, &exercise.Date); err != nil {
			log.Err(err).Str("func", "*exerciseRepository.FindExercises").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*exerciseRepository.FindExercises").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return exercises, nil
}
