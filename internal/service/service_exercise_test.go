package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fitlog/exercise-tracker/internal/logger"
	"github.com/fitlog/exercise-tracker/internal/store"
	"github.com/fitlog/exercise-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExerciseRepository is a hand-written test double for
// store.ExerciseRepository.
type stubExerciseRepository struct {
	createExerciseFn func(ctx context.Context, exercise models.Exercise) (models.Exercise, error)
	findExercisesFn  func(ctx context.Context, filter models.LogFilter) ([]models.Exercise, error)
}

func (s *stubExerciseRepository) CreateExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error) {
	return s.createExerciseFn(ctx, exercise)
}

func (s *stubExerciseRepository) FindExercises(ctx context.Context, filter models.LogFilter) ([]models.Exercise, error) {
	return s.findExercisesFn(ctx, filter)
}

func knownUserRepo(user models.User) *stubUserRepository {
	return &stubUserRepository{
		findUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			if userID != user.UserID {
				return models.User{}, store.ErrUserNotFound
			}
			return user, nil
		},
	}
}

func persistingExerciseRepo(assigned int64) (*stubExerciseRepository, *models.Exercise) {
	var saved models.Exercise
	repo := &stubExerciseRepository{
		createExerciseFn: func(_ context.Context, exercise models.Exercise) (models.Exercise, error) {
			exercise.ExerciseID = assigned
			saved = exercise
			return exercise, nil
		},
	}
	return repo, &saved
}

// ── AddExercise ───────────────────────────────────────────────────────────────

func TestAddExercise_EchoesOwnerIdentity(t *testing.T) {
	user := models.User{UserID: 5, Username: "alice"}
	exerciseRepo, saved := persistingExerciseRepo(99)
	svc := NewExerciseService(knownUserRepo(user), exerciseRepo, logger.Nop())

	response, err := svc.AddExercise(context.Background(), "5", models.AddExerciseRequest{
		Description: "run",
		Duration:    "30",
		Date:        "2024-01-01",
	})
	require.NoError(t, err)

	// the response carries the user's identity, not the exercise's
	assert.Equal(t, "5", response.ID)
	assert.Equal(t, "alice", response.Username)
	assert.Equal(t, "Mon Jan 01 2024", response.Date)
	assert.Equal(t, 30, response.Duration)
	assert.Equal(t, "run", response.Description)

	assert.Equal(t, int64(5), saved.UserID)
	assert.Equal(t, 30, saved.Duration)
}

func TestAddExercise_DefaultsDateToToday(t *testing.T) {
	user := models.User{UserID: 5, Username: "alice"}
	exerciseRepo, saved := persistingExerciseRepo(99)
	svc := NewExerciseService(knownUserRepo(user), exerciseRepo, logger.Nop())

	response, err := svc.AddExercise(context.Background(), "5", models.AddExerciseRequest{
		Description: "run",
		Duration:    "30",
	})
	require.NoError(t, err)

	assert.Equal(t, today(), saved.Date)
	assert.Equal(t, today().Format("Mon Jan 02 2006"), response.Date)
}

func TestAddExercise_UnknownUser(t *testing.T) {
	exerciseRepo := &stubExerciseRepository{
		createExerciseFn: func(_ context.Context, _ models.Exercise) (models.Exercise, error) {
			t.Fatal("no exercise may be created for an unknown user")
			return models.Exercise{}, nil
		},
	}
	svc := NewExerciseService(knownUserRepo(models.User{UserID: 5}), exerciseRepo, logger.Nop())

	_, err := svc.AddExercise(context.Background(), "404", models.AddExerciseRequest{
		Description: "run",
		Duration:    "30",
	})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAddExercise_MalformedUserID(t *testing.T) {
	svc := NewExerciseService(knownUserRepo(models.User{UserID: 5}), &stubExerciseRepository{}, logger.Nop())

	_, err := svc.AddExercise(context.Background(), "not-an-id", models.AddExerciseRequest{
		Description: "run",
		Duration:    "30",
	})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAddExercise_ValidationErrors(t *testing.T) {
	user := models.User{UserID: 5, Username: "alice"}

	tests := []struct {
		name    string
		request models.AddExerciseRequest
		wantErr error
	}{
		{
			name:    "empty description",
			request: models.AddExerciseRequest{Duration: "30"},
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "missing duration",
			request: models.AddExerciseRequest{Description: "run"},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "non-numeric duration",
			request: models.AddExerciseRequest{Description: "run", Duration: "soon"},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "zero duration",
			request: models.AddExerciseRequest{Description: "run", Duration: "0"},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "malformed date",
			request: models.AddExerciseRequest{Description: "run", Duration: "30", Date: "tomorrow"},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exerciseRepo := &stubExerciseRepository{
				createExerciseFn: func(_ context.Context, _ models.Exercise) (models.Exercise, error) {
					t.Fatal("no exercise may be created for invalid input")
					return models.Exercise{}, nil
				},
			}
			svc := NewExerciseService(knownUserRepo(user), exerciseRepo, logger.Nop())

			_, err := svc.AddExercise(context.Background(), "5", tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAddExercise_RepositoryError(t *testing.T) {
	user := models.User{UserID: 5, Username: "alice"}
	repoErr := errors.New("storage unavailable")
	exerciseRepo := &stubExerciseRepository{
		createExerciseFn: func(_ context.Context, _ models.Exercise) (models.Exercise, error) {
			return models.Exercise{}, repoErr
		},
	}
	svc := NewExerciseService(knownUserRepo(user), exerciseRepo, logger.Nop())

	_, err := svc.AddExercise(context.Background(), "5", models.AddExerciseRequest{
		Description: "run",
		Duration:    "30",
	})
	assert.ErrorIs(t, err, repoErr)
}

// ── GetLog ────────────────────────────────────────────────────────────────────

func TestGetLog_BuildsFilterFromRequest(t *testing.T) {
	user := models.User{UserID: 5, Username: "alice"}

	var captured models.LogFilter
	exerciseRepo := &stubExerciseRepository{
		findExercisesFn: func(_ context.Context, filter models.LogFilter) ([]models.Exercise, error) {
			captured = filter
			return []models.Exercise{}, nil
		},
	}
	svc := NewExerciseService(knownUserRepo(user), exerciseRepo, logger.Nop())

	_, err := svc.GetLog(context.Background(), "5", models.LogRequest{
		From:  "2024-01-15",
		To:    "2024-02-15",
		Limit: "3",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), captured.UserID)
	require.NotNil(t, captured.From)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), *captured.From)
	require.NotNil(t, captured.To)
	assert.Equal(t, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC), *captured.To)
	require.NotNil(t, captured.Limit)
	assert.Equal(t, 3, *captured.Limit)
}

func TestGetLog_NoBoundsMeansOpenFilter(t *testing.T) {
	user := models.User{UserID: 5, Username: "alice"}

	var captured models.LogFilter
	exerciseRepo := &stubExerciseRepository{
		findExercisesFn: func(_ context.Context, filter models.LogFilter) ([]models.Exercise, error) {
			captured = filter
			return []models.Exercise{}, nil
		},
	}
	svc := NewExerciseService(knownUserRepo(user), exerciseRepo, logger.Nop())

	_, err := svc.GetLog(context.Background(), "5", models.LogRequest{})
	require.NoError(t, err)

	assert.Nil(t, captured.From)
	assert.Nil(t, captured.To)
	assert.Nil(t, captured.Limit)
}

func TestGetLog_ShapesEntriesAndCount(t *testing.T) {
	user := models.User{UserID: 5, Username: "alice"}
	exerciseRepo := &stubExerciseRepository{
		findExercisesFn: func(_ context.Context, _ models.LogFilter) ([]models.Exercise, error) {
			return []models.Exercise{
				{ExerciseID: 1, UserID: 5, Description: "run", Duration: 30,
					Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	svc := NewExerciseService(knownUserRepo(user), exerciseRepo, logger.Nop())

	response, err := svc.GetLog(context.Background(), "5", models.LogRequest{})
	require.NoError(t, err)

	assert.Equal(t, "alice", response.Username)
	assert.Equal(t, "5", response.ID)
	assert.Equal(t, 1, response.Count)
	require.Len(t, response.Log, 1)
	assert.Equal(t, models.LogEntry{
		Description: "run",
		Duration:    30,
		Date:        "Thu Feb 01 2024",
	}, response.Log[0])
}

func TestGetLog_CountMatchesReturnedRecords(t *testing.T) {
	user := models.User{UserID: 5, Username: "alice"}
	exerciseRepo := &stubExerciseRepository{
		findExercisesFn: func(_ context.Context, filter models.LogFilter) ([]models.Exercise, error) {
			// the repository honours the limit; count must reflect what
			// actually comes back, not the total match count
			require.NotNil(t, filter.Limit)
			return []models.Exercise{
				{Description: "run", Duration: 30, Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	svc := NewExerciseService(knownUserRepo(user), exerciseRepo, logger.Nop())

	response, err := svc.GetLog(context.Background(), "5", models.LogRequest{Limit: "1"})
	require.NoError(t, err)
	assert.Equal(t, 1, response.Count)
}

func TestGetLog_UnknownUser(t *testing.T) {
	svc := NewExerciseService(knownUserRepo(models.User{UserID: 5}), &stubExerciseRepository{}, logger.Nop())

	_, err := svc.GetLog(context.Background(), "404", models.LogRequest{})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestGetLog_InvalidParameters(t *testing.T) {
	user := models.User{UserID: 5, Username: "alice"}
	svc := NewExerciseService(knownUserRepo(user), &stubExerciseRepository{}, logger.Nop())

	tests := []struct {
		name    string
		request models.LogRequest
		wantErr error
	}{
		{name: "bad from", request: models.LogRequest{From: "January"}, wantErr: ErrInvalidDate},
		{name: "bad to", request: models.LogRequest{To: "2024/01/01"}, wantErr: ErrInvalidDate},
		{name: "bad limit", request: models.LogRequest{Limit: "many"}, wantErr: ErrInvalidLimit},
		{name: "zero limit", request: models.LogRequest{Limit: "0"}, wantErr: ErrInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetLog(context.Background(), "5", tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetLog_RepositoryError(t *testing.T) {
	user := models.User{UserID: 5, Username: "alice"}
	repoErr := errors.New("storage unavailable")
	exerciseRepo := &stubExerciseRepository{
		findExercisesFn: func(_ context.Context, _ models.LogFilter) ([]models.Exercise, error) {
			return nil, repoErr
		},
	}
	svc := NewExerciseService(knownUserRepo(user), exerciseRepo, logger.Nop())

	_, err := svc.GetLog(context.Background(), "5", models.LogRequest{})
	assert.ErrorIs(t, err, repoErr)
}
