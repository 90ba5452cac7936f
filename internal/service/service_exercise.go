package service

import (
	"context"
	"fmt"

	"github.com/fitlog/exercise-tracker/internal/logger"
	"github.com/fitlog/exercise-tracker/internal/store"
	"github.com/fitlog/exercise-tracker/models"
)

// exerciseService is the concrete implementation of ExerciseService.
// It resolves the owning user, converts raw request input into typed values,
// and shapes repository results into the documented response forms.
type exerciseService struct {
	// userRepository resolves the owning user before any exercise operation.
	userRepository store.UserRepository

	// exerciseRepository persists and queries exercise records.
	exerciseRepository store.ExerciseRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewExerciseService constructs a new ExerciseService wired to the given
// repositories.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewExerciseService(userRepository store.UserRepository, exerciseRepository store.ExerciseRepository, logger *logger.Logger) ExerciseService {
	return &exerciseService{
		userRepository:     userRepository,
		exerciseRepository: exerciseRepository,
		logger:             logger,
	}
}

// AddExercise appends one exercise record to the user's log.
//
// The owning user is resolved first: an identifier that does not resolve
// yields store.ErrUserNotFound and nothing is persisted. Input conversion is
// explicit and fallible — a missing or non-positive duration yields
// ErrInvalidDuration, a malformed date ErrInvalidDate. An absent date
// defaults to the server's current date.
//
// On success the response echoes the user's id and username together with
// the stored exercise fields; the date is rendered in the fixed
// "Mon Jan 02 2006" form. This owner-echoing shape is the documented
// contract and is preserved exactly.
func (s *exerciseService) AddExercise(ctx context.Context, userID string, request models.AddExerciseRequest) (models.ExerciseResponse, error) {
	log := logger.FromContext(ctx)

	id, err := parseUserID(userID)
	if err != nil {
		return models.ExerciseResponse{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("resolving user ended with error")
		return models.ExerciseResponse{}, err
	}

	if request.Description == "" {
		log.Error().Msg("empty description provided")
		return models.ExerciseResponse{}, ErrEmptyDescription
	}

	duration, err := parseDuration(request.Duration)
	if err != nil {
		log.Err(err).Str("duration", request.Duration).Msg("invalid duration provided")
		return models.ExerciseResponse{}, err
	}

	date, err := parseDate(request.Date)
	if err != nil {
		log.Err(err).Str("date", request.Date).Msg("invalid date provided")
		return models.ExerciseResponse{}, err
	}

	exercise, err := s.exerciseRepository.CreateExercise(ctx, models.Exercise{
		UserID:      user.UserID,
		Description: request.Description,
		Duration:    duration,
		Date:        date,
	})
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("exercise creation ended with error")
		return models.ExerciseResponse{}, fmt.Errorf("exercise creation ended with error: %w", err)
	}

	return models.ExerciseResponse{
		ID:          formatID(user.UserID),
		Username:    user.Username,
		Date:        formatDate(exercise.Date),
		Duration:    exercise.Duration,
		Description: exercise.Description,
	}, nil
}

// GetLog returns the user's exercise log, optionally bounded by an inclusive
// date range and capped by a limit.
//
// The owning user is resolved first; an identifier that does not resolve
// yields store.ErrUserNotFound. The from/to parameters each add a one-sided
// bound when present; supplied together they form an inclusive range. The
// response count is the number of records actually returned, after both the
// filter and the limit have been applied.
func (s *exerciseService) GetLog(ctx context.Context, userID string, request models.LogRequest) (models.LogResponse, error) {
	log := logger.FromContext(ctx)

	id, err := parseUserID(userID)
	if err != nil {
		return models.LogResponse{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("resolving user ended with error")
		return models.LogResponse{}, err
	}

	filter := models.LogFilter{UserID: user.UserID}

	if request.From != "" {
		from, err := parseDate(request.From)
		if err != nil {
			log.Err(err).Str("from", request.From).Msg("invalid from date provided")
			return models.LogResponse{}, err
		}
		filter.From = &from
	}

	if request.To != "" {
		to, err := parseDate(request.To)
		if err != nil {
			log.Err(err).Str("to", request.To).Msg("invalid to date provided")
			return models.LogResponse{}, err
		}
		filter.To = &to
	}

	filter.Limit, err = parseLimit(request.Limit)
	if err != nil {
		log.Err(err).Str("limit", request.Limit).Msg("invalid limit provided")
		return models.LogResponse{}, err
	}

	exercises, err := s.exerciseRepository.FindExercises(ctx, filter)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("log query ended with error")
		return models.LogResponse{}, fmt.Errorf("log query ended with error: %w", err)
	}

	entries := make([]models.LogEntry, 0, len(exercises))
	for _, exercise := range exercises {
		entries = append(entries, models.LogEntry{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        formatDate(exercise.Date),
		})
	}

	return models.LogResponse{
		Username: user.Username,
		Count:    len(entries),
		ID:       formatID(user.UserID),
		Log:      entries,
	}, nil
}
