package http

import (
	"errors"
	"net/http"

	"github.com/fitlog/exercise-tracker/internal/service"
	"github.com/fitlog/exercise-tracker/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyUsername:    http.StatusBadRequest,
	service.ErrEmptyDescription: http.StatusBadRequest,
	service.ErrInvalidDuration:  http.StatusBadRequest,
	service.ErrInvalidDate:      http.StatusBadRequest,
	service.ErrInvalidLimit:     http.StatusBadRequest,

	store.ErrExerciseNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
