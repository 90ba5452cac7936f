package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fitlog/exercise-tracker/models"
)

func newRoutesRouter(t *testing.T) http.Handler {
	t.Helper()
	users := &mockUserSvc{
		createUserFn: func(_ context.Context, _ models.CreateUserRequest) (models.UserResponse, error) {
			return models.UserResponse{}, nil
		},
		getAllUsersFn: func(_ context.Context) ([]models.UserResponse, error) {
			return nil, nil
		},
	}
	exercises := &mockExerciseSvc{
		addExerciseFn: func(_ context.Context, _ string, _ models.AddExerciseRequest) (models.ExerciseResponse, error) {
			return models.ExerciseResponse{}, nil
		},
		getLogFn: func(_ context.Context, _ string, _ models.LogRequest) (models.LogResponse, error) {
			return models.LogResponse{}, nil
		},
	}
	return newTestHandler(t, users, exercises)
}

func TestInit_RegisteredRoutes(t *testing.T) {
	router := newRoutesRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/hello"},
		{http.MethodPost, "/api/users"},
		{http.MethodGet, "/api/users"},
		{http.MethodPost, "/api/users/1/exercises"},
		{http.MethodGet, "/api/users/1/logs"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
		})
	}
}

func TestInit_UnknownRoute(t *testing.T) {
	router := newRoutesRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_WrongMethodHidesRoute(t *testing.T) {
	router := newRoutesRouter(t)

	// the MethodNotAllowed override answers 404, not 405
	req := httptest.NewRequest(http.MethodDelete, "/api/users", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_TraceIDHeaderSet(t *testing.T) {
	router := newRoutesRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
