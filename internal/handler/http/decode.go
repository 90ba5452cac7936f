package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fitlog/exercise-tracker/models"
)

// Requests are accepted both as JSON documents and as HTML form submissions,
// so the original browser front end and API clients can share one endpoint.

func decodeCreateUserRequest(r *http.Request) (models.CreateUserRequest, error) {
	if isJSONRequest(r) {
		var request models.CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			return models.CreateUserRequest{}, err
		}
		return request, nil
	}

	if err := r.ParseForm(); err != nil {
		return models.CreateUserRequest{}, err
	}

	return models.CreateUserRequest{
		Username: r.PostFormValue("username"),
	}, nil
}

func decodeAddExerciseRequest(r *http.Request) (models.AddExerciseRequest, error) {
	if isJSONRequest(r) {
		var request models.AddExerciseRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			return models.AddExerciseRequest{}, err
		}
		return request, nil
	}

	if err := r.ParseForm(); err != nil {
		return models.AddExerciseRequest{}, err
	}

	return models.AddExerciseRequest{
		Description: r.PostFormValue("description"),
		Duration:    r.PostFormValue("duration"),
		Date:        r.PostFormValue("date"),
	}, nil
}

func isJSONRequest(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Content-Type"), "application/json")
}
