package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fitlog/exercise-tracker/internal/logger"
	"github.com/fitlog/exercise-tracker/internal/utils"
	"github.com/fitlog/exercise-tracker/models"
)

func (h *Handler) addExercise(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "id")

	request, err := decodeAddExerciseRequest(r)
	if err != nil {
		log.Info().Err(err).Msg("malformed add exercise request")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	response, err := h.services.ExerciseService.AddExercise(ctx, userID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := chi.URLParam(r, "id")
	query := r.URL.Query()
	request := models.LogRequest{
		From:  query.Get("from"),
		To:    query.Get("to"),
		Limit: query.Get("limit"),
	}

	response, err := h.services.ExerciseService.GetLog(ctx, userID, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
