package http

import (
	"net/http"

	"github.com/fitlog/exercise-tracker/internal/logger"
	"github.com/fitlog/exercise-tracker/internal/utils"
	"github.com/fitlog/exercise-tracker/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	request, err := decodeCreateUserRequest(r)
	if err != nil {
		log.Info().Err(err).Msg("malformed create user request")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid request body"}, http.StatusBadRequest)
		return
	}

	response, err := h.services.UserService.CreateUser(ctx, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response, err := h.services.UserService.GetAllUsers(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
