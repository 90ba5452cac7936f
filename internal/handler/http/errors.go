package http

import (
	"errors"
	"net/http"

	"github.com/fitlog/exercise-tracker/internal/logger"
	"github.com/fitlog/exercise-tracker/internal/store"
	"github.com/fitlog/exercise-tracker/internal/utils"
	"github.com/fitlog/exercise-tracker/models"
)

// userNotFoundMessage is the body clients receive when a referenced user
// does not exist. A missing user is a regular domain outcome, not a
// transport failure, so it is reported with a success status.
const userNotFoundMessage = "User not found"

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Err(err).Msg("requested user does not exist")
		utils.WriteJSON(w, models.ErrorResponse{Error: userNotFoundMessage}, http.StatusOK)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("request processing failed")
	} else {
		log.Info().Err(err).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
}
