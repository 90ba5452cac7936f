package http

import (
	"net/http"
	"path/filepath"

	"github.com/fitlog/exercise-tracker/internal/utils"
	"github.com/fitlog/exercise-tracker/models"
)

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.GreetingResponse{Greeting: "Hello Exercise Tracker"}, http.StatusOK)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}
