package handler

import (
	"github.com/fitlog/exercise-tracker/internal/config"
	"github.com/fitlog/exercise-tracker/internal/handler/http"
	"github.com/fitlog/exercise-tracker/internal/logger"
	"github.com/fitlog/exercise-tracker/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.App, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}

	return handlers, nil
}
