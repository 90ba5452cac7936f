package http

import (
	"github.com/fitlog/exercise-tracker/internal/config"
	"github.com/fitlog/exercise-tracker/internal/logger"
	"github.com/fitlog/exercise-tracker/internal/service"
)

type Handler struct {
	services  *service.Services
	staticDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		staticDir: cfg.StaticDir,
		logger:    logger,
	}
}
