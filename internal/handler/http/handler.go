package http

import (
	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	server  config.Server
	uploads config.Uploads

	logger *logger.Logger
}

func NewHandler(services *service.Services, server config.Server, uploads config.Uploads, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		server:   server,
		uploads:  uploads,
		logger:   logger,
	}
}
