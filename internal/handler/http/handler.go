package http

import (
	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/service"
	"github.com/MKhiriev/go-fin-sync/internal/utils"
)

type Handler struct {
	services *service.Services
	signer   *utils.Signer

	logger *logger.Logger
}

// NewHandler builds the delta API handler. A non-empty hashKey turns on
// HMAC verification of upload bodies.
func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Bool("hash_check", hashKey != "").Msg("http handler created")
	return &Handler{
		services: services,
		signer:   utils.NewSigner(hashKey),
		logger:   logger,
	}
}
