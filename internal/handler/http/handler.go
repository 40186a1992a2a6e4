package http

import (
	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/internal/service"
	"github.com/webstore/seller-sync/internal/syncer"
	"github.com/webstore/seller-sync/internal/validators"
)

type Handler struct {
	services *service.Services

	// syncers maps the URL entity segment to its coordinator. Built once at
	// construction; read-only afterwards.
	syncers map[string]syncer.EntitySyncer

	// validator rejects structurally broken sync request bodies before they
	// reach a coordinator.
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	syncers := make(map[string]syncer.EntitySyncer, len(services.Syncers))
	for _, s := range services.Syncers {
		syncers[s.Entity()] = s
	}

	logger.Info().Int("entities", len(syncers)).Msg("http handler created")
	return &Handler{
		services:  services,
		syncers:   syncers,
		validator: validators.NewSyncRequestValidator(),
		logger:    logger,
	}
}
