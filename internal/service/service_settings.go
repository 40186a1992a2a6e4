package service

import (
	"context"
	"fmt"

	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/internal/store"
	"github.com/webstore/seller-sync/models"
)

// settingService is the concrete implementation of SettingService.
type settingService struct {
	settingRepository store.SettingRepository
	logger            *logger.Logger
}

// NewSettingService constructs a SettingService wired to the given
// SettingRepository.
func NewSettingService(settingRepository store.SettingRepository, logger *logger.Logger) SettingService {
	return &settingService{
		settingRepository: settingRepository,
		logger:            logger,
	}
}

// SaveSetting upserts one seller-scoped setting. The refreshed updated_at
// returned by the repository makes the change visible to the next sync of
// every other device.
//
// Returns ErrValidationNoSettingName when the setting name is empty.
func (s *settingService) SaveSetting(ctx context.Context, setting models.Setting) (models.Setting, error) {
	log := logger.FromContext(ctx)

	if setting.Name == "" {
		log.Error().Int64("seller_id", setting.SellerID).Msg("setting name is empty")
		return models.Setting{}, ErrValidationNoSettingName
	}

	saved, err := s.settingRepository.SaveSetting(ctx, setting)
	if err != nil {
		log.Err(err).
			Int64("seller_id", setting.SellerID).
			Str("name", setting.Name).
			Msg("setting save ended with error")
		return models.Setting{}, fmt.Errorf("setting save ended with error: %w", err)
	}

	return saved, nil
}
