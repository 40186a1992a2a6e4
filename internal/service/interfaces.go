package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/webstore/seller-sync/models"
)

type AuthService interface {
	RegisterSeller(ctx context.Context, seller models.Seller, password string) (models.Seller, error)
	Login(ctx context.Context, login string, password string) (models.Seller, error)
	CreateToken(ctx context.Context, seller models.Seller) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SettingService handles the settings write-through side channel. Saved
// settings become visible to other devices through the normal sync flow.
type SettingService interface {
	SaveSetting(ctx context.Context, setting models.Setting) (models.Setting, error)
}

// ReportService handles client-generated report submission.
type ReportService interface {
	SaveReport(ctx context.Context, report models.Report) (models.Report, error)
}
