package service

import (
	"context"
	"fmt"

	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/internal/store"
	"github.com/webstore/seller-sync/models"
)

// reportService is the concrete implementation of ReportService.
type reportService struct {
	reportRepository store.ReportRepository
	logger           *logger.Logger
}

// NewReportService constructs a ReportService wired to the given
// ReportRepository.
func NewReportService(reportRepository store.ReportRepository, logger *logger.Logger) ReportService {
	return &reportService{
		reportRepository: reportRepository,
		logger:           logger,
	}
}

// SaveReport inserts one client-generated report row. The report flows back
// to other devices through the normal report sync.
//
// Returns ErrValidationNoReportKind when the report kind is empty.
func (s *reportService) SaveReport(ctx context.Context, report models.Report) (models.Report, error) {
	log := logger.FromContext(ctx)

	if report.Kind == "" {
		log.Error().Int64("seller_id", report.SellerID).Msg("report kind is empty")
		return models.Report{}, ErrValidationNoReportKind
	}

	saved, err := s.reportRepository.SaveReport(ctx, report)
	if err != nil {
		log.Err(err).
			Int64("seller_id", report.SellerID).
			Str("kind", report.Kind).
			Msg("report save ended with error")
		return models.Report{}, fmt.Errorf("report save ended with error: %w", err)
	}

	return saved, nil
}
