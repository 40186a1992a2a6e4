package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/models"
)

// settingRepository is the PostgreSQL-backed implementation of
// [SettingRepository]. Settings are the only collection the mobile app
// writes back through a side channel, so this repository has both the
// snapshot read and an upsert keyed by (seller_id, name).
type settingRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingRepository constructs a [SettingRepository] backed by the
// provided database connection and logger.
func NewSettingRepository(db *DB, logger *logger.Logger) SettingRepository {
	return &settingRepository{
		DB:     db,
		logger: logger,
	}
}

// GetSettings retrieves every setting of the given seller.
func (r *settingRepository) GetSettings(ctx context.Context, sellerID int64) ([]models.Setting, error) {
	log := logger.FromContext(ctx)

	query, args, err := settingsQuery(sellerID)
	if err != nil {
		log.Err(err).
			Str("func", "settingRepository.GetSettings").
			Int64("seller_id", sellerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "settingRepository.GetSettings").
			Int64("seller_id", sellerID).
			Msg("failed to execute query for getting settings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Setting, 0, 50)

	for rows.Next() {
		var s models.Setting

		if scanErr := rows.Scan(&s.ID, &s.SellerID, &s.Name, &s.Value, &s.UpdatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "settingRepository.GetSettings").
				Int64("seller_id", sellerID).
				Msg("failed to scan setting row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, s)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "settingRepository.GetSettings").
			Int64("seller_id", sellerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// SaveSetting inserts or updates one setting keyed by (seller_id, name) and
// returns the canonical database representation, including the refreshed
// updated_at that makes the change visible to the next sync.
func (r *settingRepository) SaveSetting(ctx context.Context, setting models.Setting) (models.Setting, error) {
	log := logger.FromContext(ctx)

	query, args, err := saveSettingQuery(setting.SellerID, setting.Name, setting.Value)
	if err != nil {
		log.Err(err).
			Str("func", "settingRepository.SaveSetting").
			Int64("seller_id", setting.SellerID).
			Msg("failed to create query")
		return models.Setting{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "settingRepository.SaveSetting").
			Int64("seller_id", setting.SellerID).
			Str("name", setting.Name).
			Msg("failed to upsert setting")

		switch postgresError(err) {
		case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
			return models.Setting{}, ErrSettingNotSaved
		default:
			return models.Setting{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	var saved models.Setting
	if err := row.Scan(&saved.ID, &saved.SellerID, &saved.Name, &saved.Value, &saved.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "settingRepository.SaveSetting").
			Int64("seller_id", setting.SellerID).
			Str("name", setting.Name).
			Msg("failed to scan upserted setting")
		return models.Setting{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// dashboardRepository is the PostgreSQL-backed implementation of
// [DashboardRepository], serving the read-only "seller_stats" and
// "queued_emails" tables.
type dashboardRepository struct {
	*DB
	logger *logger.Logger
}

// NewDashboardRepository constructs a [DashboardRepository] backed by the
// provided database connection and logger.
func NewDashboardRepository(db *DB, logger *logger.Logger) DashboardRepository {
	return &dashboardRepository{
		DB:     db,
		logger: logger,
	}
}

// GetSellerStats retrieves the precomputed dashboard statistics of the given
// seller.
func (r *dashboardRepository) GetSellerStats(ctx context.Context, sellerID int64) ([]models.SellerStat, error) {
	log := logger.FromContext(ctx)

	query, args, err := sellerStatsQuery(sellerID)
	if err != nil {
		log.Err(err).
			Str("func", "dashboardRepository.GetSellerStats").
			Int64("seller_id", sellerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "dashboardRepository.GetSellerStats").
			Int64("seller_id", sellerID).
			Msg("failed to execute query for getting seller stats")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.SellerStat, 0, 50)

	for rows.Next() {
		var s models.SellerStat

		scanErr := rows.Scan(
			&s.ID,
			&s.SellerID,
			&s.PeriodKind,
			&s.PeriodFrom,
			&s.OrderCount,
			&s.Revenue,
			&s.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "dashboardRepository.GetSellerStats").
				Int64("seller_id", sellerID).
				Msg("failed to scan seller stat row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, s)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "dashboardRepository.GetSellerStats").
			Int64("seller_id", sellerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetQueuedEmails retrieves the outbound email queue of the given seller.
func (r *dashboardRepository) GetQueuedEmails(ctx context.Context, sellerID int64) ([]models.QueuedEmail, error) {
	log := logger.FromContext(ctx)

	query, args, err := queuedEmailsQuery(sellerID)
	if err != nil {
		log.Err(err).
			Str("func", "dashboardRepository.GetQueuedEmails").
			Int64("seller_id", sellerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "dashboardRepository.GetQueuedEmails").
			Int64("seller_id", sellerID).
			Msg("failed to execute query for getting queued emails")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.QueuedEmail, 0, 50)

	for rows.Next() {
		var q models.QueuedEmail

		scanErr := rows.Scan(
			&q.ID,
			&q.ToAddress,
			&q.Subject,
			&q.SentTries,
			&q.SentAt,
			&q.CreatedAt,
			&q.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "dashboardRepository.GetQueuedEmails").
				Int64("seller_id", sellerID).
				Msg("failed to scan queued email row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, q)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "dashboardRepository.GetQueuedEmails").
			Int64("seller_id", sellerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// reportRepository is the PostgreSQL-backed implementation of
// [ReportRepository].
type reportRepository struct {
	*DB
	logger *logger.Logger
}

// NewReportRepository constructs a [ReportRepository] backed by the provided
// database connection and logger.
func NewReportRepository(db *DB, logger *logger.Logger) ReportRepository {
	return &reportRepository{
		DB:     db,
		logger: logger,
	}
}

// GetReports retrieves every report of the given seller.
func (r *reportRepository) GetReports(ctx context.Context, sellerID int64) ([]models.Report, error) {
	log := logger.FromContext(ctx)

	query, args, err := reportsQuery(sellerID)
	if err != nil {
		log.Err(err).
			Str("func", "reportRepository.GetReports").
			Int64("seller_id", sellerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "reportRepository.GetReports").
			Int64("seller_id", sellerID).
			Msg("failed to execute query for getting reports")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Report, 0, 50)

	for rows.Next() {
		var rep models.Report

		scanErr := rows.Scan(
			&rep.ID,
			&rep.SellerID,
			&rep.Kind,
			&rep.Payload,
			&rep.CreatedAt,
			&rep.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "reportRepository.GetReports").
				Int64("seller_id", sellerID).
				Msg("failed to scan report row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, rep)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "reportRepository.GetReports").
			Int64("seller_id", sellerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// SaveReport inserts one client-generated report and returns the persisted
// row with server-assigned id and timestamps.
func (r *reportRepository) SaveReport(ctx context.Context, report models.Report) (models.Report, error) {
	log := logger.FromContext(ctx)

	query, args, err := saveReportQuery(report.SellerID, report.Kind, report.Payload)
	if err != nil {
		log.Err(err).
			Str("func", "reportRepository.SaveReport").
			Int64("seller_id", report.SellerID).
			Msg("failed to create query")
		return models.Report{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "reportRepository.SaveReport").
			Int64("seller_id", report.SellerID).
			Str("kind", report.Kind).
			Msg("failed to insert report")

		switch postgresError(err) {
		case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
			return models.Report{}, ErrReportNotSaved
		default:
			return models.Report{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	var saved models.Report
	if err := row.Scan(&saved.ID, &saved.SellerID, &saved.Kind, &saved.Payload, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "reportRepository.SaveReport").
			Int64("seller_id", report.SellerID).
			Str("kind", report.Kind).
			Msg("failed to scan inserted report")
		return models.Report{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}
