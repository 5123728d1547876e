package reportrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ecotrack/greenpoints/internal/domain"
	"github.com/ecotrack/greenpoints/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const reportColumns = "id, user_id, location, waste_type, amount, image_url, status, verification_status, collector_id, created_at"

func scanReport(row pgx.Row) (*domain.Report, error) {
	var report domain.Report
	err := row.Scan(&report.ID, &report.UserID, &report.Location, &report.WasteType, &report.Amount,
		&report.ImageURL, &report.Status, &report.VerificationStatus, &report.CollectorID, &report.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *Repository) Create(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	query := `
		INSERT INTO reports (user_id, location, waste_type, amount, image_url, status, verification_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, report.UserID, report.Location, report.WasteType, report.Amount,
		report.ImageURL, report.Status, report.VerificationStatus).
		Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		zap.L().Error("can't save report", zap.Error(err))
		return nil, err
	}
	return report, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Report, error) {
	query := `
        SELECT ` + reportColumns + `
        FROM reports
        WHERE id = $1
    `
	report, err := scanReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find report", zap.Error(err))
		return nil, err
	}
	return report, nil
}

func (r *Repository) FindRecent(ctx context.Context, limit int) ([]domain.Report, error) {
	query := `
        SELECT ` + reportColumns + `
        FROM reports
        ORDER BY created_at DESC
        LIMIT $1
    `
	return r.queryReports(ctx, query, limit)
}

// FindForVerification returns reports with an image the classifier has not
// yet judged.
func (r *Repository) FindForVerification(ctx context.Context, limit int) ([]domain.Report, error) {
	query := `
        SELECT ` + reportColumns + `
        FROM reports
        WHERE verification_status = 'pending' AND image_url <> ''
        ORDER BY created_at ASC
        LIMIT $1
    `
	return r.queryReports(ctx, query, limit)
}

func (r *Repository) queryReports(ctx context.Context, query string, args ...any) ([]domain.Report, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch reports", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			zap.L().Error("failed to scan report row", zap.Error(err))
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, reportID int, status string, collectorID *int) (*domain.Report, error) {
	query := `
		UPDATE reports
		SET status = $1, collector_id = COALESCE($2, collector_id)
		WHERE id = $3
		RETURNING ` + reportColumns + `
	`
	report, err := scanReport(r.db.QueryRow(ctx, query, status, collectorID, reportID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to update report status", zap.Error(err))
		return nil, err
	}
	return report, nil
}

func (r *Repository) UpdateVerification(ctx context.Context, reportID int, verificationStatus string) error {
	query := `
		UPDATE reports
		SET verification_status = $1
		WHERE id = $2
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, verificationStatus, reportID)
		if err != nil {
			zap.L().Error("failed to update report verification", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) SaveCollectedWaste(ctx context.Context, collected *domain.CollectedWaste) (*domain.CollectedWaste, error) {
	query := `
		INSERT INTO collected_wastes (report_id, collector_id, collection_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, collected.ReportID, collected.CollectorID, collected.CollectionDate, collected.Status).
		Scan(&collected.ID)
	if err != nil {
		zap.L().Error("can't save collected waste", zap.Error(err))
		return nil, err
	}
	return collected, nil
}
