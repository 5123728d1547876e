package reportservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecotrack/greenpoints/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, report *domain.Report) (*domain.Report, error)
	FindByID(ctx context.Context, id int) (*domain.Report, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Report, error)
	FindForVerification(ctx context.Context, limit int) ([]domain.Report, error)
	UpdateStatus(ctx context.Context, reportID int, status string, collectorID *int) (*domain.Report, error)
	UpdateVerification(ctx context.Context, reportID int, verificationStatus string) error
	SaveCollectedWaste(ctx context.Context, collected *domain.CollectedWaste) (*domain.CollectedWaste, error)
}

// Ledger is the slice of the reward engine the report flow needs.
type Ledger interface {
	RecordEarning(ctx context.Context, userID int, source string, points int, description string) (*domain.Transaction, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID int, message, notificationType string) (*domain.Notification, error)
}

// Report lifecycle statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCollected  = "collected"
)

// Image verification statuses set by the background verifier.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// Point awards for the two earning paths.
const (
	reportPoints  = 10
	collectPoints = 15
)

const (
	defaultReportLimit = 10
	defaultTaskLimit   = 20
)

var ErrReportNotFound = errors.New("report not found")

type Service struct {
	repo     Repo
	ledger   Ledger
	notifier Notifier
}

func New(repo Repo, ledger Ledger, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		ledger:   ledger,
		notifier: notifier,
	}
}

// CreateReport stores a new waste report and awards the reporter points.
// A failed notification does not fail the report; the original tolerates the
// same.
func (s *Service) CreateReport(ctx context.Context, userID int, location, wasteType, amount, imageURL string) (*domain.Report, error) {
	report, err := s.repo.Create(ctx, &domain.Report{
		UserID:             userID,
		Location:           location,
		WasteType:          wasteType,
		Amount:             amount,
		ImageURL:           imageURL,
		Status:             StatusPending,
		VerificationStatus: VerificationPending,
	})
	if err != nil {
		zap.L().Error("can't create report", zap.Error(err))
		return nil, err
	}

	if _, err := s.ledger.RecordEarning(ctx, userID, "report", reportPoints, "Points earned for reporting waste"); err != nil {
		zap.L().Error("failed to award report points", zap.Int("reportID", report.ID), zap.Error(err))
		return nil, err
	}

	message := fmt.Sprintf("You've earned %d points for reporting waste!", reportPoints)
	if _, err := s.notifier.Notify(ctx, userID, message, "reward"); err != nil {
		zap.L().Warn("failed to notify reporter", zap.Int("userID", userID), zap.Error(err))
	}

	return report, nil
}

func (s *Service) GetRecentReports(ctx context.Context, limit int) ([]domain.Report, error) {
	if limit <= 0 {
		limit = defaultReportLimit
	}
	reports, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		zap.L().Error("failed to fetch recent reports", zap.Error(err))
		return nil, err
	}
	return reports, nil
}

func (s *Service) GetCollectionTasks(ctx context.Context, limit int) ([]domain.Report, error) {
	if limit <= 0 {
		limit = defaultTaskLimit
	}
	tasks, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		zap.L().Error("failed to fetch collection tasks", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

func (s *Service) UpdateTaskStatus(ctx context.Context, reportID int, status string, collectorID *int) (*domain.Report, error) {
	report, err := s.repo.UpdateStatus(ctx, reportID, status, collectorID)
	if err != nil {
		zap.L().Error("failed to update task status", zap.Int("reportID", reportID), zap.Error(err))
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}

// CompleteCollection marks a report collected, records the collected waste
// and awards the collector points.
func (s *Service) CompleteCollection(ctx context.Context, reportID, collectorID int) (*domain.CollectedWaste, error) {
	report, err := s.repo.FindByID(ctx, reportID)
	if err != nil {
		zap.L().Error("can't find report", zap.Int("reportID", reportID), zap.Error(err))
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}

	if _, err := s.repo.UpdateStatus(ctx, reportID, StatusCollected, &collectorID); err != nil {
		zap.L().Error("failed to mark report collected", zap.Int("reportID", reportID), zap.Error(err))
		return nil, err
	}

	collected, err := s.repo.SaveCollectedWaste(ctx, &domain.CollectedWaste{
		ReportID:       reportID,
		CollectorID:    collectorID,
		CollectionDate: time.Now(),
		Status:         "verified",
	})
	if err != nil {
		zap.L().Error("failed to save collected waste", zap.Int("reportID", reportID), zap.Error(err))
		return nil, err
	}

	if _, err := s.ledger.RecordEarning(ctx, collectorID, "collect", collectPoints, "Points earned for collecting waste"); err != nil {
		zap.L().Error("failed to award collection points", zap.Int("collectorID", collectorID), zap.Error(err))
		return nil, err
	}

	message := fmt.Sprintf("You've earned %d points for collecting waste!", collectPoints)
	if _, err := s.notifier.Notify(ctx, collectorID, message, "reward"); err != nil {
		zap.L().Warn("failed to notify collector", zap.Int("collectorID", collectorID), zap.Error(err))
	}

	return collected, nil
}
