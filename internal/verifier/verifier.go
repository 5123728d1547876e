package verifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ecotrack/greenpoints/internal/config"
	"github.com/ecotrack/greenpoints/internal/domain"
	"github.com/ecotrack/greenpoints/internal/service/reportservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ecotrack/greenpoints/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

// Class labels produced by the waste image classifier, in model output order.
var wasteLabels = []string{"cardboard", "glass", "metal", "paper", "plastic", "trash"}

var processingReports sync.Map

type Response struct {
	PredictedClass int `json:"predicted_class"`
}

type Notifier interface {
	Notify(ctx context.Context, userID int, message, notificationType string) (*domain.Notification, error)
}

type Service struct {
	url            string
	reportRepo     reportservice.Repo
	notifier       Notifier
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, reportRepo reportservice.Repo, notifier Notifier, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.ClassifierAddress,
		reportRepo:     reportRepo,
		notifier:       notifier,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Verification service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.processReports(ctx)
		}
	}
}

func (s *Service) processReports(ctx context.Context) {
	reports, err := s.reportRepo.FindForVerification(ctx, int(atomic.LoadUint32(&s.limit)))
	if err != nil {
		zap.L().Error("Failed to fetch reports for verification", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, report := range reports {
		report := report

		if _, loaded := processingReports.LoadOrStore(report.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingReports.Delete(report.ID)
				return s.handleReport(ctx, report)
			})
			if err != nil {
				processingReports.Delete(report.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing reports", zap.Error(err))
	}
}

func (s *Service) handleReport(ctx context.Context, report domain.Report) error {
	predictURL := s.url + "/predict?image_url=" + url.QueryEscape(report.ImageURL)
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(predictURL, nil)
			if err != nil {
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("failed to verify report %d after %d retries: %w", report.ID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(report, respHeaders, attempt)

			case http.StatusOK:
				return s.processPrediction(ctx, report, respBody)

			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.Int("reportID", report.ID))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) processPrediction(ctx context.Context, report domain.Report, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.PredictedClass < 0 || response.PredictedClass >= len(wasteLabels) {
		return fmt.Errorf("unknown class %d for report %d", response.PredictedClass, report.ID)
	}
	predicted := wasteLabels[response.PredictedClass]

	status := reportservice.VerificationRejected
	message := fmt.Sprintf("Your waste report #%d could not be verified: the photo looks like %s.", report.ID, predicted)
	if strings.EqualFold(predicted, report.WasteType) {
		status = reportservice.VerificationVerified
		message = fmt.Sprintf("Your waste report #%d has been verified. Thanks for keeping it green!", report.ID)
	}

	if err := s.reportRepo.UpdateVerification(ctx, report.ID, status); err != nil {
		return fmt.Errorf("failed to update verification for report %d: %w", report.ID, err)
	}

	if _, err := s.notifier.Notify(ctx, report.UserID, message, "verification"); err != nil {
		zap.L().Warn("Failed to notify reporter about verification", zap.Int("reportID", report.ID), zap.Error(err))
	}

	zap.L().Info("Report verification completed",
		zap.Int("reportID", report.ID),
		zap.String("predicted", predicted),
		zap.String("status", status),
	)
	return nil
}

func (s *Service) handleRateLimit(report domain.Report, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.Int("reportID", report.ID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
