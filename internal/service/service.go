package service

import (
	"github.com/ecotrack/greenpoints/internal/handlers/auth"
	"github.com/ecotrack/greenpoints/internal/handlers/notifications"
	"github.com/ecotrack/greenpoints/internal/handlers/reports"
	"github.com/ecotrack/greenpoints/internal/handlers/rewards"

	pkgauth "github.com/ecotrack/greenpoints/pkg/auth"

	"github.com/ecotrack/greenpoints/internal/pg"
	"github.com/ecotrack/greenpoints/internal/repo"
	authservice "github.com/ecotrack/greenpoints/internal/service/authservice"
	notificationservice "github.com/ecotrack/greenpoints/internal/service/notificationservice"
	reportservice "github.com/ecotrack/greenpoints/internal/service/reportservice"
	rewardservice "github.com/ecotrack/greenpoints/internal/service/rewardservice"
)

type Services struct {
	AuthService         auth.Service
	RewardService       rewards.Service
	ReportService       reports.Service
	NotificationService notifications.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	rewardService := rewardservice.New(repo.TransactionRepo, repo.AccountRepo, repo.CouponRepo, repo.CatalogRepo, txManager)
	notificationService := notificationservice.New(repo.NotificationRepo)
	reportService := reportservice.New(repo.ReportRepo, rewardService, notificationService)
	authService := authservice.New(repo.UserRepo, rewardService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:         authService,
		RewardService:       rewardService,
		ReportService:       reportService,
		NotificationService: notificationService,
	}
}
