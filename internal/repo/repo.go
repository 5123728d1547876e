package repo

import (
	"github.com/ecotrack/greenpoints/internal/pg"
	accountrepo "github.com/ecotrack/greenpoints/internal/repo/account-repo"
	catalogrepo "github.com/ecotrack/greenpoints/internal/repo/catalog-repo"
	couponrepo "github.com/ecotrack/greenpoints/internal/repo/coupon-repo"
	notificationrepo "github.com/ecotrack/greenpoints/internal/repo/notification-repo"
	reportrepo "github.com/ecotrack/greenpoints/internal/repo/report-repo"
	transactionrepo "github.com/ecotrack/greenpoints/internal/repo/transaction-repo"
	userrepo "github.com/ecotrack/greenpoints/internal/repo/user-repo"
	"github.com/ecotrack/greenpoints/internal/service/authservice"
	"github.com/ecotrack/greenpoints/internal/service/notificationservice"
	"github.com/ecotrack/greenpoints/internal/service/reportservice"
	"github.com/ecotrack/greenpoints/internal/service/rewardservice"
)

type Repositories struct {
	UserRepo         authservice.Repo
	TransactionRepo  rewardservice.TransactionRepo
	AccountRepo      rewardservice.AccountRepo
	CouponRepo       rewardservice.CouponRepo
	CatalogRepo      rewardservice.CatalogRepo
	ReportRepo       reportservice.Repo
	NotificationRepo notificationservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	transactionRepo := transactionrepo.New(conn)
	accountRepo := accountrepo.New(conn, txManager)
	couponRepo := couponrepo.New(conn)
	catalogRepo := catalogrepo.New(conn)
	reportRepo := reportrepo.New(conn, txManager)
	notificationRepo := notificationrepo.New(conn)

	return &Repositories{
		UserRepo:         userRepo,
		TransactionRepo:  transactionRepo,
		AccountRepo:      accountRepo,
		CouponRepo:       couponRepo,
		CatalogRepo:      catalogRepo,
		ReportRepo:       reportRepo,
		NotificationRepo: notificationRepo,
	}
}
