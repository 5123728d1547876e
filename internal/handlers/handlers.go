package handlers

import (
	"net/http"

	_ "github.com/ecotrack/greenpoints/docs"
	authhandlers "github.com/ecotrack/greenpoints/internal/handlers/auth"
	notificationhandlers "github.com/ecotrack/greenpoints/internal/handlers/notifications"
	reporthandlers "github.com/ecotrack/greenpoints/internal/handlers/reports"
	rewardhandlers "github.com/ecotrack/greenpoints/internal/handlers/rewards"
	"github.com/ecotrack/greenpoints/internal/service"
	"github.com/ecotrack/greenpoints/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type RewardHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetRewards(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
	RedeemForCoupon(w http.ResponseWriter, r *http.Request)
	GetCoupons(w http.ResponseWriter, r *http.Request)
	GetLeaderboard(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	CreateReport(w http.ResponseWriter, r *http.Request)
	GetReports(w http.ResponseWriter, r *http.Request)
	GetTasks(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	CompleteCollection(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	GetUnread(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	RewardHandler       RewardHandler
	ReportHandler       ReportHandler
	NotificationHandler NotificationHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		RewardHandler:       rewardhandlers.New(s.RewardService),
		ReportHandler:       reporthandlers.New(s.ReportService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/api/leaderboard", h.RewardHandler.GetLeaderboard)
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Put("/settings", h.AuthHandler.UpdateSettings)
			r.Get("/balance", h.RewardHandler.GetBalance)
			r.Get("/transactions", h.RewardHandler.GetTransactions)
			r.Route("/rewards", func(r chi.Router) {
				r.Get("/", h.RewardHandler.GetRewards)
				r.Post("/redeem", h.RewardHandler.Redeem)
				r.Post("/redeem/coupon", h.RewardHandler.RedeemForCoupon)
			})
			r.Get("/coupons", h.RewardHandler.GetCoupons)
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.GetUnread)
				r.Post("/{id}/read", h.NotificationHandler.MarkAsRead)
			})
		})
	})
	r.Route("/api/reports", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/", h.ReportHandler.CreateReport)
		r.Get("/", h.ReportHandler.GetReports)
		r.Get("/tasks", h.ReportHandler.GetTasks)
		r.Patch("/{id}/status", h.ReportHandler.UpdateStatus)
		r.Post("/{id}/collect", h.ReportHandler.CompleteCollection)
	})

	return r
}
