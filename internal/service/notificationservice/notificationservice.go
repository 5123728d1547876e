package notificationservice

import (
	"context"

	"github.com/ecotrack/greenpoints/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
	FindUnreadByUserID(ctx context.Context, userID int) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, notificationID int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Notify(ctx context.Context, userID int, message, notificationType string) (*domain.Notification, error) {
	notification, err := s.repo.Create(ctx, &domain.Notification{
		UserID:  userID,
		Message: message,
		Type:    notificationType,
	})
	if err != nil {
		zap.L().Error("failed to create notification", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return notification, nil
}

func (s *Service) GetUnread(ctx context.Context, userID int) ([]domain.Notification, error) {
	notifications, err := s.repo.FindUnreadByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch unread notifications", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID int) error {
	if err := s.repo.MarkAsRead(ctx, notificationID); err != nil {
		zap.L().Error("failed to mark notification as read", zap.Int("notificationID", notificationID), zap.Error(err))
		return err
	}
	return nil
}
