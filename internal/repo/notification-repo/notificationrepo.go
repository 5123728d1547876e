package notificationrepo

import (
	"context"

	"github.com/ecotrack/greenpoints/internal/domain"
	"github.com/ecotrack/greenpoints/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, message, type)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, notification.UserID, notification.Message, notification.Type).
		Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		zap.L().Error("can't save notification", zap.Error(err))
		return nil, err
	}
	return notification, nil
}

func (r *Repository) FindUnreadByUserID(ctx context.Context, userID int) ([]domain.Notification, error) {
	query := `
        SELECT id, user_id, message, type, is_read, created_at
        FROM notifications
        WHERE user_id = $1 AND is_read = FALSE
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var notification domain.Notification
		err := rows.Scan(&notification.ID, &notification.UserID, &notification.Message,
			&notification.Type, &notification.IsRead, &notification.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

func (r *Repository) MarkAsRead(ctx context.Context, notificationID int) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, notificationID)
	if err != nil {
		zap.L().Error("failed to mark notification as read", zap.Error(err))
		return err
	}
	return nil
}
