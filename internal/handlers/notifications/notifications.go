package notifications

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ecotrack/greenpoints/internal/domain"
	"github.com/ecotrack/greenpoints/internal/dto"
	"github.com/ecotrack/greenpoints/pkg/auth"
	"github.com/ecotrack/greenpoints/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Notify(ctx context.Context, userID int, message, notificationType string) (*domain.Notification, error)
	GetUnread(ctx context.Context, userID int) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, notificationID int) error
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// GetUnread godoc
//
//	@Summary		Get unread notifications
//	@Description	Get the unread notifications for the authenticated user, newest first.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.NotificationDTO	"Unread notifications"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/notifications [get]
func (h *NotificationHandler) GetUnread(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	notifications, err := h.notificationService.GetUnread(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}

	response := make([]dto.NotificationDTO, len(notifications))
	for i, notification := range notifications {
		response[i] = dto.NotificationDTO{
			ID:        notification.ID,
			Message:   notification.Message,
			Type:      notification.Type,
			CreatedAt: notification.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MarkAsRead godoc
//
//	@Summary		Mark a notification as read
//	@Description	Mark a single notification as read so it no longer appears in the unread list.
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Notification ID"
//	@Success		200	{object}	utils.Response	"Notification marked as read"
//	@Failure		400	{object}	utils.Response	"Invalid notification id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/notifications/{id}/read [post]
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	notificationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid notification id")
		return
	}

	if err := h.notificationService.MarkAsRead(r.Context(), notificationID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Notification marked as read"})
}
