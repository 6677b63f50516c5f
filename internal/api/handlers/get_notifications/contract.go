package get_notifications

import (
	"context"

	"github.com/elitetenis/court-booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	GetNotifications(ctx context.Context, recipientCPF string) (*models.NotificationListResponse, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
