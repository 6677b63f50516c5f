package reservations

import (
	"context"
	"time"

	"github.com/elitetenis/court-booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetActiveWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	GetByMember(ctx context.Context, memberCPF string, limit uint64) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// MemberRepository интерфейс реестра участников
type MemberRepository interface {
	GetByCPF(ctx context.Context, memberCPF string) (*domain.Member, error)
}

// NotificationRepository интерфейс хранилища уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByRecipient(ctx context.Context, recipientCPF string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
