package members

import (
	"context"

	"github.com/elitetenis/court-booking-service/internal/domain"
)

// MemberRepository интерфейс реестра участников
type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByCPF(ctx context.Context, memberCPF string) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
	UpdateRoles(ctx context.Context, memberCPF string, roles []domain.Role) error
	SetBlocked(ctx context.Context, memberCPF string, blocked bool) error
	UpdateName(ctx context.Context, memberCPF, firstName, lastName string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
