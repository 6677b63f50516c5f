package manage_members

import (
	"context"

	"github.com/elitetenis/court-booking-service/internal/service/members/models"
)

type MemberService interface {
	List(ctx context.Context, actorCPF string) (*models.MemberListResponse, error)
	Register(ctx context.Context, req *models.RegisterMemberRequest) (*models.MemberResponse, error)
	ToggleRole(ctx context.Context, req *models.ToggleRoleRequest) (*models.MemberResponse, error)
	SetBlocked(ctx context.Context, req *models.SetBlockedRequest) (*models.MemberResponse, error)
	Deactivate(ctx context.Context, memberCPF, actorCPF string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
