package get_member_quota

import (
	"context"

	getMemberQuota "github.com/elitetenis/court-booking-service/internal/usecase/get_member_quota"
)

type GetMemberQuotaUseCase interface {
	Execute(ctx context.Context, req *getMemberQuota.Request) (*getMemberQuota.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
