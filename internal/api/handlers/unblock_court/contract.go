package unblock_court

import (
	"context"

	unblockCourt "github.com/elitetenis/court-booking-service/internal/usecase/unblock_court"
)

type UnblockCourtUseCase interface {
	Execute(ctx context.Context, req *unblockCourt.Request) (*unblockCourt.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
