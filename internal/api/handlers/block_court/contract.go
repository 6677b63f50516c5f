package block_court

import (
	"context"

	blockCourt "github.com/elitetenis/court-booking-service/internal/usecase/block_court"
)

type BlockCourtUseCase interface {
	Execute(ctx context.Context, req *blockCourt.Request) (*blockCourt.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
