package unblock_court

import (
	"context"
	"errors"
	"fmt"

	"github.com/elitetenis/court-booking-service/internal/domain"
	memberRepo "github.com/elitetenis/court-booking-service/internal/infra/storage/member"
	"github.com/elitetenis/court-booking-service/pkg/cpf"
)

// UseCase use case для снятия интердикции с корта
type UseCase struct {
	reservationRepo ReservationRepository
	memberRepo      MemberRepository
	policy          domain.RulePolicy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	memberRepo MemberRepository,
	policy domain.RulePolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		memberRepo:      memberRepo,
		policy:          policy,
		logger:          logger,
	}
}

// Execute выполняет use case снятия интердикции. Удаляются только строки
// interdiction; обычные брони операция не трогает. Повторный вызов
// безвреден: день без интердикций даёт Removed=0.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UnblockCourt: court=%d, range=%s..%s, admin=%s",
		req.CourtID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.AdminCPF)

	// 1. Валидация входных данных
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("UnblockCourt: validation failed: %v", err)
		return nil, err
	}

	// 2. Действующий участник должен быть админом
	admin, err := uc.memberRepo.GetByCPF(ctx, req.AdminCPF)
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			uc.logger.Warn("UnblockCourt: admin %s not found", req.AdminCPF)
			return nil, ErrAdminNotFound
		}
		uc.logger.Error("UnblockCourt: failed to get admin %s: %v", req.AdminCPF, err)
		return nil, fmt.Errorf("%w: failed to get admin: %v", ErrInternal, err)
	}
	if !admin.IsAdmin() {
		uc.logger.Warn("UnblockCourt: member %s does not hold admin role", req.AdminCPF)
		return nil, ErrRoleNotPermitted
	}

	start := domain.DateOnly(req.StartDate)
	end := domain.DateOnly(req.EndDate)
	resp := &Response{CourtID: req.CourtID, StartDate: start, EndDate: end}

	// 3. По дням диапазона
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		result := DayResult{Date: day}

		removed, err := uc.reservationRepo.DeleteInterdictions(ctx, req.CourtID, day)
		if err != nil {
			uc.logger.Error("UnblockCourt: day %s failed: %v", day.Format(domain.DateFormat), err)
			result.Error = err.Error()
		} else {
			result.Removed = removed
		}

		resp.Days = append(resp.Days, result)
	}

	uc.logger.Info("UnblockCourt: court=%d processed %d day(s)", req.CourtID, len(resp.Days))
	return resp, nil
}

func (uc *UseCase) validateRequest(req *Request) error {
	if !domain.KnownCourt(req.CourtID) {
		return fmt.Errorf("%w: unknown court id %d", ErrInvalidInput, req.CourtID)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}
	days := int(domain.DateOnly(req.EndDate).Sub(domain.DateOnly(req.StartDate)).Hours()/24) + 1
	if days > uc.policy.MaxInterdictionRangeDays {
		return fmt.Errorf("%w: %d days exceed the maximum of %d", ErrRangeTooLong, days, uc.policy.MaxInterdictionRangeDays)
	}
	if err := cpf.Validate(req.AdminCPF); err != nil {
		return fmt.Errorf("%w: admin CPF: %v", ErrInvalidInput, err)
	}
	return nil
}
