package block_court

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elitetenis/court-booking-service/internal/domain"
	memberRepo "github.com/elitetenis/court-booking-service/internal/infra/storage/member"
	"github.com/elitetenis/court-booking-service/pkg/cpf"
	"github.com/elitetenis/court-booking-service/pkg/ptr"
)

// UseCase use case для интердикции корта на диапазон дат
type UseCase struct {
	reservationRepo ReservationRepository
	memberRepo      MemberRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	policy          domain.RulePolicy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	memberRepo MemberRepository,
	txManager TransactionManager,
	policy domain.RulePolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		memberRepo:      memberRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		policy:          policy,
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (используется в тестах)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case интердикции. Каждый день обрабатывается в
// собственной сериализуемой транзакции: ошибка одного дня попадает в
// сводку и не мешает остальным. Существующие брони не трогаются,
// интердикция заполняет только свободные слоты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BlockCourt: court=%d, range=%s..%s, admin=%s",
		req.CourtID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.AdminCPF)

	// 1. Валидация входных данных
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("BlockCourt: validation failed: %v", err)
		return nil, err
	}

	// 2. Действующий участник должен быть админом
	admin, err := uc.memberRepo.GetByCPF(ctx, req.AdminCPF)
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			uc.logger.Warn("BlockCourt: admin %s not found", req.AdminCPF)
			return nil, ErrAdminNotFound
		}
		uc.logger.Error("BlockCourt: failed to get admin %s: %v", req.AdminCPF, err)
		return nil, fmt.Errorf("%w: failed to get admin: %v", ErrInternal, err)
	}
	if !admin.IsAdmin() {
		uc.logger.Warn("BlockCourt: member %s does not hold admin role", req.AdminCPF)
		return nil, ErrRoleNotPermitted
	}

	now := uc.timeProvider.Now()
	start := domain.DateOnly(req.StartDate)
	end := domain.DateOnly(req.EndDate)

	resp := &Response{CourtID: req.CourtID, StartDate: start, EndDate: end}

	// 3. По дням диапазона
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		result := DayResult{Date: day}

		if day.Weekday() == time.Monday {
			result.Closed = true
			resp.Days = append(resp.Days, result)
			continue
		}

		err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			blocked, skipped, err := uc.blockDay(txCtx, req.CourtID, day, req.AdminCPF, now)
			result.Blocked = blocked
			result.Skipped = skipped
			return err
		})
		if err != nil {
			uc.logger.Error("BlockCourt: day %s failed: %v", day.Format(domain.DateFormat), err)
			result.Error = err.Error()
			result.Blocked = 0
		}

		resp.Days = append(resp.Days, result)
	}

	uc.logger.Info("BlockCourt: court=%d processed %d day(s)", req.CourtID, len(resp.Days))
	return resp, nil
}

// blockDay закрывает интердикцией свободные слоты одного дня
func (uc *UseCase) blockDay(ctx context.Context, courtID int, day time.Time, adminCPF string, now time.Time) (blocked, skipped int, err error) {
	existing, err := uc.reservationRepo.GetActiveWithFilter(ctx, domain.ReservationFilter{
		CourtID:   ptr.Ptr(courtID),
		StartDate: ptr.Ptr(day),
		EndDate:   ptr.Ptr(day),
	})
	if err != nil {
		return 0, 0, fmt.Errorf("%w: failed to load day: %v", ErrInternal, err)
	}

	taken := make(map[string]bool, len(existing))
	for _, r := range existing {
		taken[string(r.TimeSlotStart)] = true
	}

	for _, slot := range domain.TemplateForDate(day) {
		if taken[string(slot.Start)] {
			skipped++
			continue
		}
		_, err := uc.reservationRepo.Create(ctx, &domain.Reservation{
			CourtID:       courtID,
			Date:          day,
			TimeSlotStart: slot.Start,
			TimeSlotEnd:   slot.End,
			MemberCPF:     adminCPF,
			GameType:      domain.GameInterdiction,
			Status:        domain.StatusActive,
			BookedByCPF:   adminCPF,
			CreatedAt:     now,
		})
		if err != nil {
			return blocked, skipped, fmt.Errorf("%w: failed to block slot %s: %v", ErrInternal, slot.Start, err)
		}
		blocked++
	}

	return blocked, skipped, nil
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
