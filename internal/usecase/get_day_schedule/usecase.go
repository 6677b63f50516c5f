package get_day_schedule

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

// UseCase use case для получения расписания корта на день
type UseCase struct {
	reservationRepo ReservationRepository
	memberRepo      MemberRepository
	timeProvider    TimeProvider
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

// Execute выполняет use case получения расписания дня.
// Сетка слотов возвращается всегда; если день ещё не открыт для брони,
// Released=false и ReleaseMessage объясняет, когда откроется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: court=%d, date=%s, viewer=%s",
		req.CourtID, req.Date.Format(domain.DateFormat), req.ViewerCPF)

	// 1. Валидация входных данных
	if !domain.KnownCourt(req.CourtID) {
		uc.logger.Warn("GetDaySchedule: unknown court id %d", req.CourtID)
		return nil, fmt.Errorf("%w: unknown court id %d", ErrInvalidInput, req.CourtID)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Date.Weekday() == time.Monday {
		uc.logger.Warn("GetDaySchedule: %s is a Monday, club closed", req.Date.Format(domain.DateFormat))
		return nil, ErrClubClosed
	}
	if req.ViewerCPF != "" {
		if err := cpf.Validate(req.ViewerCPF); err != nil {
			return nil, fmt.Errorf("%w: viewer CPF: %v", ErrInvalidInput, err)
		}
	}

	// 2. Роли смотрящего определяют, видит ли он ещё не открытые недели
	var roles []domain.Role
	if req.ViewerCPF != "" {
		viewer, err := uc.memberRepo.GetByCPF(ctx, req.ViewerCPF)
		if err != nil && !errors.Is(err, memberRepo.ErrMemberNotFound) {
			uc.logger.Error("GetDaySchedule: failed to get viewer %s: %v", req.ViewerCPF, err)
			return nil, fmt.Errorf("%w: failed to get viewer: %v", ErrInternal, err)
		}
		if viewer != nil {
			roles = viewer.Roles
		}
	}

	now := uc.timeProvider.Now()
	category := domain.CategoryForCourt(req.CourtID)
	decision := domain.ReleaseFor(req.Date, category, roles, now, uc.policy)

	// 3. Занятость дня на этом корте
	day := domain.DateOnly(req.Date)
	reservations, err := uc.reservationRepo.GetActiveWithFilter(ctx, domain.ReservationFilter{
		CourtID:   ptr.Ptr(req.CourtID),
		StartDate: ptr.Ptr(day),
		EndDate:   ptr.Ptr(day),
	})
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	// 4. Раскладываем брони по сетке дня
	slots := make([]Slot, 0, len(domain.TemplateForDate(req.Date)))
	for _, tmpl := range domain.TemplateForDate(req.Date) {
		slot := Slot{Start: tmpl.Start, End: tmpl.End, Status: SlotFree}
		for _, r := range reservations {
			if r.TimeSlotStart != tmpl.Start {
				continue
			}
			slot.ReservationID = ptr.Ptr(r.ID)
			slot.MemberCPF = r.MemberCPF
			slot.OpponentCPF = r.OpponentCPF
			slot.GameType = string(r.GameType)
			if r.IsInterdiction() {
				slot.Status = SlotBlocked
			} else {
				slot.Status = SlotBooked
			}
			break
		}
		slots = append(slots, slot)
	}

	resp := &Response{
		CourtID:        req.CourtID,
		CourtName:      domain.CourtName(req.CourtID),
		Category:       string(category),
		Date:           day,
		Released:       decision.Released,
		ReleaseMessage: decision.Reason,
		Slots:          slots,
	}
	if !decision.ReleaseAt.IsZero() {
		resp.ReleaseAt = ptr.Ptr(decision.ReleaseAt)
	}

	return resp, nil
}
