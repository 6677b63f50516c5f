package get_member_quota

import (
	"context"
	"errors"
	"fmt"

	"github.com/elitetenis/court-booking-service/internal/domain"
	memberRepo "github.com/elitetenis/court-booking-service/internal/infra/storage/member"
	"github.com/elitetenis/court-booking-service/pkg/cpf"
	"github.com/elitetenis/court-booking-service/pkg/ptr"
)

// UseCase use case для получения расхода недельных квот участника
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

// Execute выполняет use case расчёта квот за неделю
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMemberQuota: member=%s, date=%s", req.MemberCPF, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := cpf.Validate(req.MemberCPF); err != nil {
		uc.logger.Warn("GetMemberQuota: invalid CPF %s: %v", req.MemberCPF, err)
		return nil, fmt.Errorf("%w: member CPF: %v", ErrInvalidInput, err)
	}

	// 2. Участник должен существовать
	if _, err := uc.memberRepo.GetByCPF(ctx, req.MemberCPF); err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			uc.logger.Warn("GetMemberQuota: member %s not found", req.MemberCPF)
			return nil, ErrMemberNotFound
		}
		uc.logger.Error("GetMemberQuota: failed to get member %s: %v", req.MemberCPF, err)
		return nil, fmt.Errorf("%w: failed to get member: %v", ErrInternal, err)
	}

	// 3. Неделя: переданная дата или текущая
	weekOf := req.Date
	if weekOf.IsZero() {
		weekOf = uc.timeProvider.Now()
	}
	weekStart := domain.WeekStart(weekOf)
	weekEnd := weekStart.AddDate(0, 0, 6)

	// 4. Снапшот недели и подсчёт
	snapshot, err := uc.reservationRepo.GetActiveWithFilter(ctx, domain.ReservationFilter{
		StartDate: ptr.Ptr(weekStart),
		EndDate:   ptr.Ptr(weekEnd),
	})
	if err != nil {
		uc.logger.Error("GetMemberQuota: failed to load week snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to load week snapshot: %v", ErrInternal, err)
	}

	counts := domain.CountWeek(snapshot, req.MemberCPF, weekOf, uc.policy)

	return &Response{
		MemberCPF: req.MemberCPF,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Buckets: []Bucket{
			bucket("normal_weekday", counts.NormalWeekday, uc.policy.MaxNormalWeekdayPerWeek),
			bucket("normal_weekend", counts.NormalWeekend, uc.policy.MaxNormalWeekendPerWeek),
			bucket("pyramid", counts.PyramidTotal(), uc.policy.MaxPyramidPerWeek),
			bucket("beach_weekday", counts.BeachWeekday, uc.policy.MaxBeachWeekdayPerWeek),
			bucket("beach_weekend", counts.BeachWeekend, uc.policy.MaxBeachWeekendPerWeek),
		},
	}, nil
}

func bucket(name string, used, limit int) Bucket {
	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}
	return Bucket{Name: name, Used: used, Limit: limit, Remaining: remaining}
}
