package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elitetenis/court-booking-service/internal/domain"
	memberRepo "github.com/elitetenis/court-booking-service/internal/infra/storage/member"
	reservationRepo "github.com/elitetenis/court-booking-service/internal/infra/storage/reservation"
	"github.com/elitetenis/court-booking-service/pkg/ptr"
)

// UseCase use case для создания бронирования с проверкой правил клуба
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

// Execute выполняет use case создания бронирования.
// Все проверки, зависящие от занятости и лимитов, выполняются в
// сериализуемой транзакции над снапшотом недели: при гонке вставок
// одна из транзакций откатится либо упрётся в уникальный индекс.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: court=%d, date=%s, slot=%s, member=%s, game=%s",
		req.CourtID, req.Date.Format(domain.DateFormat), req.TimeSlotStart, req.MemberCPF, req.GameType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	if req.BookedByCPF == "" {
		req.BookedByCPF = req.MemberCPF
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем владельца брони из реестра
	holder, err := uc.memberRepo.GetByCPF(ctx, req.MemberCPF)
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			uc.logger.Warn("CreateReservation: member %s not found", req.MemberCPF)
			return nil, ErrMemberNotFound
		}
		uc.logger.Error("CreateReservation: failed to get member %s: %v", req.MemberCPF, err)
		return nil, fmt.Errorf("%w: failed to get member: %v", ErrInternal, err)
	}
	if holder.IsBlocked {
		uc.logger.Warn("CreateReservation: member %s is blocked", req.MemberCPF)
		return nil, ErrMemberBlocked
	}

	// 4. Аулы бронирует только учитель, интердикции — только админ
	if req.GameType == domain.GameClass && !holder.IsTeacher() {
		uc.logger.Warn("CreateReservation: member %s tried to book a class without teacher role", req.MemberCPF)
		return nil, ErrRoleNotPermitted
	}
	if req.GameType == domain.GameInterdiction && !holder.IsAdmin() {
		uc.logger.Warn("CreateReservation: member %s tried to book an interdiction without admin role", req.MemberCPF)
		return nil, ErrRoleNotPermitted
	}

	// 5. Получаем соперника для адверсарных типов игры
	var opponent *domain.Member
	if req.GameType.IsAdversarial() {
		opponent, err = uc.memberRepo.GetByCPF(ctx, req.OpponentCPF)
		if err != nil {
			if errors.Is(err, memberRepo.ErrMemberNotFound) {
				uc.logger.Warn("CreateReservation: opponent %s not found", req.OpponentCPF)
				return nil, ErrOpponentNotFound
			}
			uc.logger.Error("CreateReservation: failed to get opponent %s: %v", req.OpponentCPF, err)
			return nil, fmt.Errorf("%w: failed to get opponent: %v", ErrInternal, err)
		}
		if opponent.IsBlocked {
			uc.logger.Warn("CreateReservation: opponent %s is blocked", req.OpponentCPF)
			return nil, ErrOpponentBlocked
		}
	}

	slot, _ := domain.FindSlot(req.Date, req.TimeSlotStart)

	var result *domain.Reservation
	var lastMinute bool

	// 6. Проверки занятости и лимитов в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Снапшот активных броней недели. Одной выборки хватает
		// на проверку занятости слота, дневного и недельных лимитов.
		weekStart := domain.WeekStart(req.Date)
		weekEnd := weekStart.AddDate(0, 0, 6)
		snapshot, err := uc.reservationRepo.GetActiveWithFilter(txCtx, domain.ReservationFilter{
			StartDate: ptr.Ptr(weekStart),
			EndDate:   ptr.Ptr(weekEnd),
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to load week snapshot: %v", err)
			return fmt.Errorf("%w: failed to load week snapshot: %v", ErrInternal, err)
		}

		// 6.2. Слот не должен быть занят на этом корте
		if taken := slotTaken(snapshot, req.CourtID, req.Date, slot); taken != nil {
			uc.logger.Warn("CreateReservation: court=%d date=%s slot=%s already taken by reservation id=%d",
				req.CourtID, req.Date.Format(domain.DateFormat), slot.Start, taken.ID)
			return ErrDoubleBooked
		}

		// 6.3. Участники не должны играть в это же время на другом корте
		if memberBusy(snapshot, req.MemberCPF, req.Date, slot) {
			uc.logger.Warn("CreateReservation: member %s already plays at %s %s",
				req.MemberCPF, req.Date.Format(domain.DateFormat), slot.Start)
			return ErrDoubleBooked
		}
		if opponent != nil && memberBusy(snapshot, req.OpponentCPF, req.Date, slot) {
			uc.logger.Warn("CreateReservation: opponent %s already plays at %s %s",
				req.OpponentCPF, req.Date.Format(domain.DateFormat), slot.Start)
			return ErrDoubleBooked
		}

		// 6.4. Бронь "в последний момент": до начала слота меньше окна.
		// Такая бронь освобождена от гейта открытия и от лимитов, но
		// занятость (6.2-6.3) для неё уже проверена.
		startAt, err := slot.Start.At(req.Date)
		if err != nil {
			return fmt.Errorf("%w: invalid slot start: %v", ErrInternal, err)
		}
		lastMinute = startAt.After(now) && startAt.Sub(now) < uc.policy.LastMinuteWindow

		if !lastMinute {
			// 6.5. Гейт открытия недели. Учитель на закрытой неделе может
			// бронировать только аулы, админ — только интердикции.
			if err := uc.checkReleaseGate(req, holder, now); err != nil {
				return err
			}

			// 6.6. Лимиты владельца и соперника
			if req.GameType.CountsTowardQuota() {
				if err := uc.checkQuota(snapshot, req, req.MemberCPF, false); err != nil {
					return err
				}
				if opponent != nil {
					if err := uc.checkQuota(snapshot, req, req.OpponentCPF, true); err != nil {
						return err
					}
				}
			}
		}

		// 6.7. Создаем бронирование
		res := &domain.Reservation{
			CourtID:       req.CourtID,
			Date:          domain.DateOnly(req.Date),
			TimeSlotStart: slot.Start,
			TimeSlotEnd:   slot.End,
			MemberCPF:     req.MemberCPF,
			OpponentCPF:   req.OpponentCPF,
			GameType:      req.GameType,
			Status:        domain.StatusActive,
			BookedByCPF:   req.BookedByCPF,
			CreatedAt:     now,
		}
		result, err = uc.reservationRepo.Create(txCtx, res)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrDuplicateSlot) {
				uc.logger.Warn("CreateReservation: unique index rejected insert for court=%d date=%s slot=%s",
					req.CourtID, req.Date.Format(domain.DateFormat), slot.Start)
				return ErrDoubleBooked
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d (court=%d, date=%s, slot=%s, lastMinute=%t)",
		result.ID, result.CourtID, result.Date.Format(domain.DateFormat), result.TimeSlotStart, lastMinute)

	return &Response{
		ID:            result.ID,
		CourtID:       result.CourtID,
		CourtName:     domain.CourtName(result.CourtID),
		Date:          result.Date,
		TimeSlotStart: result.TimeSlotStart,
		TimeSlotEnd:   result.TimeSlotEnd,
		MemberCPF:     result.MemberCPF,
		OpponentCPF:   result.OpponentCPF,
		GameType:      string(result.GameType),
		Status:        string(result.Status),
		BookedByCPF:   result.BookedByCPF,
		QuotaExempt:   lastMinute,
		CreatedAt:     result.CreatedAt,
	}, nil
}

// checkReleaseGate проверяет, что дата уже открыта для обычной брони.
// Привилегированные роли обходят гейт только под свой тип игры.
func (uc *UseCase) checkReleaseGate(req *Request, holder *domain.Member, now time.Time) error {
	decision := domain.ReleaseFor(req.Date, domain.CategoryForCourt(req.CourtID), nil, now, uc.policy)
	if decision.Released {
		return nil
	}

	if req.GameType == domain.GameClass && holder.IsTeacher() {
		return nil
	}
	if req.GameType == domain.GameInterdiction && holder.IsAdmin() {
		return nil
	}

	if decision.BeyondNextWeek {
		uc.logger.Warn("CreateReservation: date %s is beyond next week for member %s",
			req.Date.Format(domain.DateFormat), req.MemberCPF)
		return ErrRoleNotPermitted
	}

	uc.logger.Warn("CreateReservation: date %s not released until %s",
		req.Date.Format(domain.DateFormat), decision.ReleaseAt.Format(time.DateTime))
	return fmt.Errorf("%w: %s", ErrNotReleased, decision.Reason)
}

// checkQuota сверяет лимиты участника с его играми на неделе брони.
// Для соперника нарушение любого лимита транслируется в ErrOpponentOverLimit,
// чтобы инициатор понял, чья квота исчерпана.
func (uc *UseCase) checkQuota(snapshot []*domain.Reservation, req *Request, memberCPF string, isOpponent bool) error {
	asOpponentErr := func(err error) error {
		if isOpponent {
			return fmt.Errorf("%w: %v", ErrOpponentOverLimit, err)
		}
		return err
	}

	weekend := domain.IsWeekend(req.Date)
	counts := domain.CountWeek(snapshot, memberCPF, req.Date, uc.policy)

	switch domain.CategoryForCourt(req.CourtID) {
	case domain.CategoryRegular:
		// Дневной лимит на теннис строже недельных
		if domain.CountSameDayRegular(snapshot, memberCPF, req.Date, uc.policy) >= uc.policy.MaxRegularPerDay {
			uc.logger.Warn("CreateReservation: member %s hit the daily regular-court limit on %s",
				memberCPF, req.Date.Format(domain.DateFormat))
			return asOpponentErr(ErrDailyLimit)
		}

		if req.GameType == domain.GamePyramid {
			if counts.PyramidTotal() >= uc.policy.MaxPyramidPerWeek {
				uc.logger.Warn("CreateReservation: member %s hit the weekly pyramid limit", memberCPF)
				return asOpponentErr(ErrWeeklyLimitLadder)
			}
			return nil
		}

		if weekend {
			if counts.NormalWeekend >= uc.policy.MaxNormalWeekendPerWeek {
				uc.logger.Warn("CreateReservation: member %s hit the weekend normal-game limit", memberCPF)
				return asOpponentErr(ErrWeeklyLimitNormal)
			}
		} else if counts.NormalWeekday >= uc.policy.MaxNormalWeekdayPerWeek {
			uc.logger.Warn("CreateReservation: member %s hit the weekday normal-game limit", memberCPF)
			return asOpponentErr(ErrWeeklyLimitNormal)
		}

	case domain.CategoryBeach:
		if weekend {
			if counts.BeachWeekend >= uc.policy.MaxBeachWeekendPerWeek {
				uc.logger.Warn("CreateReservation: member %s hit the weekend beach limit", memberCPF)
				return asOpponentErr(ErrWeeklyLimitBeach)
			}
		} else if counts.BeachWeekday >= uc.policy.MaxBeachWeekdayPerWeek {
			uc.logger.Warn("CreateReservation: member %s hit the weekday beach limit", memberCPF)
			return asOpponentErr(ErrWeeklyLimitBeach)
		}
	}

	return nil
}
