package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/elitetenis/court-booking-service/internal/domain"
	memberRepo "github.com/elitetenis/court-booking-service/internal/infra/storage/member"
	reservationRepo "github.com/elitetenis/court-booking-service/internal/infra/storage/reservation"
	"github.com/elitetenis/court-booking-service/internal/service/reservations/models"
	"github.com/elitetenis/court-booking-service/pkg/cpf"
	"github.com/elitetenis/court-booking-service/pkg/ptr"
)

// Service сервис для работы с существующими бронированиями:
// просмотр, история, отмена и уведомления об отмене
type Service struct {
	reservationRepo  ReservationRepository
	memberRepo       MemberRepository
	notificationRepo NotificationRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	memberRepo MemberRepository,
	notificationRepo NotificationRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo:  reservationRepo,
		memberRepo:       memberRepo,
		notificationRepo: notificationRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// WithTimeProvider подменяет источник времени (используется в тестах)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование по ID
// Доступно участникам брони (владелец, соперник, бронировавший) и админам
func (s *Service) GetByID(ctx context.Context, id int64, actorCPF string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for actor=%s", id, actorCPF)

	res, actor, err := s.fetchWithActor(ctx, id, actorCPF)
	if err != nil {
		return nil, err
	}

	if !s.mayAccess(res, actor) {
		s.logger.Warn("GetByID: access denied for actor=%s to reservation id=%d", actorCPF, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(res), nil
}

// GetMemberReservations получает историю бронирований участника
// (как владельца, так и соперника). Чужую историю видят только админы.
func (s *Service) GetMemberReservations(ctx context.Context, req *models.GetMemberReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetMemberReservations: member=%s, actor=%s", req.MemberCPF, req.ActorCPF)

	if err := cpf.Validate(req.MemberCPF); err != nil {
		return nil, fmt.Errorf("%w: member CPF: %v", ErrInvalidInput, err)
	}

	if !cpf.Equal(req.MemberCPF, req.ActorCPF) {
		actor, err := s.getMember(ctx, req.ActorCPF)
		if err != nil {
			return nil, err
		}
		if !actor.IsAdmin() {
			s.logger.Warn("GetMemberReservations: actor=%s may not read history of %s", req.ActorCPF, req.MemberCPF)
			return nil, ErrAccessDenied
		}
	}

	list, err := s.reservationRepo.GetByMember(ctx, req.MemberCPF, req.Limit)
	if err != nil {
		s.logger.Error("GetMemberReservations: repository error for member=%s: %v", req.MemberCPF, err)
		return nil, fmt.Errorf("%w: GetMemberReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMemberReservations: fetched %d reservation(s) for member=%s", len(list), req.MemberCPF)
	return models.FromDomainReservationList(list), nil
}

// GetCourtDay получает все брони корта на дату (админский обзор)
func (s *Service) GetCourtDay(ctx context.Context, courtID int, date time.Time, actorCPF string) (*models.ReservationListResponse, error) {
	s.logger.Info("GetCourtDay: court=%d, date=%s, actor=%s", courtID, date.Format(domain.DateFormat), actorCPF)

	if !domain.KnownCourt(courtID) {
		return nil, fmt.Errorf("%w: unknown court id %d", ErrInvalidInput, courtID)
	}

	actor, err := s.getMember(ctx, actorCPF)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		s.logger.Warn("GetCourtDay: actor=%s does not hold admin role", actorCPF)
		return nil, ErrAccessDenied
	}

	day := domain.DateOnly(date)
	list, err := s.reservationRepo.GetActiveWithFilter(ctx, domain.ReservationFilter{
		CourtID:   ptr.Ptr(courtID),
		StartDate: ptr.Ptr(day),
		EndDate:   ptr.Ptr(day),
	})
	if err != nil {
		s.logger.Error("GetCourtDay: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCourtDay - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(list), nil
}

// Cancel отменяет бронирование. Отмена — жёсткое удаление строки;
// слот сразу возвращается в свободные. Остальные вовлечённые участники
// получают уведомление об отмене.
func (s *Service) Cancel(ctx context.Context, id int64, actorCPF string) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by actor=%s", id, actorCPF)

	res, actor, err := s.fetchWithActor(ctx, id, actorCPF)
	if err != nil {
		return err
	}

	if !s.mayCancel(res, actor) {
		s.logger.Warn("Cancel: access denied for actor=%s to reservation id=%d", actorCPF, id)
		return ErrAccessDenied
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: failed to delete reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.notifyCancellation(ctx, res, actor)

	s.logger.Info("Cancel: reservation id=%d cancelled", id)
	return nil
}

// GetNotifications возвращает уведомления участника, сначала новые
func (s *Service) GetNotifications(ctx context.Context, recipientCPF string) (*models.NotificationListResponse, error) {
	if err := cpf.Validate(recipientCPF); err != nil {
		return nil, fmt.Errorf("%w: recipient CPF: %v", ErrInvalidInput, err)
	}

	list, err := s.notificationRepo.GetByRecipient(ctx, recipientCPF)
	if err != nil {
		s.logger.Error("GetNotifications: repository error for recipient=%s: %v", recipientCPF, err)
		return nil, fmt.Errorf("%w: GetNotifications - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNotificationList(list), nil
}

// MarkNotificationRead помечает уведомление прочитанным
func (s *Service) MarkNotificationRead(ctx context.Context, id string) error {
	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		s.logger.Error("MarkNotificationRead: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: MarkNotificationRead - repository error: %v", ErrInternal, err)
	}
	return nil
}

// fetchWithActor загружает бронь и действующего участника
func (s *Service) fetchWithActor(ctx context.Context, id int64, actorCPF string) (*domain.Reservation, *domain.Member, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("reservation id=%d not found", id)
			return nil, nil, ErrReservationNotFound
		}
		s.logger.Error("failed to get reservation id=%d: %v", id, err)
		return nil, nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	actor, err := s.getMember(ctx, actorCPF)
	if err != nil {
		return nil, nil, err
	}

	return res, actor, nil
}

func (s *Service) getMember(ctx context.Context, memberCPF string) (*domain.Member, error) {
	m, err := s.memberRepo.GetByCPF(ctx, memberCPF)
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			s.logger.Warn("member %s not found", memberCPF)
			return nil, ErrMemberNotFound
		}
		s.logger.Error("failed to get member %s: %v", memberCPF, err)
		return nil, fmt.Errorf("%w: failed to get member: %v", ErrInternal, err)
	}
	return m, nil
}

// mayAccess: участники брони и админы
func (s *Service) mayAccess(res *domain.Reservation, actor *domain.Member) bool {
	return res.Involves(actor.CPF) || cpf.Equal(res.BookedByCPF, actor.CPF) || actor.IsAdmin()
}

// mayCancel: владелец, бронировавший или админ. Соперник не отменяет
// чужую бронь, даже если играет в ней.
func (s *Service) mayCancel(res *domain.Reservation, actor *domain.Member) bool {
	return cpf.Equal(res.MemberCPF, actor.CPF) || cpf.Equal(res.BookedByCPF, actor.CPF) || actor.IsAdmin()
}

// notifyCancellation пишет уведомление каждому вовлечённому участнику,
// кроме самого отменившего. Сбой записи уведомления не откатывает отмену.
func (s *Service) notifyCancellation(ctx context.Context, res *domain.Reservation, actor *domain.Member) {
	message := fmt.Sprintf("Sua reserva na %s em %s às %s foi cancelada por %s.",
		domain.CourtName(res.CourtID), res.Date.Format("02/01/2006"), res.TimeSlotStart, actor.DisplayName())

	recipients := []string{res.MemberCPF}
	if res.OpponentCPF != "" {
		recipients = append(recipients, res.OpponentCPF)
	}

	now := s.timeProvider.Now()
	for _, recipient := range recipients {
		if cpf.Equal(recipient, actor.CPF) {
			continue
		}
		n := &domain.Notification{
			ID:           uuid.NewString(),
			RecipientCPF: recipient,
			Message:      message,
			CreatedAt:    now,
		}
		if err := s.notificationRepo.Create(ctx, n); err != nil {
			s.logger.Error("notifyCancellation: failed to notify %s about reservation id=%d: %v",
				recipient, res.ID, err)
		}
	}
}
