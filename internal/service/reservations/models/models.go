package models

import (
	"time"

	"github.com/elitetenis/court-booking-service/internal/domain"
	"github.com/elitetenis/court-booking-service/pkg/types"
)

// Request модели

// GetMemberReservationsRequest запрос истории бронирований участника
type GetMemberReservationsRequest struct {
	MemberCPF string `json:"memberCpf"`
	ActorCPF  string `json:"-"`
	Limit     uint64 `json:"limit,omitempty"`
}

// Response модели

// ReservationResponse одно бронирование в ответе API
type ReservationResponse struct {
	ID            int64            `json:"id"`
	CourtID       int              `json:"courtId"`
	CourtName     string           `json:"courtName"`
	Date          string           `json:"date"`
	TimeSlotStart types.TimeString `json:"timeSlotStart"`
	TimeSlotEnd   types.TimeString `json:"timeSlotEnd"`
	MemberCPF     string           `json:"memberCpf"`
	OpponentCPF   string           `json:"opponentCpf,omitempty"`
	GameType      string           `json:"gameType"`
	Status        string           `json:"status"`
	BookedByCPF   string           `json:"bookedByCpf"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
}

// NotificationResponse уведомление участника
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse список уведомлений
type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
}

// FromDomainReservation конвертирует domain модель в ответ API
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:            r.ID,
		CourtID:       r.CourtID,
		CourtName:     domain.CourtName(r.CourtID),
		Date:          r.Date.Format(domain.DateFormat),
		TimeSlotStart: r.TimeSlotStart,
		TimeSlotEnd:   r.TimeSlotEnd,
		MemberCPF:     r.MemberCPF,
		OpponentCPF:   r.OpponentCPF,
		GameType:      string(r.GameType),
		Status:        string(r.Status),
		BookedByCPF:   r.BookedByCPF,
		CreatedAt:     r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	out := make([]*ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: out}
}

// FromDomainNotificationList конвертирует список уведомлений
func FromDomainNotificationList(list []*domain.Notification) *NotificationListResponse {
	out := make([]*NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, &NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return &NotificationListResponse{Notifications: out}
}
