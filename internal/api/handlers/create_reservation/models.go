package create_reservation

import (
	"time"

	"github.com/elitetenis/court-booking-service/internal/domain"
	createReservation "github.com/elitetenis/court-booking-service/internal/usecase/create_reservation"
	"github.com/elitetenis/court-booking-service/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CourtID       int    `json:"courtId"`
	Date          string `json:"date"`          // "2026-09-05"
	TimeSlotStart string `json:"timeSlotStart"` // "09:00"
	MemberCPF     string `json:"memberCpf,omitempty"`
	OpponentCPF   string `json:"opponentCpf,omitempty"`
	GameType      string `json:"gameType"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64  `json:"id"`
	CourtID       int    `json:"courtId"`
	CourtName     string `json:"courtName"`
	Date          string `json:"date"`
	TimeSlotStart string `json:"timeSlotStart"`
	TimeSlotEnd   string `json:"timeSlotEnd"`
	MemberCPF     string `json:"memberCpf"`
	OpponentCPF   string `json:"opponentCpf,omitempty"`
	GameType      string `json:"gameType"`
	Status        string `json:"status"`
	BookedByCPF   string `json:"bookedByCpf"`
	QuotaExempt   bool   `json:"quotaExempt"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// actorCPF приходит из заголовка аутентификации; если memberCpf в теле
// не указан, бронь оформляется на самого действующего участника.
func (r *CreateReservationRequest) ToUseCaseRequest(actorCPF string) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(r.TimeSlotStart)
	if err != nil {
		return nil, err
	}

	memberCPF := r.MemberCPF
	if memberCPF == "" {
		memberCPF = actorCPF
	}

	return &createReservation.Request{
		CourtID:       r.CourtID,
		Date:          date,
		TimeSlotStart: start,
		MemberCPF:     memberCPF,
		OpponentCPF:   r.OpponentCPF,
		GameType:      domain.GameType(r.GameType),
		BookedByCPF:   actorCPF,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		CourtID:       resp.CourtID,
		CourtName:     resp.CourtName,
		Date:          resp.Date.Format(domain.DateFormat),
		TimeSlotStart: resp.TimeSlotStart.String(),
		TimeSlotEnd:   resp.TimeSlotEnd.String(),
		MemberCPF:     resp.MemberCPF,
		OpponentCPF:   resp.OpponentCPF,
		GameType:      resp.GameType,
		Status:        resp.Status,
		BookedByCPF:   resp.BookedByCPF,
		QuotaExempt:   resp.QuotaExempt,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
