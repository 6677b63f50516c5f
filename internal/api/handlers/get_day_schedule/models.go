package get_day_schedule

import (
	"time"

	"github.com/elitetenis/court-booking-service/internal/domain"
	getDaySchedule "github.com/elitetenis/court-booking-service/internal/usecase/get_day_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	CourtID        int            `json:"courtId"`
	CourtName      string         `json:"courtName"`
	Category       string         `json:"category"`
	Date           string         `json:"date"`
	Released       bool           `json:"released"`
	ReleaseAt      *string        `json:"releaseAt,omitempty"`
	ReleaseMessage string         `json:"releaseMessage,omitempty"`
	Slots          []SlotResponse `json:"slots"`
}

// SlotResponse один интервал сетки дня
type SlotResponse struct {
	Start         string `json:"start"`
	End           string `json:"end"`
	Status        string `json:"status"`
	ReservationID *int64 `json:"reservationId,omitempty"`
	MemberCPF     string `json:"memberCpf,omitempty"`
	OpponentCPF   string `json:"opponentCpf,omitempty"`
	GameType      string `json:"gameType,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		CourtID:        resp.CourtID,
		CourtName:      resp.CourtName,
		Category:       resp.Category,
		Date:           resp.Date.Format(domain.DateFormat),
		Released:       resp.Released,
		ReleaseMessage: resp.ReleaseMessage,
		Slots:          make([]SlotResponse, 0, len(resp.Slots)),
	}
	if resp.ReleaseAt != nil {
		formatted := resp.ReleaseAt.Format(time.RFC3339)
		out.ReleaseAt = &formatted
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Start:         s.Start.String(),
			End:           s.End.String(),
			Status:        s.Status,
			ReservationID: s.ReservationID,
			MemberCPF:     s.MemberCPF,
			OpponentCPF:   s.OpponentCPF,
			GameType:      s.GameType,
		})
	}
	return out
}
