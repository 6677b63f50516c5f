package unblock_court

import (
	"time"

	"github.com/elitetenis/court-booking-service/internal/domain"
	unblockCourt "github.com/elitetenis/court-booking-service/internal/usecase/unblock_court"
)

// UnblockCourtRequest HTTP request model. EndDate опционален:
// без него снимается интердикция одного дня.
type UnblockCourtRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
}

// UnblockCourtResponse HTTP response model со сводкой по дням
type UnblockCourtResponse struct {
	CourtID   int          `json:"courtId"`
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
	Days      []DaySummary `json:"days"`
}

// DaySummary итог одного дня диапазона
type DaySummary struct {
	Date    string `json:"date"`
	Removed int64  `json:"removed"`
	Error   string `json:"error,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UnblockCourtRequest) ToUseCaseRequest(courtID int, adminCPF string) (*unblockCourt.Request, error) {
	start, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	end := start
	if r.EndDate != "" {
		end, err = time.Parse(domain.DateFormat, r.EndDate)
		if err != nil {
			return nil, err
		}
	}

	return &unblockCourt.Request{
		CourtID:   courtID,
		StartDate: start,
		EndDate:   end,
		AdminCPF:  adminCPF,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *unblockCourt.Response) *UnblockCourtResponse {
	out := &UnblockCourtResponse{
		CourtID:   resp.CourtID,
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Days:      make([]DaySummary, 0, len(resp.Days)),
	}
	for _, d := range resp.Days {
		out.Days = append(out.Days, DaySummary{
			Date:    d.Date.Format(domain.DateFormat),
			Removed: d.Removed,
			Error:   d.Error,
		})
	}
	return out
}
