package block_court

import (
	"time"

	"github.com/elitetenis/court-booking-service/internal/domain"
	blockCourt "github.com/elitetenis/court-booking-service/internal/usecase/block_court"
)

// BlockCourtRequest HTTP request model
type BlockCourtRequest struct {
	StartDate string `json:"startDate"` // "2026-09-05"
	EndDate   string `json:"endDate"`   // "2026-09-07"
}

// BlockCourtResponse HTTP response model со сводкой по дням
type BlockCourtResponse struct {
	CourtID   int          `json:"courtId"`
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
	Days      []DaySummary `json:"days"`
}

// DaySummary итог одного дня диапазона
type DaySummary struct {
	Date    string `json:"date"`
	Blocked int    `json:"blocked"`
	Skipped int    `json:"skipped"`
	Closed  bool   `json:"closed,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BlockCourtRequest) ToUseCaseRequest(courtID int, adminCPF string) (*blockCourt.Request, error) {
	start, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}
	return &blockCourt.Request{
		CourtID:   courtID,
		StartDate: start,
		EndDate:   end,
		AdminCPF:  adminCPF,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *blockCourt.Response) *BlockCourtResponse {
	out := &BlockCourtResponse{
		CourtID:   resp.CourtID,
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Days:      make([]DaySummary, 0, len(resp.Days)),
	}
	for _, d := range resp.Days {
		out.Days = append(out.Days, DaySummary{
			Date:    d.Date.Format(domain.DateFormat),
			Blocked: d.Blocked,
			Skipped: d.Skipped,
			Closed:  d.Closed,
			Error:   d.Error,
		})
	}
	return out
}
