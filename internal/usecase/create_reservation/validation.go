package create_reservation

import (
	"fmt"
	"time"

	"github.com/elitetenis/court-booking-service/internal/domain"
	"github.com/elitetenis/court-booking-service/pkg/cpf"
)

// validateRequest валидирует структуру запроса до обращения к данным.
// Правила, зависящие от снапшота (лимиты, занятость), проверяются в Execute.
func validateRequest(req *Request) error {
	if !domain.KnownCourt(req.CourtID) {
		return fmt.Errorf("%w: unknown court id %d", ErrInvalidInput, req.CourtID)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Понедельник — выходной день клуба, сетки слотов на него нет
	if req.Date.Weekday() == time.Monday {
		return ErrClubClosed
	}

	if req.TimeSlotStart.IsZero() {
		return fmt.Errorf("%w: time slot start is required", ErrInvalidInput)
	}
	if _, ok := domain.FindSlot(req.Date, req.TimeSlotStart); !ok {
		return fmt.Errorf("%w: %s does not start any slot of this date's grid", ErrInvalidInput, req.TimeSlotStart)
	}

	if err := cpf.Validate(req.MemberCPF); err != nil {
		return fmt.Errorf("%w: member CPF: %v", ErrInvalidInput, err)
	}

	if !req.GameType.Valid() {
		return fmt.Errorf("%w: unknown game type %q", ErrInvalidInput, req.GameType)
	}

	category := domain.CategoryForCourt(req.CourtID)
	if !req.GameType.AllowedOnCategory(category) {
		return fmt.Errorf("%w: game type %q is not played on %s courts", ErrInvalidInput, req.GameType, category)
	}

	if req.GameType.IsAdversarial() {
		if req.OpponentCPF == "" {
			return fmt.Errorf("%w: %s games require an opponent", ErrInvalidInput, req.GameType)
		}
		if err := cpf.Validate(req.OpponentCPF); err != nil {
			return fmt.Errorf("%w: opponent CPF: %v", ErrInvalidInput, err)
		}
		if cpf.Equal(req.MemberCPF, req.OpponentCPF) {
			return fmt.Errorf("%w: member cannot play against themselves", ErrInvalidInput)
		}
	} else if req.OpponentCPF != "" {
		return fmt.Errorf("%w: %s games carry no opponent", ErrInvalidInput, req.GameType)
	}

	if req.BookedByCPF != "" {
		if err := cpf.Validate(req.BookedByCPF); err != nil {
			return fmt.Errorf("%w: booked-by CPF: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// slotTaken возвращает бронь, уже занимающую (корт, дата, слот), если есть
func slotTaken(snapshot []*domain.Reservation, courtID int, date time.Time, start domain.TimeSlotInfo) *domain.Reservation {
	for _, r := range snapshot {
		if r.IsActive() && r.CourtID == courtID && domain.SameDay(r.Date, date) && r.TimeSlotStart == start.Start {
			return r
		}
	}
	return nil
}

// memberBusy возвращает true, если участник уже занят в это же время
// на любом корте: человек не может играть на двух кортах одновременно
func memberBusy(snapshot []*domain.Reservation, memberCPF string, date time.Time, start domain.TimeSlotInfo) bool {
	for _, r := range snapshot {
		if !r.IsActive() || r.IsInterdiction() {
			continue
		}
		if domain.SameDay(r.Date, date) && r.TimeSlotStart == start.Start && r.Involves(memberCPF) {
			return true
		}
	}
	return false
}
