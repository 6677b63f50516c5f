package domain

import (
	"time"

	"github.com/elitetenis/court-booking-service/pkg/cpf"
	"github.com/elitetenis/court-booking-service/pkg/types"
)

// ReservationStatus represents the status of a reservation.
// Cancellation is a hard delete, so persisted rows are always active;
// the status column exists for admin-side bulk operations.
type ReservationStatus string

const (
	StatusActive           ReservationStatus = "active"
	StatusCancelledByAdmin ReservationStatus = "cancelled_by_admin"
)

// Reservation represents one slot on one court on one date
type Reservation struct {
	ID            int64
	CourtID       int
	Date          time.Time // date-only, time part ignored
	TimeSlotStart types.TimeString
	TimeSlotEnd   types.TimeString
	MemberCPF     string // holder
	OpponentCPF   string // empty for non-adversarial types
	GameType      GameType
	Status        ReservationStatus
	BookedByCPF   string // who performed the booking action
	CreatedAt     time.Time
}

// IsActive returns true if the reservation occupies its slot
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// IsInterdiction returns true for administrative closure placeholders
func (r *Reservation) IsInterdiction() bool {
	return r.GameType == GameInterdiction
}

// Involves returns true if the member holds the reservation or is the opponent
func (r *Reservation) Involves(memberCPF string) bool {
	return cpf.Equal(r.MemberCPF, memberCPF) || (r.OpponentCPF != "" && cpf.Equal(r.OpponentCPF, memberCPF))
}

// StartAt returns the full timestamp the reserved slot begins
func (r *Reservation) StartAt() (time.Time, error) {
	return r.TimeSlotStart.At(r.Date)
}

// IsLastMinute reports whether the reservation was booked less than window
// before its own start. Last-minute reservations still block the slot but are
// exempt from every quota count.
func (r *Reservation) IsLastMinute(window time.Duration) bool {
	start, err := r.StartAt()
	if err != nil {
		return false
	}
	return start.Sub(r.CreatedAt) < window
}

// ReservationFilter narrows repository reads over the active snapshot
type ReservationFilter struct {
	CourtID   *int
	MemberCPF *string    // holder or opponent
	StartDate *time.Time // inclusive, date-only
	EndDate   *time.Time // inclusive, date-only
	GameType  *GameType
}
