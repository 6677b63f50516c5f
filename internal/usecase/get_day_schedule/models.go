package get_day_schedule

import (
	"time"

	"github.com/elitetenis/court-booking-service/pkg/types"
)

// Статусы слота в расписании дня
const (
	SlotFree    = "free"    // слот свободен и открыт для брони
	SlotBooked  = "booked"  // слот занят игрой или аулой
	SlotBlocked = "blocked" // слот закрыт интердикцией
)

// Request модель запроса расписания корта на день
type Request struct {
	CourtID   int       // ID корта
	Date      time.Time // Дата (без времени)
	ViewerCPF string    // CPF смотрящего (пусто для анонимного просмотра)
}

// Response модель ответа с расписанием дня
type Response struct {
	CourtID   int
	CourtName string
	Category  string
	Date      time.Time
	// Released false означает, что обычные участники пока видят
	// только время открытия, но не могут бронировать
	Released       bool
	ReleaseAt      *time.Time
	ReleaseMessage string
	Slots          []Slot
}

// Slot модель одного интервала сетки дня
type Slot struct {
	Start  types.TimeString
	End    types.TimeString
	Status string
	// Заполняются только для занятых слотов
	ReservationID *int64
	MemberCPF     string
	OpponentCPF   string
	GameType      string
}
