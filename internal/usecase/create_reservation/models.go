package create_reservation

import (
	"time"

	"github.com/elitetenis/court-booking-service/internal/domain"
	"github.com/elitetenis/court-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CourtID       int              // ID корта (1-2 теннис, 3-4 песок)
	Date          time.Time        // Дата бронирования (без времени)
	TimeSlotStart types.TimeString // Начало слота из сетки дня
	MemberCPF     string           // CPF владельца брони
	OpponentCPF   string           // CPF соперника (пусто для безадверсарных типов)
	GameType      domain.GameType  // Классификация игры
	BookedByCPF   string           // CPF действующего пользователя (админ может бронировать за другого)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	CourtID       int
	CourtName     string
	Date          time.Time
	TimeSlotStart types.TimeString
	TimeSlotEnd   types.TimeString
	MemberCPF     string
	OpponentCPF   string
	GameType      string
	Status        string
	BookedByCPF   string
	// QuotaExempt true для брони "в последний момент": она занимает слот,
	// но не расходует лимиты
	QuotaExempt bool
	CreatedAt   time.Time
}
