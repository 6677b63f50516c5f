package unblock_court

import "time"

// Request модель запроса на снятие интердикции с корта
type Request struct {
	CourtID   int       // ID корта
	StartDate time.Time // Первый день диапазона (включительно)
	EndDate   time.Time // Последний день диапазона (включительно)
	AdminCPF  string    // CPF действующего админа
}

// Response модель ответа со сводкой по дням
type Response struct {
	CourtID   int
	StartDate time.Time
	EndDate   time.Time
	Days      []DayResult
}

// DayResult итог одного дня. Removed=0 для дня без интердикций:
// операция идемпотентна и это не ошибка.
type DayResult struct {
	Date    time.Time
	Removed int64
	Error   string
}
