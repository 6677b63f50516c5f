package block_court

import "time"

// Request модель запроса на интердикцию корта на диапазон дат
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

// DayResult итог интердикции одного дня. Существующие брони не трогаются,
// поэтому Blocked+Skipped не обязаны покрывать всю сетку при ошибке дня.
type DayResult struct {
	Date time.Time
	// Blocked — сколько свободных слотов закрыто интердикцией
	Blocked int
	// Skipped — сколько слотов уже были заняты и остались нетронутыми
	Skipped int
	// Closed true для дней, когда клуб не работает (сетки слотов нет)
	Closed bool
	// Error текст ошибки дня; остальные дни обрабатываются независимо
	Error string
}
