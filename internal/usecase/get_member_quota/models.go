package get_member_quota

import "time"

// Request модель запроса квоты участника
type Request struct {
	MemberCPF string    // CPF участника
	Date      time.Time // Любая дата интересующей недели; пустая = текущая
}

// Response модель ответа с расходом квот за неделю
type Response struct {
	MemberCPF string
	WeekStart time.Time
	WeekEnd   time.Time
	// Дневной лимит не включается: он зависит от конкретной даты
	// и проверяется при создании брони
	Buckets []Bucket
}

// Bucket один лимит с текущим расходом
type Bucket struct {
	Name      string // normal_weekday, normal_weekend, pyramid, beach_weekday, beach_weekend
	Used      int
	Limit     int
	Remaining int
}
