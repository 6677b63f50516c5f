package get_day_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_schedule: invalid input data")

	// ErrClubClosed возвращается для дат, когда клуб не работает (понедельник)
	ErrClubClosed = errors.New("get_day_schedule: club is closed on this date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_schedule: internal error")
)
