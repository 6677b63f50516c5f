package unblock_court

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("unblock_court: invalid input data")

	// ErrAdminNotFound возвращается, когда действующий админ не найден
	ErrAdminNotFound = errors.New("unblock_court: admin not found")

	// ErrRoleNotPermitted возвращается, когда действующий участник не админ
	ErrRoleNotPermitted = errors.New("unblock_court: admin role required")

	// ErrRangeTooLong возвращается при диапазоне дат длиннее допустимого
	ErrRangeTooLong = errors.New("unblock_court: date range too long")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("unblock_court: internal error")
)
