package get_member_quota

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_member_quota: invalid input data")

	// ErrMemberNotFound возвращается, когда участник не найден в реестре
	ErrMemberNotFound = errors.New("get_member_quota: member not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_member_quota: internal error")
)
