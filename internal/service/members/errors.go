package members

import "errors"

var (
	// ErrMemberNotFound возвращается, когда участник не найден
	ErrMemberNotFound = errors.New("member not found")

	// ErrDuplicateCPF возвращается при регистрации уже существующего CPF
	ErrDuplicateCPF = errors.New("CPF already registered")

	// ErrAccessDenied возвращается, когда у участника нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrMasterAdminImmutable возвращается при попытке заблокировать
	// мастер-админа или снять с него роль админа
	ErrMasterAdminImmutable = errors.New("master admin cannot be modified")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
