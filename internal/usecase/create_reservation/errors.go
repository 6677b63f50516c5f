package create_reservation

import "errors"

// Каждое правило отклонения — отдельная sentinel-ошибка: UI обязан показать
// точную причину (какой лимит, чей, когда откроется бронь), поэтому
// использовать одну общую ошибку нельзя.
var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrMemberNotFound возвращается, когда участник не найден в реестре
	ErrMemberNotFound = errors.New("create_reservation: member not found")

	// ErrOpponentNotFound возвращается, когда соперник не найден в реестре
	ErrOpponentNotFound = errors.New("create_reservation: opponent not found")

	// ErrMemberBlocked возвращается для заблокированного участника
	ErrMemberBlocked = errors.New("create_reservation: member is blocked")

	// ErrOpponentBlocked возвращается для заблокированного соперника
	ErrOpponentBlocked = errors.New("create_reservation: opponent is blocked")

	// ErrClubClosed возвращается для дат, когда клуб не работает (понедельник)
	ErrClubClosed = errors.New("create_reservation: club is closed on this date")

	// ErrDoubleBooked возвращается, когда слот занят или участник уже играет
	// в это время на другом корте. Сюда же транслируется нарушение
	// уникального индекса при гонке вставок.
	ErrDoubleBooked = errors.New("create_reservation: double booked")

	// ErrNotReleased возвращается, когда слоты дня ещё не открыты для брони
	ErrNotReleased = errors.New("create_reservation: slots not released yet")

	// ErrRoleNotPermitted возвращается, когда на недоступной неделе бронь
	// пытается сделать кто-то кроме учителя (аула) или админа (интердикция)
	ErrRoleNotPermitted = errors.New("create_reservation: role does not permit this booking")

	// ErrDailyLimit возвращается при превышении дневного лимита на теннис
	ErrDailyLimit = errors.New("create_reservation: daily limit reached")

	// ErrWeeklyLimitNormal возвращается при превышении недельного лимита
	// обычных игр
	ErrWeeklyLimitNormal = errors.New("create_reservation: weekly limit for normal games reached")

	// ErrWeeklyLimitLadder возвращается при превышении недельного лимита
	// игр пирамиды
	ErrWeeklyLimitLadder = errors.New("create_reservation: weekly limit for pyramid games reached")

	// ErrWeeklyLimitBeach возвращается при превышении недельного лимита
	// пляжных игр
	ErrWeeklyLimitBeach = errors.New("create_reservation: weekly limit for beach games reached")

	// ErrOpponentOverLimit возвращается, когда лимит исчерпан у соперника,
	// а не у инициатора брони
	ErrOpponentOverLimit = errors.New("create_reservation: opponent is over their limit")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
