package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/elitetenis/court-booking-service/internal/domain"
	"github.com/elitetenis/court-booking-service/pkg/dbmetrics"
	"github.com/elitetenis/court-booking-service/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки Postgres для нарушения уникального индекса
const pgUniqueViolation = "23505"

var reservationColumns = []string{
	"id",
	"court_id",
	"date",
	"time_slot_start",
	"time_slot_end",
	"member_cpf",
	"opponent_cpf",
	"game_type",
	"status",
	"booked_by_cpf",
	"created_at",
}

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет новое бронирование.
// На (court_id, date, time_slot_start) при status='active' в БД висит
// уникальный индекс; его нарушение возвращается как ErrDuplicateSlot, чтобы
// usecase мог показать пользователю причину "слот занят", а не общую ошибку.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"court_id",
			"date",
			"time_slot_start",
			"time_slot_end",
			"member_cpf",
			"opponent_cpf",
			"game_type",
			"status",
			"booked_by_cpf",
			"created_at",
		).
		Values(
			res.CourtID,
			domain.DateOnly(res.Date),
			res.TimeSlotStart,
			res.TimeSlotEnd,
			res.MemberCPF,
			res.OpponentCPF,
			res.GameType,
			res.Status,
			res.BookedByCPF,
			res.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetActiveWithFilter получает активные бронирования с гибкой фильтрацией.
// Внутри транзакции запросы по одной дате блокируют строки (FOR UPDATE) —
// это используется usecase'ами создания брони и интердикции.
func (r *Repository) GetActiveWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"status": domain.StatusActive})

	if filter.CourtID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"court_id": *filter.CourtID})
	}
	if filter.MemberCPF != nil {
		// Участие: владелец или соперник
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"member_cpf": *filter.MemberCPF},
			squirrel.Eq{"opponent_cpf": *filter.MemberCPF},
		})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": domain.DateOnly(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": domain.DateOnly(*filter.EndDate)})
	}
	if filter.GameType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"game_type": *filter.GameType})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if singleDate {
		selectBuilder = selectBuilder.OrderBy("court_id ASC, time_slot_start ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("date DESC, time_slot_start DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetByMember получает историю бронирований участника (как владельца
// или соперника), сначала новые
func (r *Repository) GetByMember(ctx context.Context, memberCPF string, limit uint64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Or{
			squirrel.Eq{"member_cpf": memberCPF},
			squirrel.Eq{"opponent_cpf": memberCPF},
		}).
		OrderBy("date DESC, time_slot_start DESC")

	if limit > 0 {
		selectBuilder = selectBuilder.Limit(limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMember - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMember - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Delete удаляет бронирование. Отмена в клубе — это физическое удаление:
// история соперника хранится только в уведомлениях.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// DeleteInterdictions удаляет все интердикции на (корт, дата).
// Возвращает количество удалённых строк; ноль строк — не ошибка,
// повторный вызов безопасен.
func (r *Repository) DeleteInterdictions(ctx context.Context, courtID int, date time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{
			"court_id":  courtID,
			"date":      domain.DateOnly(date),
			"game_type": domain.GameInterdiction,
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteInterdictions - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteInterdictions - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteInterdictions - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку в бронирование
func scanReservation(row scanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.CourtID,
		&res.Date,
		&res.TimeSlotStart,
		&res.TimeSlotEnd,
		&res.MemberCPF,
		&res.OpponentCPF,
		&res.GameType,
		&res.Status,
		&res.BookedByCPF,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
