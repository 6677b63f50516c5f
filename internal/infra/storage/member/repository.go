package member

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/elitetenis/court-booking-service/internal/domain"
	"github.com/elitetenis/court-booking-service/pkg/cpf"
	"github.com/elitetenis/court-booking-service/pkg/dbmetrics"
	"github.com/elitetenis/court-booking-service/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

var memberColumns = []string{
	"cpf",
	"first_name",
	"last_name",
	"phone",
	"roles",
	"is_blocked",
}

// Repository репозиторий участников клуба.
// CPF хранится нормализованным (только цифры).
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория участников
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует нового участника
func (r *Repository) Create(ctx context.Context, m *domain.Member) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	roles := make([]string, len(m.Roles))
	for i, role := range m.Roles {
		roles[i] = string(role)
	}

	query, args, err := psqlbuilder.Insert("members").
		Columns(memberColumns...).
		Values(
			cpf.Normalize(m.CPF),
			m.FirstName,
			m.LastName,
			m.Phone,
			pq.Array(roles),
			m.IsBlocked,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return ErrDuplicateCPF
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByCPF получает участника по CPF (с маской или без)
func (r *Repository) GetByCPF(ctx context.Context, memberCPF string) (*domain.Member, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(memberColumns...).
		From("members").
		Where(squirrel.Eq{"cpf": cpf.Normalize(memberCPF)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCPF - build select query: %v", ErrBuildQuery, err)
	}

	m, err := scanMember(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCPF - scan member: %v", ErrScanRow, err)
	}

	return m, nil
}

// List возвращает всех участников в алфавитном порядке
func (r *Repository) List(ctx context.Context) ([]*domain.Member, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(memberColumns...).
		From("members").
		OrderBy("first_name ASC, last_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}

// UpdateRoles заменяет набор ролей участника
func (r *Repository) UpdateRoles(ctx context.Context, memberCPF string, roles []domain.Role) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	roleStrings := make([]string, len(roles))
	for i, role := range roles {
		roleStrings[i] = string(role)
	}

	query, args, err := psqlbuilder.Update("members").
		Set("roles", pq.Array(roleStrings)).
		Where(squirrel.Eq{"cpf": cpf.Normalize(memberCPF)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRoles - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateRoles", query, args)
}

// SetBlocked блокирует или разблокирует участника
func (r *Repository) SetBlocked(ctx context.Context, memberCPF string, blocked bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("members").
		Set("is_blocked", blocked).
		Where(squirrel.Eq{"cpf": cpf.Normalize(memberCPF)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetBlocked - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "SetBlocked", query, args)
}

// UpdateName обновляет имя участника. Используется и для анонимизации
// при мягком удалении профиля.
func (r *Repository) UpdateName(ctx context.Context, memberCPF, firstName, lastName string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("members").
		Set("first_name", firstName).
		Set("last_name", lastName).
		Where(squirrel.Eq{"cpf": cpf.Normalize(memberCPF)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateName - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateName", query, args)
}

func (r *Repository) execExpectingRow(ctx context.Context, executor dbmetrics.DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMember(row scanner) (*domain.Member, error) {
	var m domain.Member
	var roles pq.StringArray
	var phone sql.NullString

	err := row.Scan(
		&m.CPF,
		&m.FirstName,
		&m.LastName,
		&phone,
		&roles,
		&m.IsBlocked,
	)
	if err != nil {
		return nil, err
	}

	if phone.Valid {
		m.Phone = &phone.String
	}
	m.Roles = make([]domain.Role, len(roles))
	for i, role := range roles {
		m.Roles[i] = domain.Role(role)
	}

	return &m, nil
}
