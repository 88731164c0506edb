package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Artexxx/HR-Support-Bot/internal/dto"
)

type PgxPoolIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repository struct {
	pool PgxPoolIface
}

func NewRepository(pool PgxPoolIface) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetByTelegramID(ctx context.Context, telegramID int64) (*dto.User, error) {
	query := `
select telegram_id, coalesce(username, ''), fullname, birth_date, hire_date, coalesce(department, ''), role, tpoints, is_active
from users
where telegram_id = $1;
`
	row := r.pool.QueryRow(ctx, query, telegramID)

	var out dto.User
	err := row.Scan(
		&out.TelegramID,
		&out.Username,
		&out.Fullname,
		&out.BirthDate,
		&out.HireDate,
		&out.Department,
		&out.Role,
		&out.TPoints,
		&out.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dto.ErrNotFound
		}

		return nil, fmt.Errorf("row.Scan: %w", err)
	}

	return &out, nil
}

// GetOrCreate создаёт пользователя либо обновляет username/ФИО существующего.
func (r *Repository) GetOrCreate(ctx context.Context, telegramID int64, username, fullname string) (*dto.User, error) {
	query := `
insert into users (telegram_id, username, fullname, role, tpoints, is_active)
values (@telegram_id, nullif(@username, ''), @fullname, 'user', 0, true)
on conflict (telegram_id) do update set
  username  = excluded.username,
  fullname  = excluded.fullname,
  is_active = true
returning telegram_id, coalesce(username, ''), fullname, birth_date, hire_date, coalesce(department, ''), role, tpoints, is_active;
`
	args := pgx.NamedArgs{
		"telegram_id": telegramID,
		"username":    username,
		"fullname":    fullname,
	}

	row := r.pool.QueryRow(ctx, query, args)

	var out dto.User
	err := row.Scan(
		&out.TelegramID,
		&out.Username,
		&out.Fullname,
		&out.BirthDate,
		&out.HireDate,
		&out.Department,
		&out.Role,
		&out.TPoints,
		&out.IsActive,
	)
	if err != nil {
		// Конфликт по telegram_id гасится upsert-ом, но username тоже unique:
		// чужой занятый username даёт 23505.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, dto.ErrAlreadyExists
		}

		return nil, fmt.Errorf("row.Scan: %w", err)
	}

	return &out, nil
}

// UpdateOnboardingData дописывает поля, собранные в диалоге онбординга.
func (r *Repository) UpdateOnboardingData(ctx context.Context, telegramID int64, upd dto.UserUpdate) error {
	query := `
update users set
  birth_date = @birth_date,
  hire_date  = @hire_date,
  department = nullif(@department, '')
where telegram_id = @telegram_id;
`
	args := pgx.NamedArgs{
		"telegram_id": telegramID,
		"birth_date":  upd.BirthDate,
		"hire_date":   upd.HireDate,
		"department":  upd.Department,
	}

	tag, err := r.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dto.ErrNotFound
	}

	return nil
}

func (r *Repository) ListAll(ctx context.Context) ([]dto.User, error) {
	query := `
select telegram_id, coalesce(username, ''), fullname, birth_date, hire_date, coalesce(department, ''), role, tpoints, is_active
from users
order by fullname, telegram_id;
`
	return r.list(ctx, query)
}

// ListHRAndAdmins — активные получатели HR-уведомлений.
func (r *Repository) ListHRAndAdmins(ctx context.Context) ([]dto.User, error) {
	query := `
select telegram_id, coalesce(username, ''), fullname, birth_date, hire_date, coalesce(department, ''), role, tpoints, is_active
from users
where role in ('hr', 'admin') and is_active
order by telegram_id;
`
	return r.list(ctx, query)
}

func (r *Repository) SetRole(ctx context.Context, telegramID int64, role string) error {
	query := `update users set role = $2 where telegram_id = $1;`

	tag, err := r.pool.Exec(ctx, query, telegramID, role)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dto.ErrNotFound
	}

	return nil
}

// SetActive включает либо отключает сотрудника; отключённые выпадают
// из рассылки HR-уведомлений.
func (r *Repository) SetActive(ctx context.Context, telegramID int64, active bool) error {
	query := `update users set is_active = $2 where telegram_id = $1;`

	tag, err := r.pool.Exec(ctx, query, telegramID, active)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dto.ErrNotFound
	}

	return nil
}

func (r *Repository) AddTPoints(ctx context.Context, telegramID int64, points int) error {
	query := `update users set tpoints = tpoints + $2 where telegram_id = $1;`

	tag, err := r.pool.Exec(ctx, query, telegramID, points)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dto.ErrNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, query string) ([]dto.User, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var out []dto.User
	for rows.Next() {
		var user dto.User

		err = rows.Scan(
			&user.TelegramID,
			&user.Username,
			&user.Fullname,
			&user.BirthDate,
			&user.HireDate,
			&user.Department,
			&user.Role,
			&user.TPoints,
			&user.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		out = append(out, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return out, nil
}
