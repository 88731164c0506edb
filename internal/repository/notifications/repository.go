package notifications

import (
	"context"
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

// Repository — журнал попыток доставки уведомлений HR-чатам.
type Repository struct {
	pool PgxPoolIface
}

func NewRepository(pool PgxPoolIface) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Insert(ctx context.Context, rec dto.NotificationRecord) error {
	query := `
insert into hr_notifications (chat_id, employee_id, kind, delivered, error, sent_at)
values (@chat_id, @employee_id, @kind, @delivered, nullif(@error, ''), now());
`
	args := pgx.NamedArgs{
		"chat_id":     rec.ChatID,
		"employee_id": rec.EmployeeID,
		"kind":        rec.Kind,
		"delivered":   rec.Delivered,
		"error":       rec.Error,
	}

	if _, err := r.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]dto.NotificationRecord, error) {
	query := `
select id, chat_id, employee_id, kind, delivered, coalesce(error, ''), to_char(sent_at, 'YYYY-MM-DD"T"HH24:MI:SSOF')
from hr_notifications
order by id desc
limit $1;
`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var out []dto.NotificationRecord
	for rows.Next() {
		var rec dto.NotificationRecord

		err = rows.Scan(&rec.ID, &rec.ChatID, &rec.EmployeeID, &rec.Kind, &rec.Delivered, &rec.Error, &rec.SentAt)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return out, nil
}
