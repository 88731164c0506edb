package users

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artexxx/HR-Support-Bot/internal/dto"
)

type fakeRow struct {
	err error
}

func (r fakeRow) Scan(_ ...any) error { return r.err }

type fakePool struct {
	scanErr error
	execTag pgconn.CommandTag
	execErr error

	lastSQL  string
	lastArgs []any
}

func (f *fakePool) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL, f.lastArgs = sql, args
	return fakeRow{err: f.scanErr}
}

func (f *fakePool) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, nil
}

func (f *fakePool) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	return f.execTag, f.execErr
}

func (f *fakePool) Begin(_ context.Context) (pgx.Tx, error) { return nil, nil }

func TestGetByTelegramIDNotFound(t *testing.T) {
	repo := NewRepository(&fakePool{scanErr: pgx.ErrNoRows})

	user, err := repo.GetByTelegramID(context.Background(), 42)

	require.ErrorIs(t, err, dto.ErrNotFound)
	assert.Nil(t, user)
}

func TestGetOrCreateUsernameConflict(t *testing.T) {
	repo := NewRepository(&fakePool{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}})

	user, err := repo.GetOrCreate(context.Background(), 42, "ivanov_ii", "Иванов Иван")

	require.ErrorIs(t, err, dto.ErrAlreadyExists)
	assert.Nil(t, user)
}

func TestSetActive(t *testing.T) {
	t.Run("updates row", func(t *testing.T) {
		pool := &fakePool{execTag: pgconn.NewCommandTag("UPDATE 1")}
		repo := NewRepository(pool)

		require.NoError(t, repo.SetActive(context.Background(), 42, false))
		assert.Contains(t, pool.lastSQL, "set is_active")
		require.Len(t, pool.lastArgs, 2)
		assert.Equal(t, int64(42), pool.lastArgs[0])
		assert.Equal(t, false, pool.lastArgs[1])
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := NewRepository(&fakePool{execTag: pgconn.NewCommandTag("UPDATE 0")})

		err := repo.SetActive(context.Background(), 42, true)

		require.ErrorIs(t, err, dto.ErrNotFound)
	})
}

func TestSetRoleUnknownUser(t *testing.T) {
	repo := NewRepository(&fakePool{execTag: pgconn.NewCommandTag("UPDATE 0")})

	err := repo.SetRole(context.Background(), 42, dto.RoleHR)

	require.ErrorIs(t, err, dto.ErrNotFound)
}

func TestAddTPoints(t *testing.T) {
	pool := &fakePool{execTag: pgconn.NewCommandTag("UPDATE 1")}
	repo := NewRepository(pool)

	require.NoError(t, repo.AddTPoints(context.Background(), 42, 100))
	assert.Contains(t, pool.lastSQL, "tpoints = tpoints +")
	require.Len(t, pool.lastArgs, 2)
	assert.Equal(t, 100, pool.lastArgs[1])
}
