package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Artexxx/HR-Support-Bot/library/yamlenv"
)

type PostgresConfig struct {
	Conn *yamlenv.Env[string] `yaml:"conn"`
}

type PG struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewPG(ctx context.Context, conn string, log zerolog.Logger) (*PG, error) {
	cfg, err := pgxpool.ParseConfig(conn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return &PG{
		pool: pool,
		log:  log.With().Str("component", "pg").Logger(),
	}, nil
}

func (p *PG) Pool() *pgxpool.Pool {
	return p.pool
}

func (p *PG) Close() {
	if p == nil || p.pool == nil {
		return
	}

	p.pool.Close()
	p.log.Info().Msg("postgres pool closed")
}
