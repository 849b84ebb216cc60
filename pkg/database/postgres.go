package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	Pool   *pgxpool.Pool
	Config *DatabaseConfig
}

type DatabaseConfig struct {
	URI            string
	MaxPoolSize    int
	MinPoolSize    int
	ConnectTimeout time.Duration
}

func NewPostgres(config *DatabaseConfig) (*Postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(config.URI)
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = int32(config.MaxPoolSize)
	poolConfig.MinConns = int32(config.MinPoolSize)
	poolConfig.ConnConfig.ConnectTimeout = config.ConnectTimeout

	ctx, cancel := context.WithTimeout(context.Background(), config.ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Postgres{
		Pool:   pool,
		Config: config,
	}, nil
}

func (p *Postgres) Close() {
	p.Pool.Close()
}

func (p *Postgres) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.Pool.Ping(ctx)
}
