package favorites

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS favorites (
    "cultureId" TEXT PRIMARY KEY
)`

// PostgresStore keeps favorites in a PostgreSQL table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// OpenPostgres connects to databaseURL and ensures the favorites table exists.
func OpenPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, wrap("open", "", fmt.Errorf("connecting to postgres: %w", err))
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, wrap("open", "", fmt.Errorf("pinging postgres: %w", err))
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, wrap("open", "", fmt.Errorf("creating schema: %w", err))
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) AllIDs(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT "cultureId" FROM favorites`)
	if err != nil {
		return nil, wrap("list", "", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, wrap("list", "", err)
	}
	return sortedIDs(ids), nil
}

func (s *PostgresStore) IsFavorite(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE "cultureId" = $1)`, id,
	).Scan(&exists)
	return exists, wrap("check", id, err)
}

func (s *PostgresStore) Add(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO favorites ("cultureId") VALUES ($1) ON CONFLICT DO NOTHING`, id,
	)
	return wrap("add", id, err)
}

func (s *PostgresStore) Remove(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM favorites WHERE "cultureId" = $1`, id)
	return wrap("remove", id, err)
}

func (s *PostgresStore) Toggle(ctx context.Context, id string) (bool, error) {
	var on bool
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM favorites WHERE "cultureId" = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() > 0 {
			return nil
		}
		// A concurrent toggle may have inserted id since the delete; either
		// way it ends up present.
		on = true
		_, err = tx.Exec(ctx,
			`INSERT INTO favorites ("cultureId") VALUES ($1) ON CONFLICT DO NOTHING`, id,
		)
		return err
	})
	return on, wrap("toggle", id, err)
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
