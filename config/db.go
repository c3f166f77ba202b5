package config

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

var pool *pgxpool.Pool

func GetDatabaseURL() string {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB opens the process-wide pool once, pings it and runs the
// migration. Subsequent calls return the same pool.
func BootDB(ctx context.Context) (*pgxpool.Pool, error) {
	if pool != nil {
		return pool, nil
	}

	p, err := pgxpool.New(ctx, GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := p.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := autoMigrate(ctx, p); err != nil {
		return nil, err
	}

	pool = p
	return pool, nil
}

func autoMigrate(ctx context.Context, db *pgxpool.Pool) error {
	query := `
	CREATE TABLE IF NOT EXISTS donors (
	id UUID PRIMARY KEY,
	name VARCHAR(150) NOT NULL,
	blood_group VARCHAR(3) NOT NULL,
	phone VARCHAR(20) NOT NULL,
	district VARCHAR(100) NOT NULL,
	municipality VARCHAR(100) NOT NULL DEFAULT '',
	ward VARCHAR(20) NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
	);
	CREATE UNIQUE INDEX IF NOT EXISTS donors_phone_district_key ON donors (phone, district);
	`
	if _, err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
