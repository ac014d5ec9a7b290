package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS neighborhoods (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	lat DOUBLE PRECISION NOT NULL,
	lng DOUBLE PRECISION NOT NULL,
	cell_id TEXT
);
CREATE INDEX IF NOT EXISTS neighborhoods_cell_id_idx ON neighborhoods (cell_id);

CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL UNIQUE,
	role TEXT,
	neighborhood_id TEXT REFERENCES neighborhoods (id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS services (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	price DOUBLE PRECISION NOT NULL,
	type TEXT NOT NULL,
	provider_id TEXT NOT NULL REFERENCES users (id),
	neighborhood_id TEXT REFERENCES neighborhoods (id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS services_provider_id_idx ON services (provider_id);
CREATE INDEX IF NOT EXISTS services_neighborhood_id_idx ON services (neighborhood_id);

CREATE TABLE IF NOT EXISTS bookings (
	id TEXT PRIMARY KEY,
	service_id TEXT NOT NULL REFERENCES services (id),
	seeker_id TEXT NOT NULL REFERENCES users (id),
	status TEXT NOT NULL,
	rating INTEGER CHECK (rating BETWEEN 1 AND 5),
	review TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS bookings_service_id_idx ON bookings (service_id);
`

// Repository implements the marketplace store on PostgreSQL.
// Finder methods return (nil, nil) when no row matches.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the tables and indexes if they do not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// Ping checks the database connection.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("repository: ping: %w", err)
	}
	return nil
}
