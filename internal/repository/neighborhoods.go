package repository

import (
	"context"
	"errors"
	"fmt"

	"localmarket-api/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UpsertNeighborhood inserts n unless a neighborhood with the same name
// exists, and returns the stored row. Existing rows are never modified.
func (r *Repository) UpsertNeighborhood(ctx context.Context, n models.Neighborhood) (*models.Neighborhood, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	sql := `
		INSERT INTO neighborhoods (id, name, lat, lng, cell_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, lat, lng, COALESCE(cell_id, '')
	`

	var stored models.Neighborhood
	err := r.db.QueryRow(ctx, sql, n.ID, n.Name, n.Latitude, n.Longitude, n.CellID).Scan(
		&stored.ID,
		&stored.Name,
		&stored.Latitude,
		&stored.Longitude,
		&stored.CellID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to upsert neighborhood %q: %w", n.Name, err)
	}
	return &stored, nil
}

// ListNeighborhoods returns every neighborhood ordered by name.
func (r *Repository) ListNeighborhoods(ctx context.Context) ([]models.NeighborhoodSummary, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM neighborhoods ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list neighborhoods: %w", err)
	}
	defer rows.Close()

	neighborhoods := []models.NeighborhoodSummary{}
	for rows.Next() {
		var n models.NeighborhoodSummary
		if err := rows.Scan(&n.ID, &n.Name); err != nil {
			return nil, fmt.Errorf("repository: failed to scan neighborhood: %w", err)
		}
		neighborhoods = append(neighborhoods, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return neighborhoods, nil
}

// CountNeighborhoods returns the number of stored neighborhoods.
func (r *Repository) CountNeighborhoods(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM neighborhoods`).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count neighborhoods: %w", err)
	}
	return count, nil
}

// FindNeighborhoodByID looks a neighborhood up by id.
func (r *Repository) FindNeighborhoodByID(ctx context.Context, id string) (*models.Neighborhood, error) {
	return r.findNeighborhood(ctx, "id", id)
}

// FindNeighborhoodByName looks a neighborhood up by its unique name.
func (r *Repository) FindNeighborhoodByName(ctx context.Context, name string) (*models.Neighborhood, error) {
	return r.findNeighborhood(ctx, "name", name)
}

func (r *Repository) findNeighborhood(ctx context.Context, column, value string) (*models.Neighborhood, error) {
	sql := `SELECT id, name, lat, lng, COALESCE(cell_id, '') FROM neighborhoods WHERE ` + column + ` = $1`

	var n models.Neighborhood
	err := r.db.QueryRow(ctx, sql, value).Scan(&n.ID, &n.Name, &n.Latitude, &n.Longitude, &n.CellID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to find neighborhood by %s: %w", column, err)
	}
	return &n, nil
}
