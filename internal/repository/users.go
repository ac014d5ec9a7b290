package repository

import (
	"context"
	"errors"
	"fmt"

	"localmarket-api/internal/models"

	"github.com/jackc/pgx/v5"
)

const userColumns = `
	u.id, u.name, u.email, COALESCE(u.role, ''), u.neighborhood_id, u.created_at,
	n.id, n.name, n.lat, n.lng, n.cell_id
`

// FindUserByID loads a user joined with its home neighborhood.
func (r *Repository) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	sql := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN neighborhoods n ON n.id = u.neighborhood_id
		WHERE u.id = $1
	`

	user, err := scanUser(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to find user: %w", err)
	}
	return user, nil
}

// UpdateUserProfile stores the onboarding fields of a user.
func (r *Repository) UpdateUserProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.User, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET name = $2, role = $3, neighborhood_id = $4 WHERE id = $1`,
		id, update.Name, string(update.Role), update.NeighborhoodID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.FindUserByID(ctx, id)
}

func scanUser(row pgx.Row) (*models.User, error) {
	var (
		u      models.User
		role   string
		homeID *string
		name   *string
		lat    *float64
		lng    *float64
		cellID *string
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &role, &u.NeighborhoodID, &u.CreatedAt,
		&homeID, &name, &lat, &lng, &cellID,
	)
	if err != nil {
		return nil, err
	}
	u.Role = models.Role(role)

	if homeID != nil {
		home := &models.Neighborhood{ID: *homeID}
		if name != nil {
			home.Name = *name
		}
		if lat != nil {
			home.Latitude = *lat
		}
		if lng != nil {
			home.Longitude = *lng
		}
		if cellID != nil {
			home.CellID = *cellID
		}
		u.Home = home
	}
	return &u, nil
}
