package repository

import (
	"context"
	"errors"
	"fmt"

	"localmarket-api/internal/models"

	"github.com/jackc/pgx/v5"
)

const listingSelect = `
	SELECT
		s.id, s.title, s.description, s.price, s.type, s.provider_id, s.neighborhood_id, s.created_at,
		p.name,
		COALESCE(n.name, ''),
		COALESCE(n.cell_id, ''),
		n.lat,
		n.lng
	FROM services s
	JOIN users p ON p.id = s.provider_id
	LEFT JOIN neighborhoods n ON n.id = s.neighborhood_id
`

// CreateService inserts a service. ID must be set by the caller; CreatedAt is
// filled from the database.
func (r *Repository) CreateService(ctx context.Context, s *models.Service) error {
	sql := `
		INSERT INTO services (id, title, description, price, type, provider_id, neighborhood_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, sql,
		s.ID, s.Title, s.Description, s.Price, string(s.Type), s.ProviderID, s.NeighborhoodID,
	).Scan(&s.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to create service: %w", err)
	}
	return nil
}

// FindServiceByID looks a service up by id.
func (r *Repository) FindServiceByID(ctx context.Context, id string) (*models.Service, error) {
	sql := `
		SELECT id, title, description, price, type, provider_id, neighborhood_id, created_at
		FROM services
		WHERE id = $1
	`
	var (
		s       models.Service
		svcType string
	)
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&s.ID, &s.Title, &s.Description, &s.Price, &svcType, &s.ProviderID, &s.NeighborhoodID, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to find service: %w", err)
	}
	s.Type = models.ServiceType(svcType)
	return &s, nil
}

// ListServices returns every service with its provider and neighborhood names.
func (r *Repository) ListServices(ctx context.Context) ([]models.ServiceListing, error) {
	return r.queryListings(ctx, listingSelect+` ORDER BY s.created_at DESC, s.id`)
}

// FindServicesInCells returns the services whose neighborhood lies in one of
// the given cells.
func (r *Repository) FindServicesInCells(ctx context.Context, cellIDs []string) ([]models.ServiceListing, error) {
	if len(cellIDs) == 0 {
		return []models.ServiceListing{}, nil
	}
	return r.queryListings(ctx, listingSelect+` WHERE n.cell_id = ANY($1) ORDER BY s.created_at DESC, s.id`, cellIDs)
}

func (r *Repository) queryListings(ctx context.Context, sql string, args ...any) ([]models.ServiceListing, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute services query: %w", err)
	}
	defer rows.Close()

	listings := []models.ServiceListing{}
	for rows.Next() {
		var (
			l       models.ServiceListing
			svcType string
		)
		err := rows.Scan(
			&l.ID, &l.Title, &l.Description, &l.Price, &svcType, &l.ProviderID, &l.NeighborhoodID, &l.CreatedAt,
			&l.ProviderName,
			&l.NeighborhoodName,
			&l.CellID,
			&l.Latitude,
			&l.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan service: %w", err)
		}
		l.Type = models.ServiceType(svcType)
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return listings, nil
}

// ListServicesByProvider returns a provider's services, each with the
// bookings made on it.
func (r *Repository) ListServicesByProvider(ctx context.Context, providerID string) ([]models.ProviderService, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, price, type, provider_id, neighborhood_id, created_at
		FROM services
		WHERE provider_id = $1
		ORDER BY created_at DESC, id
	`, providerID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list provider services: %w", err)
	}
	defer rows.Close()

	services := []models.ProviderService{}
	index := make(map[string]int)
	for rows.Next() {
		var (
			s       models.ProviderService
			svcType string
		)
		err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Price, &svcType, &s.ProviderID, &s.NeighborhoodID, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan service: %w", err)
		}
		s.Type = models.ServiceType(svcType)
		s.Bookings = []models.ServiceBooking{}
		index[s.ID] = len(services)
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	if len(services) == 0 {
		return services, nil
	}

	bookingRows, err := r.db.Query(ctx, `
		SELECT b.service_id, b.id, u.name, b.status, b.rating
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		JOIN users u ON u.id = b.seeker_id
		WHERE s.provider_id = $1
		ORDER BY b.created_at, b.id
	`, providerID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list service bookings: %w", err)
	}
	defer bookingRows.Close()

	for bookingRows.Next() {
		var (
			serviceID string
			status    string
			b         models.ServiceBooking
		)
		if err := bookingRows.Scan(&serviceID, &b.ID, &b.SeekerName, &status, &b.Rating); err != nil {
			return nil, fmt.Errorf("repository: failed to scan booking: %w", err)
		}
		b.Status = models.BookingStatus(status)
		if i, ok := index[serviceID]; ok {
			services[i].Bookings = append(services[i].Bookings, b)
		}
	}
	if err := bookingRows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return services, nil
}
