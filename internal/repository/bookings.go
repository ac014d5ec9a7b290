package repository

import (
	"context"
	"errors"
	"fmt"

	"localmarket-api/internal/models"

	"github.com/jackc/pgx/v5"
)

// CreateBooking inserts a booking. ID and Status must be set by the caller.
func (r *Repository) CreateBooking(ctx context.Context, b *models.Booking) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO bookings (id, service_id, seeker_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, b.ID, b.ServiceID, b.SeekerID, string(b.Status)).Scan(&b.CreatedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to create booking: %w", err)
	}
	return nil
}

// FindBookingByID looks a booking up by id.
func (r *Repository) FindBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, `
		SELECT id, service_id, seeker_id, status, rating, review, created_at
		FROM bookings
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to find booking: %w", err)
	}
	return b, nil
}

// RateBooking stores the seeker's rating and review.
func (r *Repository) RateBooking(ctx context.Context, id string, rating int, review *string) (*models.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, `
		UPDATE bookings SET rating = $2, review = $3
		WHERE id = $1
		RETURNING id, service_id, seeker_id, status, rating, review, created_at
	`, id, rating, review))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to rate booking: %w", err)
	}
	return b, nil
}

// ListBookingsForProvider returns the bookings made on a provider's services.
func (r *Repository) ListBookingsForProvider(ctx context.Context, providerID string) ([]models.ProviderBooking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			b.id, b.service_id, b.seeker_id, b.status, b.rating, b.review, b.created_at,
			s.id, s.title, s.description, s.price, s.type, s.provider_id, s.neighborhood_id, s.created_at,
			u.name
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		JOIN users u ON u.id = b.seeker_id
		WHERE s.provider_id = $1
		ORDER BY b.created_at DESC, b.id
	`, providerID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list provider bookings: %w", err)
	}
	defer rows.Close()

	bookings := []models.ProviderBooking{}
	for rows.Next() {
		var (
			pb      models.ProviderBooking
			status  string
			svcType string
		)
		err := rows.Scan(
			&pb.ID, &pb.ServiceID, &pb.SeekerID, &status, &pb.Rating, &pb.Review, &pb.CreatedAt,
			&pb.Service.ID, &pb.Service.Title, &pb.Service.Description, &pb.Service.Price, &svcType,
			&pb.Service.ProviderID, &pb.Service.NeighborhoodID, &pb.Service.CreatedAt,
			&pb.SeekerName,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan booking: %w", err)
		}
		pb.Status = models.BookingStatus(status)
		pb.Service.Type = models.ServiceType(svcType)
		bookings = append(bookings, pb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return bookings, nil
}

func scanBooking(row pgx.Row) (*models.Booking, error) {
	var (
		b      models.Booking
		status string
	)
	err := row.Scan(&b.ID, &b.ServiceID, &b.SeekerID, &status, &b.Rating, &b.Review, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	b.Status = models.BookingStatus(status)
	return &b, nil
}
