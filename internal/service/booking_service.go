package service

import (
	"context"
	"fmt"
	"strings"

	"localmarket-api/internal/models"

	"github.com/google/uuid"
)

// BookingService creates and rates bookings
type BookingService struct {
	repo BookingRepository
}

// BookingRepository interface for dependency injection
type BookingRepository interface {
	FindServiceByID(ctx context.Context, id string) (*models.Service, error)
	CreateBooking(ctx context.Context, b *models.Booking) error
	FindBookingByID(ctx context.Context, id string) (*models.Booking, error)
	RateBooking(ctx context.Context, id string, rating int, review *string) (*models.Booking, error)
	ListBookingsForProvider(ctx context.Context, providerID string) ([]models.ProviderBooking, error)
}

// NewBookingService creates a new booking service
func NewBookingService(repo BookingRepository) *BookingService {
	return &BookingService{repo: repo}
}

// Book creates a pending booking of serviceID for seeker.
func (s *BookingService) Book(ctx context.Context, seeker *models.User, serviceID string) (*models.Booking, error) {
	if serviceID == "" {
		return nil, fmt.Errorf("service: %w: service id is required", ErrValidation)
	}
	if seeker.Role != models.RoleSeeker {
		return nil, fmt.Errorf("service: %w: only seekers can book services", ErrForbidden)
	}

	svc, err := s.repo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find service: %w", err)
	}
	if svc == nil {
		return nil, fmt.Errorf("service: %w: service %s", ErrNotFound, serviceID)
	}
	if svc.ProviderID == seeker.ID {
		return nil, fmt.Errorf("service: %w: you cannot book your own service", ErrValidation)
	}

	booking := &models.Booking{
		ID:        uuid.NewString(),
		ServiceID: svc.ID,
		SeekerID:  seeker.ID,
		Status:    models.BookingPending,
	}
	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("service: failed to create booking: %w", err)
	}
	return booking, nil
}

// Rate stores a rating and optional review. Only the seeker who made the
// booking may rate it.
func (s *BookingService) Rate(ctx context.Context, user *models.User, bookingID string, rating int, review string) (*models.Booking, error) {
	if rating < models.MinRating || rating > models.MaxRating {
		return nil, fmt.Errorf("service: %w: rating must be between %d and %d", ErrValidation, models.MinRating, models.MaxRating)
	}

	booking, err := s.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("service: %w: booking %s", ErrNotFound, bookingID)
	}
	if booking.SeekerID != user.ID {
		return nil, fmt.Errorf("service: %w: only the seeker who booked can rate", ErrForbidden)
	}

	var reviewPtr *string
	if r := strings.TrimSpace(review); r != "" {
		reviewPtr = &r
	}

	updated, err := s.repo.RateBooking(ctx, bookingID, rating, reviewPtr)
	if err != nil {
		return nil, fmt.Errorf("service: failed to rate booking: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("service: %w: booking %s", ErrNotFound, bookingID)
	}
	return updated, nil
}

// ListForProvider returns the bookings made on the provider's services.
func (s *BookingService) ListForProvider(ctx context.Context, provider *models.User) ([]models.ProviderBooking, error) {
	bookings, err := s.repo.ListBookingsForProvider(ctx, provider.ID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bookings: %w", err)
	}
	return bookings, nil
}
