package service

import (
	"context"
	"testing"

	"localmarket-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingService_Book(t *testing.T) {
	seeker := &models.User{ID: "u-2", Name: "Bilal", Role: models.RoleSeeker}
	provider := &models.User{ID: "u-1", Name: "Ayesha", Role: models.RoleProvider}
	plumbing := &models.Service{ID: "s-1", Title: "Plumbing", ProviderID: "u-1"}

	tests := []struct {
		name        string
		user        *models.User
		serviceID   string
		service     *models.Service
		lookup      bool
		create      bool
		expectedErr error
	}{
		{name: "missing service id", user: seeker, expectedErr: ErrValidation},
		{name: "provider cannot book", user: provider, serviceID: "s-1", expectedErr: ErrForbidden},
		{name: "unknown service", user: seeker, serviceID: "s-404", lookup: true, expectedErr: ErrNotFound},
		{
			name:        "own service",
			user:        &models.User{ID: "u-1", Role: models.RoleSeeker},
			serviceID:   "s-1",
			service:     plumbing,
			lookup:      true,
			expectedErr: ErrValidation,
		},
		{name: "pending booking created", user: seeker, serviceID: "s-1", service: plumbing, lookup: true, create: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			svc := NewBookingService(mockRepo)

			if tt.lookup {
				mockRepo.On("FindServiceByID", mock.Anything, tt.serviceID).Return(tt.service, nil)
			}
			if tt.create {
				mockRepo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)
			}

			booking, err := svc.Book(context.Background(), tt.user, tt.serviceID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, booking)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, booking.ID)
				assert.Equal(t, "s-1", booking.ServiceID)
				assert.Equal(t, seeker.ID, booking.SeekerID)
				assert.Equal(t, models.BookingPending, booking.Status)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBookingService_Rate(t *testing.T) {
	seeker := &models.User{ID: "u-2", Role: models.RoleSeeker}
	other := &models.User{ID: "u-9", Role: models.RoleSeeker}
	booking := &models.Booking{ID: "b-1", ServiceID: "s-1", SeekerID: "u-2", Status: models.BookingCompleted}

	for _, rating := range []int{0, 6, -1} {
		svc := NewBookingService(new(MockRepository))
		_, err := svc.Rate(context.Background(), seeker, "b-1", rating, "")
		assert.ErrorIs(t, err, ErrValidation, "rating %d", rating)
	}

	t.Run("unknown booking", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindBookingByID", mock.Anything, "b-404").Return((*models.Booking)(nil), nil)

		_, err := NewBookingService(mockRepo).Rate(context.Background(), seeker, "b-404", 4, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("someone else's booking", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindBookingByID", mock.Anything, "b-1").Return(booking, nil)

		_, err := NewBookingService(mockRepo).Rate(context.Background(), other, "b-1", 4, "")
		assert.ErrorIs(t, err, ErrForbidden)
		mockRepo.AssertNotCalled(t, "RateBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rating with review", func(t *testing.T) {
		mockRepo := new(MockRepository)
		rated := *booking
		rated.Rating = new(int)
		*rated.Rating = 5
		rated.Review = strPtr("Quick and tidy")

		mockRepo.On("FindBookingByID", mock.Anything, "b-1").Return(booking, nil)
		mockRepo.On("RateBooking", mock.Anything, "b-1", 5, strPtr("Quick and tidy")).Return(&rated, nil)

		result, err := NewBookingService(mockRepo).Rate(context.Background(), seeker, "b-1", 5, "  Quick and tidy ")

		require.NoError(t, err)
		assert.Equal(t, &rated, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("blank review is stored as null", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindBookingByID", mock.Anything, "b-1").Return(booking, nil)
		mockRepo.On("RateBooking", mock.Anything, "b-1", 3, (*string)(nil)).Return(booking, nil)

		_, err := NewBookingService(mockRepo).Rate(context.Background(), seeker, "b-1", 3, "   ")

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestBookingService_ListForProvider(t *testing.T) {
	mockRepo := new(MockRepository)
	expected := []models.ProviderBooking{
		{Booking: models.Booking{ID: "b-1", Status: models.BookingPending}, Service: models.Service{ID: "s-1", Title: "Plumbing"}, SeekerName: "Bilal"},
	}
	mockRepo.On("ListBookingsForProvider", mock.Anything, "u-1").Return(expected, nil)

	result, err := NewBookingService(mockRepo).ListForProvider(context.Background(), &models.User{ID: "u-1"})

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}
