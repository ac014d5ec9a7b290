package handler

import (
	"context"

	"localmarket-api/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockGate struct {
	mock.Mock
}

func (m *MockGate) Authenticate(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockGate) RequireRole(ctx context.Context, token string, roles ...models.Role) (*models.User, error) {
	args := m.Called(ctx, token, roles)
	return args.Get(0).(*models.User), args.Error(1)
}

type MockNeighborhoodService struct {
	mock.Mock
}

func (m *MockNeighborhoodService) List(ctx context.Context) ([]models.NeighborhoodSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.NeighborhoodSummary), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Onboard(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error) {
	args := m.Called(ctx, userID, update)
	return args.Get(0).(*models.User), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateService(ctx context.Context, provider *models.User, in models.NewService) (*models.Service, error) {
	args := m.Called(ctx, provider, in)
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockCatalogService) ListAll(ctx context.Context) ([]models.ServiceListing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ServiceListing), args.Error(1)
}

func (m *MockCatalogService) ListForProvider(ctx context.Context, provider *models.User) ([]models.ProviderService, error) {
	args := m.Called(ctx, provider)
	return args.Get(0).([]models.ProviderService), args.Error(1)
}

type MockNearbyService struct {
	mock.Mock
}

func (m *MockNearbyService) NearbyServices(ctx context.Context, user *models.User, radiusKm float64) ([]models.NearbyService, error) {
	args := m.Called(ctx, user, radiusKm)
	return args.Get(0).([]models.NearbyService), args.Error(1)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Book(ctx context.Context, seeker *models.User, serviceID string) (*models.Booking, error) {
	args := m.Called(ctx, seeker, serviceID)
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) Rate(ctx context.Context, user *models.User, bookingID string, rating int, review string) (*models.Booking, error) {
	args := m.Called(ctx, user, bookingID, rating, review)
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) ListForProvider(ctx context.Context, provider *models.User) ([]models.ProviderBooking, error) {
	args := m.Called(ctx, provider)
	return args.Get(0).([]models.ProviderBooking), args.Error(1)
}
