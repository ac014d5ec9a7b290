package service

import (
	"context"
	"time"

	"localmarket-api/internal/kv"
	"localmarket-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of every repository interface in
// this package
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) UpsertNeighborhood(ctx context.Context, n models.Neighborhood) (*models.Neighborhood, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(*models.Neighborhood), args.Error(1)
}

func (m *MockRepository) ListNeighborhoods(ctx context.Context) ([]models.NeighborhoodSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.NeighborhoodSummary), args.Error(1)
}

func (m *MockRepository) FindNeighborhoodByID(ctx context.Context, id string) (*models.Neighborhood, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Neighborhood), args.Error(1)
}

func (m *MockRepository) FindNeighborhoodByName(ctx context.Context, name string) (*models.Neighborhood, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(*models.Neighborhood), args.Error(1)
}

func (m *MockRepository) UpdateUserProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.User, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) CreateService(ctx context.Context, s *models.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRepository) FindServiceByID(ctx context.Context, id string) (*models.Service, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockRepository) ListServices(ctx context.Context) ([]models.ServiceListing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ServiceListing), args.Error(1)
}

func (m *MockRepository) FindServicesInCells(ctx context.Context, cellIDs []string) ([]models.ServiceListing, error) {
	args := m.Called(ctx, cellIDs)
	return args.Get(0).([]models.ServiceListing), args.Error(1)
}

func (m *MockRepository) ListServicesByProvider(ctx context.Context, providerID string) ([]models.ProviderService, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).([]models.ProviderService), args.Error(1)
}

func (m *MockRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) FindBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) RateBooking(ctx context.Context, id string, rating int, review *string) (*models.Booking, error) {
	args := m.Called(ctx, id, rating, review)
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) ListBookingsForProvider(ctx context.Context, providerID string) ([]models.ProviderBooking, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).([]models.ProviderBooking), args.Error(1)
}

// memoryCache is an in-process Cache that ignores expiry.
type memoryCache struct {
	entries map[string][]byte
	gets    int
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	v, ok := c.entries[key]
	if !ok {
		return nil, kv.ErrKeyNotFound
	}
	return v, nil
}

func (c *memoryCache) SetWithTTL(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *memoryCache) Del(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}
