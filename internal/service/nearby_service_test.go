package service

import (
	"context"
	"testing"

	"localmarket-api/internal/hexgrid"
	"localmarket-api/internal/models"
	"localmarket-api/internal/proximity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func homeUser(t *testing.T, lat, lng float64) *models.User {
	t.Helper()
	cell, err := hexgrid.IndexOf(lat, lng, hexgrid.DefaultResolution)
	require.NoError(t, err)
	return &models.User{
		ID:   "u-2",
		Role: models.RoleSeeker,
		Home: &models.Neighborhood{ID: "n-1", Name: "Gulshan", Latitude: lat, Longitude: lng, CellID: cell.String()},
	}
}

func TestNearbyService_NearbyServices(t *testing.T) {
	finder := proximity.NewFinder(proximity.MustRadiusPolicy(proximity.DefaultRadiusRings))
	user := homeUser(t, 24.9121, 67.0707)

	listings := []models.ServiceListing{
		{
			Service:          models.Service{ID: "s-far", Title: "Tutoring"},
			NeighborhoodName: "PECHS",
			Latitude:         floatPtr(24.8828),
			Longitude:        floatPtr(67.0566),
		},
		{
			Service:          models.Service{ID: "s-b", Title: "Plumbing"},
			NeighborhoodName: "Gulshan",
			Latitude:         floatPtr(24.9121),
			Longitude:        floatPtr(67.0707),
		},
		{
			Service:          models.Service{ID: "s-a", Title: "Drill hire"},
			NeighborhoodName: "Gulshan",
			Latitude:         floatPtr(24.9121),
			Longitude:        floatPtr(67.0707),
		},
	}

	mockRepo := new(MockRepository)
	svc := NewNearbyService(mockRepo, finder)
	mockRepo.On("FindServicesInCells", mock.Anything, mock.MatchedBy(func(cells []string) bool {
		return len(cells) == hexgrid.DiskSize(5)
	})).Return(listings, nil)

	result, err := svc.NearbyServices(context.Background(), user, 25)

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, []string{"s-a", "s-b", "s-far"}, []string{result[0].ID, result[1].ID, result[2].ID})
	assert.Zero(t, result[0].DistanceKm)
	assert.InDelta(t, 3.5, result[2].DistanceKm, 0.5)
	mockRepo.AssertExpectations(t)
}

func TestNearbyService_Errors(t *testing.T) {
	finder := proximity.NewFinder(proximity.MustRadiusPolicy(proximity.DefaultRadiusRings))

	tests := []struct {
		name        string
		user        *models.User
		radiusKm    float64
		expectedErr error
	}{
		{name: "unsupported radius", user: homeUser(t, 24.9121, 67.0707), radiusKm: 3, expectedErr: proximity.ErrUnsupportedRadius},
		{name: "no home neighborhood", user: &models.User{ID: "u-3"}, radiusKm: 5, expectedErr: proximity.ErrMissingHomeIndex},
		{name: "bad radius wins over missing home", user: &models.User{ID: "u-3"}, radiusKm: 7, expectedErr: proximity.ErrUnsupportedRadius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			svc := NewNearbyService(mockRepo, finder)

			result, err := svc.NearbyServices(context.Background(), tt.user, tt.radiusKm)

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, result)
			mockRepo.AssertNotCalled(t, "FindServicesInCells", mock.Anything, mock.Anything)
		})
	}

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewNearbyService(mockRepo, finder)
		mockRepo.On("FindServicesInCells", mock.Anything, mock.Anything).Return([]models.ServiceListing(nil), assert.AnError)

		_, err := svc.NearbyServices(context.Background(), homeUser(t, 24.9121, 67.0707), 5)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestNearbyService_AllowedRadii(t *testing.T) {
	svc := NewNearbyService(nil, proximity.NewFinder(proximity.MustRadiusPolicy(proximity.DefaultRadiusRings)))
	assert.Equal(t, []float64{5, 10, 25}, svc.AllowedRadii())
}
