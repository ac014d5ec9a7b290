package service

import (
	"context"
	"testing"

	"localmarket-api/internal/hexgrid"
	"localmarket-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNeighborhoodService_Seed(t *testing.T) {
	indexer, err := hexgrid.NewIndexer(hexgrid.DefaultResolution)
	require.NoError(t, err)

	gulshanCell, err := indexer.Index(24.9121, 67.0707)
	require.NoError(t, err)

	t.Run("indexes and stores each neighborhood", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewNeighborhoodService(mockRepo, indexer)

		expected := models.Neighborhood{
			Name:      "Gulshan",
			Latitude:  24.9121,
			Longitude: 67.0707,
			CellID:    gulshanCell.String(),
		}
		stored := expected
		stored.ID = "n-1"
		mockRepo.On("UpsertNeighborhood", mock.Anything, expected).Return(&stored, nil)

		result, err := svc.Seed(context.Background(), []models.NeighborhoodInput{
			{Name: " Gulshan ", Latitude: 24.9121, Longitude: 67.0707},
		})

		require.NoError(t, err)
		assert.Equal(t, []models.Neighborhood{stored}, result)
		mockRepo.AssertExpectations(t)
	})

	tests := []struct {
		name   string
		inputs []models.NeighborhoodInput
	}{
		{
			name:   "empty name",
			inputs: []models.NeighborhoodInput{{Name: "  ", Latitude: 24.9, Longitude: 67.0}},
		},
		{
			name: "duplicate name",
			inputs: []models.NeighborhoodInput{
				{Name: "DHA", Latitude: 24.8125, Longitude: 67.0336},
				{Name: "DHA", Latitude: 24.8, Longitude: 67.0},
			},
		},
		{
			name:   "latitude out of range",
			inputs: []models.NeighborhoodInput{{Name: "Nowhere", Latitude: 95, Longitude: 67.0}},
		},
		{
			name: "bad row after a valid one",
			inputs: []models.NeighborhoodInput{
				{Name: "Gulshan", Latitude: 24.9121, Longitude: 67.0707},
				{Name: "Nowhere", Latitude: 95, Longitude: 67.0},
			},
		},
		{
			name: "duplicate after a bad coordinate",
			inputs: []models.NeighborhoodInput{
				{Name: "Gulshan", Latitude: 24.9121, Longitude: 67.0707},
				{Name: "PECHS", Latitude: 24.8828, Longitude: 267.0566},
				{Name: "Gulshan", Latitude: 24.9121, Longitude: 67.0707},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			svc := NewNeighborhoodService(mockRepo, indexer)

			result, err := svc.Seed(context.Background(), tt.inputs)

			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, result)
			mockRepo.AssertNotCalled(t, "UpsertNeighborhood", mock.Anything, mock.Anything)
		})
	}

	t.Run("invalid coordinate keeps the index error", func(t *testing.T) {
		svc := NewNeighborhoodService(new(MockRepository), indexer)
		_, err := svc.Seed(context.Background(), []models.NeighborhoodInput{{Name: "X", Latitude: 0, Longitude: 200}})
		assert.ErrorIs(t, err, hexgrid.ErrInvalidCoordinate)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewNeighborhoodService(mockRepo, indexer)
		mockRepo.On("UpsertNeighborhood", mock.Anything, mock.Anything).Return((*models.Neighborhood)(nil), assert.AnError)

		_, err := svc.Seed(context.Background(), []models.NeighborhoodInput{{Name: "Gulshan", Latitude: 24.9121, Longitude: 67.0707}})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestNeighborhoodService_List(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewNeighborhoodService(mockRepo, nil)

	expected := []models.NeighborhoodSummary{{ID: "n-2", Name: "DHA"}, {ID: "n-1", Name: "Gulshan"}}
	mockRepo.On("ListNeighborhoods", mock.Anything).Return(expected, nil).Once()
	mockRepo.On("ListNeighborhoods", mock.Anything).Return([]models.NeighborhoodSummary(nil), assert.AnError).Once()

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, result)

	_, err = svc.List(context.Background())
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
