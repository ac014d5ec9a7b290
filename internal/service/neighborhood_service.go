package service

import (
	"context"
	"fmt"
	"strings"

	"localmarket-api/internal/hexgrid"
	"localmarket-api/internal/models"
)

// NeighborhoodService indexes and lists neighborhoods
type NeighborhoodService struct {
	repo    NeighborhoodRepository
	indexer *hexgrid.Indexer
}

// NeighborhoodRepository interface for dependency injection
type NeighborhoodRepository interface {
	UpsertNeighborhood(ctx context.Context, n models.Neighborhood) (*models.Neighborhood, error)
	ListNeighborhoods(ctx context.Context) ([]models.NeighborhoodSummary, error)
}

// NewNeighborhoodService creates a new neighborhood service
func NewNeighborhoodService(repo NeighborhoodRepository, indexer *hexgrid.Indexer) *NeighborhoodService {
	return &NeighborhoodService{repo: repo, indexer: indexer}
}

// Seed indexes each input once and stores it. Every input is validated and
// indexed before the first write, so a bad row stores nothing. Inputs whose
// name already exists keep their stored coordinates and cell.
func (s *NeighborhoodService) Seed(ctx context.Context, inputs []models.NeighborhoodInput) ([]models.Neighborhood, error) {
	seen := make(map[string]bool, len(inputs))
	indexed := make([]models.Neighborhood, 0, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, fmt.Errorf("service: %w: neighborhood name cannot be empty", ErrValidation)
		}
		if seen[name] {
			return nil, fmt.Errorf("service: %w: neighborhood %q listed twice", ErrValidation, name)
		}
		seen[name] = true

		cell, err := s.indexer.Index(in.Latitude, in.Longitude)
		if err != nil {
			return nil, fmt.Errorf("service: %w: neighborhood %q: %w", ErrValidation, name, err)
		}
		indexed = append(indexed, models.Neighborhood{
			Name:      name,
			Latitude:  in.Latitude,
			Longitude: in.Longitude,
			CellID:    cell.String(),
		})
	}

	stored := make([]models.Neighborhood, 0, len(indexed))
	for _, n := range indexed {
		saved, err := s.repo.UpsertNeighborhood(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("service: failed to store neighborhood: %w", err)
		}
		stored = append(stored, *saved)
	}
	return stored, nil
}

// List returns all neighborhoods
func (s *NeighborhoodService) List(ctx context.Context) ([]models.NeighborhoodSummary, error) {
	neighborhoods, err := s.repo.ListNeighborhoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list neighborhoods: %w", err)
	}
	return neighborhoods, nil
}
