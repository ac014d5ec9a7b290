package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"localmarket-api/internal/hexgrid"
	"localmarket-api/internal/metrics"
	"localmarket-api/internal/models"
	"localmarket-api/internal/proximity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// NearbyService finds services around a user's home neighborhood
type NearbyService struct {
	repo   NearbyRepository
	finder *proximity.Finder
}

// NearbyRepository interface for dependency injection
type NearbyRepository interface {
	FindServicesInCells(ctx context.Context, cellIDs []string) ([]models.ServiceListing, error)
}

// NewNearbyService creates a new nearby service
func NewNearbyService(repo NearbyRepository, finder *proximity.Finder) *NearbyService {
	return &NearbyService{repo: repo, finder: finder}
}

// AllowedRadii returns the radii accepted by NearbyServices.
func (s *NearbyService) AllowedRadii() []float64 {
	return s.finder.Policy().Allowed()
}

// NearbyServices returns the services whose neighborhood lies within
// radiusKm of the user's home, nearest first.
func (s *NearbyService) NearbyServices(ctx context.Context, user *models.User, radiusKm float64) ([]models.NearbyService, error) {
	cells, err := s.finder.FindNearby(hexgrid.CellID(user.HomeCellID()), radiusKm)
	metrics.ObserveProximityQuery(radiusKm, cells.Len(), err)
	if err != nil {
		return nil, fmt.Errorf("service: nearby search for user %s: %w", user.ID, err)
	}

	listings, err := s.repo.FindServicesInCells(ctx, cells.Sorted())
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearby services: %w", err)
	}

	home := orb.Point{user.Home.Longitude, user.Home.Latitude}
	nearby := make([]models.NearbyService, 0, len(listings))
	for _, l := range listings {
		n := models.NearbyService{ServiceListing: l}
		if l.Latitude != nil && l.Longitude != nil {
			meters := geo.DistanceHaversine(home, orb.Point{*l.Longitude, *l.Latitude})
			n.DistanceKm = math.Round(meters/10) / 100
		}
		nearby = append(nearby, n)
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		if nearby[i].DistanceKm != nearby[j].DistanceKm {
			return nearby[i].DistanceKm < nearby[j].DistanceKm
		}
		return nearby[i].Title < nearby[j].Title
	})
	return nearby, nil
}
