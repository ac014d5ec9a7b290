package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"localmarket-api/internal/kv"
	"localmarket-api/internal/metrics"
	"localmarket-api/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AllServicesCacheKey caches the full service listing.
const AllServicesCacheKey = "services:all"

// CatalogService publishes and lists services
type CatalogService struct {
	repo  CatalogRepository
	cache Cache
	ttl   time.Duration
}

// CatalogRepository interface for dependency injection
type CatalogRepository interface {
	FindNeighborhoodByName(ctx context.Context, name string) (*models.Neighborhood, error)
	CreateService(ctx context.Context, s *models.Service) error
	ListServices(ctx context.Context) ([]models.ServiceListing, error)
	ListServicesByProvider(ctx context.Context, providerID string) ([]models.ProviderService, error)
}

// Cache is the read-through cache in front of the full listing.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// NewCatalogService creates a new catalog service. A zero ttl disables
// caching.
func NewCatalogService(repo CatalogRepository, cache Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, ttl: ttl}
}

// CreateService publishes a service for provider. The service is placed in
// the named neighborhood, or the provider's home when no name is given.
func (s *CatalogService) CreateService(ctx context.Context, provider *models.User, in models.NewService) (*models.Service, error) {
	if provider.Role != models.RoleProvider {
		return nil, fmt.Errorf("service: %w: only providers can create services", ErrForbidden)
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	switch {
	case in.Title == "":
		return nil, fmt.Errorf("service: %w: title is required", ErrValidation)
	case in.Description == "":
		return nil, fmt.Errorf("service: %w: description is required", ErrValidation)
	case in.Price <= 0:
		return nil, fmt.Errorf("service: %w: price must be positive", ErrValidation)
	case !in.Type.Valid():
		return nil, fmt.Errorf("service: %w: type must be SERVICE, TOOL or SKILL", ErrValidation)
	}

	neighborhoodID := provider.NeighborhoodID
	if name := strings.TrimSpace(in.NeighborhoodName); name != "" {
		neighborhood, err := s.repo.FindNeighborhoodByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("service: failed to find neighborhood: %w", err)
		}
		if neighborhood == nil {
			return nil, fmt.Errorf("service: %w: invalid neighborhood %q", ErrValidation, name)
		}
		neighborhoodID = &neighborhood.ID
	}

	svc := &models.Service{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Description:    in.Description,
		Price:          in.Price,
		Type:           in.Type,
		ProviderID:     provider.ID,
		NeighborhoodID: neighborhoodID,
	}
	if err := s.repo.CreateService(ctx, svc); err != nil {
		return nil, fmt.Errorf("service: failed to create service: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, AllServicesCacheKey); err != nil {
			log.Warn().Err(err).Str("key", AllServicesCacheKey).Msg("failed to invalidate cache")
		}
	}
	return svc, nil
}

// ListAll returns every service, served from the cache when possible.
func (s *CatalogService) ListAll(ctx context.Context) ([]models.ServiceListing, error) {
	if cached, ok := s.cached(ctx); ok {
		return cached, nil
	}

	listings, err := s.repo.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list services: %w", err)
	}

	if s.cache != nil && s.ttl > 0 {
		payload, err := json.Marshal(listings)
		if err == nil {
			err = s.cache.SetWithTTL(ctx, AllServicesCacheKey, payload, s.ttl)
		}
		if err != nil {
			log.Warn().Err(err).Str("key", AllServicesCacheKey).Msg("failed to fill cache")
		}
	}
	return listings, nil
}

func (s *CatalogService) cached(ctx context.Context) ([]models.ServiceListing, bool) {
	if s.cache == nil || s.ttl <= 0 {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, AllServicesCacheKey)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			log.Warn().Err(err).Str("key", AllServicesCacheKey).Msg("cache read failed")
		}
		metrics.ObserveCacheLookup(AllServicesCacheKey, false)
		return nil, false
	}

	var listings []models.ServiceListing
	if err := json.Unmarshal(raw, &listings); err != nil {
		log.Warn().Err(err).Str("key", AllServicesCacheKey).Msg("discarding corrupt cache entry")
		metrics.ObserveCacheLookup(AllServicesCacheKey, false)
		return nil, false
	}
	metrics.ObserveCacheLookup(AllServicesCacheKey, true)
	return listings, true
}

// ListForProvider returns the provider's services with their bookings.
func (s *CatalogService) ListForProvider(ctx context.Context, provider *models.User) ([]models.ProviderService, error) {
	services, err := s.repo.ListServicesByProvider(ctx, provider.ID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list provider services: %w", err)
	}
	return services, nil
}
