package service

import (
	"context"
	"fmt"
	"strings"

	"localmarket-api/internal/models"
)

// UserService handles profile onboarding
type UserService struct {
	repo UserRepository
}

// UserRepository interface for dependency injection
type UserRepository interface {
	FindNeighborhoodByID(ctx context.Context, id string) (*models.Neighborhood, error)
	UpdateUserProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.User, error)
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Onboard sets the name, role and home neighborhood of an authenticated user.
func (s *UserService) Onboard(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error) {
	update.Name = strings.TrimSpace(update.Name)
	if len([]rune(update.Name)) < 2 {
		return nil, fmt.Errorf("service: %w: name must be at least 2 characters", ErrValidation)
	}
	if !update.Role.Valid() {
		return nil, fmt.Errorf("service: %w: role must be PROVIDER or SEEKER", ErrValidation)
	}
	if update.NeighborhoodID == "" {
		return nil, fmt.Errorf("service: %w: neighborhood is required", ErrValidation)
	}

	neighborhood, err := s.repo.FindNeighborhoodByID(ctx, update.NeighborhoodID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find neighborhood: %w", err)
	}
	if neighborhood == nil {
		return nil, fmt.Errorf("service: %w: neighborhood not found", ErrValidation)
	}

	user, err := s.repo.UpdateUserProfile(ctx, userID, update)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("service: %w: user %s", ErrNotFound, userID)
	}
	return user, nil
}
