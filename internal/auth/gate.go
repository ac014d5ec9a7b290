// Package auth resolves a session token to a user and checks roles. Sessions
// are issued by the external sign-in service; only lookup happens here.
package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"localmarket-api/internal/models"
)

var (
	ErrUnauthorized      = errors.New("auth: unauthorized")
	ErrUserNotFound      = errors.New("auth: user not found")
	ErrProfileIncomplete = errors.New("auth: user has not completed onboarding")
	ErrForbidden         = errors.New("auth: forbidden")
)

// SessionStore maps a session token to the id of its user.
type SessionStore interface {
	UserID(ctx context.Context, token string) (string, error)
}

// UserFinder loads a user together with its home neighborhood.
type UserFinder interface {
	FindUserByID(ctx context.Context, id string) (*models.User, error)
}

// Gate is the one place that decides who is calling and whether they may.
type Gate struct {
	sessions SessionStore
	users    UserFinder
}

// NewGate creates a gate.
func NewGate(sessions SessionStore, users UserFinder) *Gate {
	return &Gate{sessions: sessions, users: users}
}

// Authenticate returns the user owning token.
func (g *Gate) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	userID, err := g.sessions.UserID(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := g.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// RequireRole authenticates token and checks the user holds one of roles.
func (g *Gate) RequireRole(ctx context.Context, token string, roles ...models.Role) (*models.User, error) {
	user, err := g.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	if user.Role == "" {
		return nil, ErrProfileIncomplete
	}
	if !slices.Contains(roles, user.Role) {
		return nil, fmt.Errorf("%w: role %s", ErrForbidden, user.Role)
	}
	return user, nil
}
