package auth

import (
	"context"
	"errors"
	"fmt"

	"localmarket-api/internal/kv"
)

const sessionKeyPrefix = "session:"

// KVReader is the subset of the key-value store used for sessions.
type KVReader interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// KVSessions looks sessions up under "session:<token>".
type KVSessions struct {
	store KVReader
}

// NewKVSessions creates a session store reading from store.
func NewKVSessions(store KVReader) *KVSessions {
	return &KVSessions{store: store}
}

// SessionKey returns the key a session token is stored under.
func SessionKey(token string) string {
	return sessionKeyPrefix + token
}

// UserID implements SessionStore.
func (s *KVSessions) UserID(ctx context.Context, token string) (string, error) {
	raw, err := s.store.Get(ctx, SessionKey(token))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("auth: session lookup: %w", err)
	}
	if len(raw) == 0 {
		return "", ErrUnauthorized
	}
	return string(raw), nil
}
