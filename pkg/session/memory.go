package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps sessions in process memory. Suitable for single-node
// deployments and tests; sessions do not survive a restart.
type MemoryStore struct {
	c *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{c: cache.New(ttl, 2*ttl)}
}

func (s *MemoryStore) Create(_ context.Context, userID uuid.UUID) (string, error) {
	token := newToken()
	s.c.Set(token, userID, cache.DefaultExpiration)
	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (uuid.UUID, error) {
	val, ok := s.c.Get(token)
	if !ok {
		return uuid.Nil, ErrNotFound
	}
	return val.(uuid.UUID), nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.c.Delete(token)
	return nil
}
