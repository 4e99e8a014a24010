package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/relatorio-inc/relatorio/internal/shared/biztime"
)

// MemoryStateStore is the single-process fallback used when redis is disabled.
type MemoryStateStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	states map[string]StateInfo
}

func NewMemoryStateStore(ttl time.Duration) *MemoryStateStore {
	return &MemoryStateStore{ttl: ttl, states: make(map[string]StateInfo)}
}

func (s *MemoryStateStore) Set(_ context.Context, state, codeVerifier string) error {
	if state == "" || codeVerifier == "" {
		return errors.New("state and code_verifier are required")
	}

	now := biztime.NowUTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.states {
		if now.Sub(v.CreatedAt) > s.ttl {
			delete(s.states, k)
		}
	}
	s.states[state] = StateInfo{CodeVerifier: codeVerifier, CreatedAt: now}
	return nil
}

func (s *MemoryStateStore) VerifyAndGet(_ context.Context, state string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, ok := s.states[state]
	if !ok {
		return "", ErrStateNotFound
	}
	delete(s.states, state)
	if biztime.NowUTC().Sub(info.CreatedAt) > s.ttl {
		return "", ErrStateNotFound
	}
	return info.CodeVerifier, nil
}
