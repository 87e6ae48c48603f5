package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

const (
	sessionKeyPattern = "bot:session:%s"
)

// ErrSessionStoreFull is returned by Activate when SESSION_MAX_COST sessions
// are already active. Existing sessions are never evicted to make room.
var ErrSessionStoreFull = errors.New("session store is full")

//go:generate mockgen -package mockrepository -destination ./mock/mocksession.go . SessionProvider
type SessionProvider interface {
	Activate(userID string) (bool, error)
	Deactivate(userID string) bool
	IsActive(userID string) bool
}

var _ SessionProvider = (*SessionStore)(nil)

// SessionStore is the set of users talking to the bot. Entries expire after
// the configured TTL unless the user keeps writing.
type SessionStore struct {
	mu          sync.Mutex
	engine      *ristretto.Cache[string, time.Time]
	expiredTime time.Duration
	maxSessions int
	// deadlines mirrors the engine's keys so the session count is exact;
	// ristretto would otherwise evict live sessions once MaxCost is reached.
	deadlines map[string]time.Time
}

type SessionStoreParams struct {
	fx.In

	Config SessionStoreConfig
}

func NewSessionStore(lc fx.Lifecycle, params SessionStoreParams) (*SessionStore, error) {
	store, err := newSessionStore(params.Config)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			store.Close()
			return nil
		},
	})

	return store, nil
}

func newSessionStore(cfg SessionStoreConfig) (*SessionStore, error) {
	engine, err := ristretto.NewCache(&ristretto.Config[string, time.Time]{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		// one session costs one unit, MaxCost is the session limit
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}

	return &SessionStore{
		engine:      engine,
		expiredTime: cfg.ExpiredTime,
		maxSessions: int(cfg.MaxCost),
		deadlines:   make(map[string]time.Time),
	}, nil
}

type SessionStoreConfig struct {
	ExpiredTime time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	NumCounters int64         `envconfig:"SESSION_NUM_COUNTERS" default:"100000"`
	MaxCost     int64         `envconfig:"SESSION_MAX_COST" default:"10000"`
	BufferItems int64         `envconfig:"SESSION_BUFFER_ITEMS" default:"64"`
}

func NewSessionStoreConfig() SessionStoreConfig {
	var cfg SessionStoreConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

// Activate starts a session. It returns false when the user already had one
// and ErrSessionStoreFull when no slot is free.
func (s *SessionStore) Activate(userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey(userID)
	if _, found := s.engine.Get(key); found {
		return false, nil
	}
	s.forget(key)

	if len(s.deadlines) >= s.maxSessions {
		s.purgeExpired(time.Now())
	}
	if len(s.deadlines) >= s.maxSessions {
		return false, ErrSessionStoreFull
	}

	now := time.Now()
	if !s.engine.SetWithTTL(key, now, 1, s.expiredTime) {
		return false, fmt.Errorf("session for user '%s' was rejected by the store", userID)
	}
	s.engine.Wait()
	s.deadlines[key] = now.Add(s.expiredTime)

	return true, nil
}

// Deactivate ends a session. It returns false when there was none.
func (s *SessionStore) Deactivate(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey(userID)
	_, found := s.engine.Get(key)
	s.forget(key)

	return found
}

// IsActive reports whether the user has a session and extends it.
func (s *SessionStore) IsActive(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey(userID)
	startedAt, found := s.engine.Get(key)
	if !found {
		s.forget(key)
		return false
	}

	s.engine.SetWithTTL(key, startedAt, 1, s.expiredTime)
	s.engine.Wait()
	s.deadlines[key] = time.Now().Add(s.expiredTime)

	return true
}

// forget drops a session from both the engine and the count.
func (s *SessionStore) forget(key string) {
	if _, ok := s.deadlines[key]; !ok {
		return
	}
	delete(s.deadlines, key)
	s.engine.Del(key)
	s.engine.Wait()
}

func (s *SessionStore) purgeExpired(now time.Time) {
	for key, deadline := range s.deadlines {
		if !now.Before(deadline) {
			s.forget(key)
		}
	}
}

func (s *SessionStore) Close() {
	s.engine.Close()
}

func sessionKey(userID string) string {
	return fmt.Sprintf(sessionKeyPattern, userID)
}
