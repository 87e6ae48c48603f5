package repository

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testSessionConfig(ttl time.Duration) SessionStoreConfig {
	return SessionStoreConfig{
		ExpiredTime: ttl,
		NumCounters: 1000,
		MaxCost:     100,
		BufferItems: 64,
	}
}

func newTestSessionStore(t *testing.T, ttl time.Duration) *SessionStore {
	t.Helper()

	store, err := newSessionStore(testSessionConfig(ttl))
	require.NoError(t, err)
	t.Cleanup(store.Close)

	return store
}

func TestNewSessionStore(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	store, err := NewSessionStore(lc, SessionStoreParams{
		Config: testSessionConfig(time.Minute),
	})

	require.NoError(t, err)
	assert.Equal(t, time.Minute, store.expiredTime)
	assert.NotNil(t, store.engine)

	lc.RequireStart().RequireStop()
}

func TestNewSessionStore_InvalidConfig(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	_, err := NewSessionStore(lc, SessionStoreParams{
		Config: SessionStoreConfig{ExpiredTime: time.Minute},
	})

	assert.Error(t, err)
}

func TestNewSessionStoreConfig(t *testing.T) {
	t.Setenv("SESSION_TTL", "5m")

	cfg := NewSessionStoreConfig()

	assert.Equal(t, 5*time.Minute, cfg.ExpiredTime)
	assert.Equal(t, int64(100000), cfg.NumCounters)
	assert.Equal(t, int64(10000), cfg.MaxCost)
	assert.Equal(t, int64(64), cfg.BufferItems)
}

func TestSessionStore_Lifecycle(t *testing.T) {
	store := newTestSessionStore(t, time.Minute)

	assert.False(t, store.IsActive("u1"))

	activated, err := store.Activate("u1")
	require.NoError(t, err)
	assert.True(t, activated)
	assert.True(t, store.IsActive("u1"))
	assert.False(t, store.IsActive("u2"))

	activated, err = store.Activate("u1")
	require.NoError(t, err)
	assert.False(t, activated, "second activation is a no-op")

	assert.True(t, store.Deactivate("u1"))
	assert.False(t, store.IsActive("u1"))
	assert.False(t, store.Deactivate("u1"), "deactivating twice is a no-op")
}

func TestSessionStore_Expires(t *testing.T) {
	store := newTestSessionStore(t, 50*time.Millisecond)

	activated, err := store.Activate("u1")
	require.NoError(t, err)
	require.True(t, activated)

	time.Sleep(120 * time.Millisecond)

	assert.False(t, store.IsActive("u1"))
	assert.False(t, store.Deactivate("u1"))

	activated, err = store.Activate("u1")
	require.NoError(t, err)
	assert.True(t, activated, "expired user can start again")
}

func TestSessionStore_IsActiveExtendsSession(t *testing.T) {
	store := newTestSessionStore(t, 150*time.Millisecond)

	_, err := store.Activate("u1")
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		time.Sleep(60 * time.Millisecond)
		require.True(t, store.IsActive("u1"), "round %d", i)
	}
}

func TestSessionStore_ConcurrentActivate(t *testing.T) {
	store := newTestSessionStore(t, time.Minute)

	const workers = 32
	var activations atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			activated, err := store.Activate("u1")
			assert.NoError(t, err)
			if activated {
				activations.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), activations.Load())
	assert.True(t, store.IsActive("u1"))
}

func TestSessionStore_FullStoreRejectsActivation(t *testing.T) {
	tests := []struct {
		name          string
		ttl           time.Duration
		checkSessions bool
		release       func(*testing.T, *SessionStore)
	}{
		{
			name:          "deactivation frees a slot",
			ttl:           time.Minute,
			checkSessions: true,
			release: func(t *testing.T, store *SessionStore) {
				require.True(t, store.Deactivate("u0"))
			},
		},
		{
			name: "expiry frees every slot",
			ttl:  80 * time.Millisecond,
			release: func(t *testing.T, store *SessionStore) {
				time.Sleep(160 * time.Millisecond)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testSessionConfig(tt.ttl)
			cfg.MaxCost = 3
			store, err := newSessionStore(cfg)
			require.NoError(t, err)
			t.Cleanup(store.Close)

			for i := 0; i < 3; i++ {
				activated, err := store.Activate(fmt.Sprintf("u%d", i))
				require.NoError(t, err)
				require.True(t, activated)
			}

			activated, err := store.Activate("u3")
			assert.ErrorIs(t, err, ErrSessionStoreFull)
			assert.False(t, activated)
			assert.False(t, store.IsActive("u3"))

			if tt.checkSessions {
				for i := 0; i < 3; i++ {
					assert.True(t, store.IsActive(fmt.Sprintf("u%d", i)), "u%d keeps its session", i)
				}
			}

			tt.release(t, store)

			activated, err = store.Activate("u3")
			require.NoError(t, err)
			assert.True(t, activated)
			assert.True(t, store.IsActive("u3"))
		})
	}
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "bot:session:0qkl9pdk", sessionKey("0qkl9pdk"))
}
