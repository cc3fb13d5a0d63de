//go:build !integration

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionStore_Defaults(t *testing.T) {
	store := NewSessionStore(SessionStoreConfig{}, nil)
	defer store.Stop()

	m := store.Metrics()
	assert.Equal(t, DefaultSessionStoreConfig().Capacity, m.Capacity)
}

func TestSessionStore_Lifecycle(t *testing.T) {
	store := NewSessionStore(SessionStoreConfig{Capacity: 16, IdleTTL: time.Minute, Shards: 2}, nil)
	defer store.Stop()

	session := store.Create()
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(session.ID())
	require.NoError(t, err)
	assert.Same(t, session, got)

	require.NoError(t, store.End(session.ID()))
	assert.Equal(t, 0, store.Len())

	_, err = store.Get(session.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, store.End(session.ID()), ErrSessionNotFound)
}

func TestSessionStore_IdleExpiry(t *testing.T) {
	store := NewSessionStore(SessionStoreConfig{Capacity: 16, IdleTTL: 40 * time.Millisecond, Shards: 1}, nil)
	defer store.Stop()

	active := store.Create()
	idle := store.Create()

	for i := 0; i < 3; i++ {
		time.Sleep(25 * time.Millisecond)
		_, err := store.Get(active.ID())
		require.NoError(t, err, "reads keep a session alive")
	}

	_, err := store.Get(idle.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_CapacityEvictsLeastRecentlyUsed(t *testing.T) {
	store := NewSessionStore(SessionStoreConfig{Capacity: 2, IdleTTL: time.Minute, Shards: 1}, nil)
	defer store.Stop()

	first := store.Create()
	second := store.Create()
	_, err := store.Get(first.ID())
	require.NoError(t, err)
	store.Create()

	_, err = store.Get(second.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get(first.ID())
	assert.NoError(t, err)
}

func TestSessionStore_SessionsAreIsolated(t *testing.T) {
	store := NewSessionStore(SessionStoreConfig{Capacity: 16, IdleTTL: time.Minute}, nil)
	defer store.Stop()

	a := store.Create()
	b := store.Create()
	a.ToggleIngredient("custom-001", beef)
	a.Commit(mustItem(t, "fixed-003"), nil)

	assert.Equal(t, 1, a.CartLen())
	assert.Equal(t, 0, b.CartLen())
	assert.Empty(t, b.Customization("custom-001").SelectedIngredients)
}
