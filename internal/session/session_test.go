package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	s := NewStore()

	token := s.Create(1, "Alice")
	require.NotEmpty(t, token)

	sess, ok := s.Get(token)
	require.True(t, ok)
	assert.Equal(t, 1, sess.UserID)
	assert.Equal(t, "Alice", sess.Name)
}

func TestSessionsDoNotCollide(t *testing.T) {
	s := NewStore()

	tokenA := s.Create(1, "Alice")
	tokenB := s.Create(2, "Bob")
	require.NotEqual(t, tokenA, tokenB)

	a, ok := s.Get(tokenA)
	require.True(t, ok)
	b, ok := s.Get(tokenB)
	require.True(t, ok)
	assert.Equal(t, 1, a.UserID)
	assert.Equal(t, 2, b.UserID)

	// Tearing one down leaves the other intact.
	s.Destroy(tokenA)
	_, ok = s.Get(tokenA)
	assert.False(t, ok)
	_, ok = s.Get(tokenB)
	assert.True(t, ok)
}

func TestDestroyUnknownToken(t *testing.T) {
	s := NewStore()
	s.Destroy("no-such-token")

	_, ok := s.Get("no-such-token")
	assert.False(t, ok)
}
