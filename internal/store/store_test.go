package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MemoryOnly(t *testing.T) {
	s, err := NewStore("")
	require.NoError(t, err)
	defer s.Close()

	assert.False(t, s.Persistent())

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("k", []byte("v")))
	v, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), v)
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bookfinder.db")

	s, err := NewStore(path)
	require.NoError(t, err)
	assert.True(t, s.Persistent())
	require.NoError(t, s.Set("book-finder-favorites", []byte(`[{"id":"a"}]`)))
	require.NoError(t, s.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get("book-finder-favorites")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"a"}]`, string(v))
}

func TestStore_ValuesAreCopied(t *testing.T) {
	s := NewMemoryStore()

	in := []byte("abc")
	require.NoError(t, s.Set("k", in))
	in[0] = 'z'

	out, _, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))

	out[1] = 'z'
	again, _, _ := s.Get("k")
	assert.Equal(t, "abc", string(again))
}
