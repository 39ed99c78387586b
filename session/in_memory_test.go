package session

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/taskmesh/core"
)

func TestInMemoryStore_GetCreatesLazily(t *testing.T) {
	store := NewInMemoryStore()

	sess, err := store.Get("sess-1")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "sess-1", sess.ID)
}

func TestInMemoryStore_GetReturnsLiveSession(t *testing.T) {
	store := NewInMemoryStore()

	first, err := store.Get("sess-1")
	require.NoError(t, err)
	first.AppendEntry(core.NewUserEntry("hello"))

	second, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Len(t, second.Entries(), 1)
}

func TestInMemoryStore_CreateOverwrites(t *testing.T) {
	store := NewInMemoryStore()

	sess, err := store.Get("sess-1")
	require.NoError(t, err)
	sess.AppendEntry(core.NewUserEntry("hello"))

	fresh, err := store.Create("sess-1")
	require.NoError(t, err)
	assert.Empty(t, fresh.Entries())

	got, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Empty(t, got.Entries())
}

func TestNewID(t *testing.T) {
	id := NewID()
	assert.Regexp(t, regexp.MustCompile(`^\d{8}_\d{6}$`), id)
}
