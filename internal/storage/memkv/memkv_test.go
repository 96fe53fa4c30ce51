package memkv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keygate/keygate/internal/storage"
)

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := New()

	_, err := store.Get(ctx, "user_alice")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "user_alice", []byte("a")))

	value, err := store.Get(ctx, "user_alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), value)

	require.NoError(t, store.Delete(ctx, "user_alice"))
	assert.ErrorIs(t, store.Delete(ctx, "user_alice"), storage.ErrKeyNotFound)
	assert.Zero(t, store.Len())
}

func TestStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.NoError(t, store.Set(ctx, "k", []byte("abc")))

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	value[0] = 'x'

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestStore_KeysWithPrefix(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.NoError(t, store.Set(ctx, "user_bob", []byte("b")))
	require.NoError(t, store.Set(ctx, "user_alice", []byte("a")))
	require.NoError(t, store.Set(ctx, "session_current", []byte("s")))

	keys, err := store.KeysWithPrefix(ctx, "user_")
	require.NoError(t, err)
	assert.Equal(t, []string{"user_alice", "user_bob"}, keys)
}
