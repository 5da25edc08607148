package storage

import (
	"context"
	"testing"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStore_SetAndGet(t *testing.T) {
	store := NewFromBucket(memblob.OpenBucket(nil))
	defer store.Close()

	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "@keyword", []byte("Noodle soup")))

	value, err := store.Get(ctx, "@keyword")
	require.NoError(t, err)
	assert.Equal(t, "Noodle soup", string(value))
}

func TestBlobStore_SetOverwrites(t *testing.T) {
	store := NewFromBucket(memblob.OpenBucket(nil))
	defer store.Close()

	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "@keyword", []byte("first")))
	require.NoError(t, store.Set(ctx, "@keyword", []byte("second")))

	value, err := store.Get(ctx, "@keyword")
	require.NoError(t, err)
	assert.Equal(t, "second", string(value))
}

func TestBlobStore_GetMissingKey(t *testing.T) {
	store := NewFromBucket(memblob.OpenBucket(nil))
	defer store.Close()

	value, err := store.Get(context.Background(), "@account")
	assert.ErrorIs(t, err, service.ErrKeyNotFound)
	assert.Nil(t, value)
}

func TestOpen_FileBucket(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := Open(ctx, "file://"+dir)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(ctx, "@account", []byte(`{"token":"abc"}`)))

	value, err := store.Get(ctx, "@account")
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"abc"}`, string(value))
}

func TestOpen_UnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "nope://bucket")
	assert.Error(t, err)
}
