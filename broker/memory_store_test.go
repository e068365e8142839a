package broker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[string]()
	require.NoError(t, store.Put(ctx, Pending[string]{ID: "r1", Mode: Retriever, Data: "a"}))
	require.NoError(t, store.Put(ctx, Pending[string]{ID: "r2", Mode: PhoneHint, Data: "b"}))

	got, ok, err := store.Get(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", got.Data)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	completed, ok, err := store.Complete(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Retriever, completed.Mode)
	_, ok, _ = store.Complete(ctx, "r1")
	assert.False(t, ok, "second resolution must not observe the entry")
	_, ok, _ = store.Cancel(ctx, "r1")
	assert.False(t, ok)

	ids, err := store.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"r2"}, ids)
	list, _ = store.List(ctx)
	assert.Empty(t, list)
}
