package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDismissPersistsJSONArray(t *testing.T) {
	kv := NewMemoryStore()
	s := NewDismissedStore(kv, nil)

	require.NoError(t, s.Dismiss(context.Background(), "a1"))
	require.NoError(t, s.Dismiss(context.Background(), "a2"))

	raw, err := kv.Get(context.Background(), DismissedKey)
	require.NoError(t, err)
	assert.JSONEq(t, `["a1","a2"]`, string(raw))
}

func TestDismissIsIdempotent(t *testing.T) {
	kv := NewMemoryStore()
	s := NewDismissedStore(kv, nil)

	require.NoError(t, s.Dismiss(context.Background(), "a1"))
	require.NoError(t, s.Dismiss(context.Background(), "a1"))

	raw, err := kv.Get(context.Background(), DismissedKey)
	require.NoError(t, err)
	assert.JSONEq(t, `["a1"]`, string(raw))
}

func TestIDsOnEmptyStore(t *testing.T) {
	s := NewDismissedStore(NewMemoryStore(), nil)
	assert.Empty(t, s.IDs(context.Background()))
}

func TestIDsDegradeOnCorruptPayload(t *testing.T) {
	kv := NewMemoryStore()
	require.NoError(t, kv.Set(context.Background(), DismissedKey, []byte("{not json")))
	s := NewDismissedStore(kv, nil)

	assert.Empty(t, s.IDs(context.Background()))
}

func TestDismissKeepsSetOnWriteFailure(t *testing.T) {
	kv := NewMemoryStore()
	s := NewDismissedStore(kv, nil)
	require.NoError(t, s.Dismiss(context.Background(), "a1"))

	kv.FailWrites = errors.New("disk full")
	require.Error(t, s.Dismiss(context.Background(), "a2"))

	ids := s.IDs(context.Background())
	assert.Len(t, ids, 1)
	assert.Contains(t, ids, "a1")
}
