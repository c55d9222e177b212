package storage

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/clipvault/clipvault/internal/types"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()

	store, err := NewBoltStore(filepath.Join(t.TempDir(), "history.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBoltStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	entries := []*types.Entry{
		{
			ID:        "id-newest",
			Kind:      types.KindURL,
			Text:      "https://example.com",
			CreatedAt: time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        "id-image",
			Kind:      types.KindImage,
			Text:      types.ImagePlaceholder,
			ImageData: []byte{0xFF, 0xD8, 0xFF, 0x01, 0x02},
			CreatedAt: time.Date(2025, 6, 2, 10, 29, 0, 0, time.UTC),
		},
		{
			ID:        "id-oldest",
			Kind:      types.KindEmail,
			Text:      "user@example.com",
			CreatedAt: time.Date(2025, 6, 2, 10, 28, 0, 0, time.UTC),
		},
	}

	require.NoError(t, store.Save(entries))

	loaded, err := store.Load()
	require.NoError(t, err)

	if diff := cmp.Diff(entries, loaded); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestBoltStoreLoadEmpty(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestBoltStoreSaveReplacesHistory(t *testing.T) {
	store := newTestStore(t)

	first := []*types.Entry{
		{ID: "a", Kind: types.KindText, Text: "first", CreatedAt: time.Now().UTC()},
		{ID: "b", Kind: types.KindText, Text: "second", CreatedAt: time.Now().UTC()},
	}
	require.NoError(t, store.Save(first))

	second := []*types.Entry{
		{ID: "c", Kind: types.KindText, Text: "third", CreatedAt: time.Now().UTC()},
	}
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "c", loaded[0].ID)
}

func TestBoltStoreCompressesLargeImagePayloads(t *testing.T) {
	store := newTestStore(t)

	// Highly compressible payload well above the compression threshold.
	payload := bytes.Repeat([]byte{0xAB}, 64*1024)
	entries := []*types.Entry{
		{
			ID:        "big-image",
			Kind:      types.KindImage,
			Text:      types.ImagePlaceholder,
			ImageData: payload,
			CreatedAt: time.Now().UTC(),
		},
	}

	require.NoError(t, store.Save(entries))

	// The stored record should be much smaller than the raw payload.
	var storedSize int
	err := store.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(historyBucket))
		return b.ForEach(func(k, v []byte) error {
			storedSize += len(v)
			return nil
		})
	})
	require.NoError(t, err)
	assert.Less(t, storedSize, len(payload)/2)

	// And the payload must come back intact.
	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.True(t, bytes.Equal(payload, loaded[0].ImageData))
}

func TestBoltStoreMalformedData(t *testing.T) {
	store := newTestStore(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(historyBucket))
		return b.Put(itob(0), []byte("{not json"))
	})
	require.NoError(t, err)

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrMalformedData)
}
