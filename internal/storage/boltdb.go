package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/clipvault/clipvault/internal/types"
	"github.com/clipvault/clipvault/pkg/compression"
)

const historyBucket = "history"

// record is the on-disk shape of one entry. It mirrors types.Entry's
// persisted fields plus a storage-only compression flag for the image
// payload; the in-memory model never sees compressed bytes.
type record struct {
	ID         string     `json:"id"`
	Kind       types.Kind `json:"type"`
	Text       string     `json:"content"`
	ImageData  []byte     `json:"imageData,omitempty"`
	CreatedAt  time.Time  `json:"timestamp"`
	Compressed bool       `json:"compressed,omitempty"`
}

// BoltStore persists the history in a single BoltDB bucket. Keys are
// big-endian positions, so cursor order is history order (newest first).
type BoltStore struct {
	db     *bbolt.DB
	logger *zap.Logger
}

// NewBoltStore opens (or creates) the database at path.
func NewBoltStore(path string, logger *zap.Logger) (*BoltStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(historyBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	logger.Debug("bolt store opened", zap.String("db_path", path))

	return &BoltStore{db: db, logger: logger}, nil
}

// Save replaces the stored history with the given snapshot.
func (s *BoltStore) Save(entries []*types.Entry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(historyBucket)); err != nil {
			return fmt.Errorf("failed to reset bucket: %w", err)
		}
		b, err := tx.CreateBucket([]byte(historyBucket))
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		for i, entry := range entries {
			rec, err := encodeRecord(entry)
			if err != nil {
				return err
			}
			if err := b.Put(itob(uint64(i)), rec); err != nil {
				return fmt.Errorf("failed to store entry %s: %w", entry.ID, err)
			}
		}

		s.logger.Debug("history persisted", zap.Int("entries", len(entries)))
		return nil
	})
}

// Load returns the stored history, newest first. A history that cannot be
// decoded yields ErrMalformedData rather than a partial result.
func (s *BoltStore) Load() ([]*types.Entry, error) {
	var entries []*types.Entry

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(historyBucket))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			entry, err := decodeRecord(v)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrMalformedData, err)
			}
			entries = append(entries, entry)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Close releases the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func encodeRecord(entry *types.Entry) ([]byte, error) {
	rec := record{
		ID:        entry.ID,
		Kind:      entry.Kind,
		Text:      entry.Text,
		ImageData: entry.ImageData,
		CreatedAt: entry.CreatedAt,
	}

	if len(rec.ImageData) >= compression.Threshold {
		compressed, err := compression.Compress(rec.ImageData)
		if err != nil {
			return nil, fmt.Errorf("failed to compress entry %s: %w", entry.ID, err)
		}
		// Only keep the compressed form when it actually wins.
		if len(compressed) < len(rec.ImageData) {
			rec.ImageData = compressed
			rec.Compressed = true
		}
	}

	encoded, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entry %s: %w", entry.ID, err)
	}
	return encoded, nil
}

func decodeRecord(data []byte) (*types.Entry, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}

	imageData := rec.ImageData
	if rec.Compressed {
		decompressed, err := compression.Decompress(imageData)
		if err != nil {
			return nil, err
		}
		imageData = decompressed
	}

	return &types.Entry{
		ID:        rec.ID,
		Kind:      rec.Kind,
		Text:      rec.Text,
		ImageData: imageData,
		CreatedAt: rec.CreatedAt,
	}, nil
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
