// Package storage persists the clipboard history.
package storage

import (
	"errors"

	"github.com/clipvault/clipvault/internal/types"
)

// ErrMalformedData indicates the stored history could not be decoded.
// Callers treat it as "start with an empty history".
var ErrMalformedData = errors.New("stored history is malformed")

// Store persists an ordered history snapshot. Save replaces the whole
// history; Load returns it in the same newest-first order it was saved in.
type Store interface {
	Load() ([]*types.Entry, error)
	Save(entries []*types.Entry) error
	Close() error
}
