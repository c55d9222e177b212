package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/clipvault/clipvault/internal/storage"
	"github.com/clipvault/clipvault/internal/types"
)

// openStore opens the history database, creating the data directory on
// first use.
func openStore() (*storage.BoltStore, error) {
	if err := os.MkdirAll(cfg.Paths.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return storage.NewBoltStore(cfg.Paths.DBFile, logger)
}

// entryAtIndex resolves a positional index argument (0 = newest) against a
// history snapshot.
func entryAtIndex(entries []*types.Entry, arg string) (*types.Entry, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid index %q", arg)
	}
	if index < 0 || index >= len(entries) {
		return nil, fmt.Errorf("index %d out of range (history has %d entries)", index, len(entries))
	}
	return entries[index], nil
}
