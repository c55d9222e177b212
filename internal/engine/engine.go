// Package engine implements the clipboard capture-and-history engine: it
// polls the pasteboard, classifies and deduplicates captures, enforces the
// retention cap, and debounces writes to the persistent store.
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clipvault/clipvault/internal/classify"
	"github.com/clipvault/clipvault/internal/config"
	"github.com/clipvault/clipvault/internal/pasteboard"
	"github.com/clipvault/clipvault/internal/storage"
	"github.com/clipvault/clipvault/internal/thumbnail"
	"github.com/clipvault/clipvault/internal/types"
)

// ErrNotFound is returned by Copy when no entry has the requested id.
var ErrNotFound = errors.New("no such history entry")

// Engine owns the in-memory history. All mutation goes through its methods;
// the capture loop and user-initiated operations share the same mutex, and
// the debounced persist reads a snapshot so it never blocks mutations.
type Engine struct {
	cfg    *config.Config
	source pasteboard.Source
	store  storage.Store
	logger *zap.Logger

	mu       sync.Mutex
	entries  []*types.Entry
	lastSeen lastSeen

	persistMu    sync.Mutex
	persistTimer *time.Timer
	persistGen   uint64

	// flushMu serializes writes to the store so a stalled write can never
	// land after a fresher one.
	flushMu sync.Mutex

	cancel context.CancelFunc
	wg     sync.WaitGroup

	// now is swappable for tests.
	now func() time.Time
}

// New creates an engine. The store may already contain a history; Start
// loads it.
func New(cfg *config.Config, source pasteboard.Source, store storage.Store, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:    cfg,
		source: source,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Start loads the persisted history and launches the capture loop. A load
// failure is downgraded to an empty history; the engine always starts.
func (e *Engine) Start(ctx context.Context) {
	entries, err := e.store.Load()
	if err != nil {
		e.logger.Warn("failed to load history, starting empty", zap.Error(err))
		entries = nil
	}

	e.mu.Lock()
	e.entries = entries
	e.mu.Unlock()

	e.logger.Info("history engine started",
		zap.Int("entries", len(entries)),
		zap.Duration("polling_interval", e.cfg.PollingInterval()))

	ctx, e.cancel = context.WithCancel(ctx)
	e.wg.Add(1)
	go e.captureLoop(ctx)
}

// Stop halts the capture loop and flushes any pending debounced write.
func (e *Engine) Stop() {
	if e.cancel != nil {
		e.cancel()
	}
	e.wg.Wait()

	e.persistMu.Lock()
	pending := e.persistTimer != nil && e.persistTimer.Stop()
	e.persistTimer = nil
	e.persistMu.Unlock()

	if pending {
		e.persist()
	}

	e.logger.Info("history engine stopped")
}

// InsertText records new text content at the front of the history. Empty
// content is ignored. Any prior entries with identical text are removed, so
// re-copying a value moves it to the front with a fresh timestamp.
func (e *Engine) InsertText(content string) {
	if content == "" {
		return
	}

	kind := classify.Classify(content)
	entry := &types.Entry{
		ID:        uuid.New().String(),
		Kind:      kind,
		Text:      content,
		CreatedAt: e.now(),
	}

	e.mu.Lock()
	kept := e.entries[:0]
	for _, existing := range e.entries {
		// Payload equality keeps image entries safe: they share the
		// placeholder label but never match a text entry's kind.
		if existing.Equal(entry) {
			continue
		}
		kept = append(kept, existing)
	}
	e.entries = append([]*types.Entry{entry}, kept...)
	e.truncateLocked()
	e.mu.Unlock()

	e.logger.Debug("text entry inserted",
		zap.String("id", entry.ID),
		zap.String("kind", string(kind)))

	e.schedulePersist()
}

// InsertImage records a new image capture. The raw bytes are reduced to a
// thumbnail first; when reduction fails the raw bytes are stored as-is
// rather than losing the capture. A capture arriving within the dedup
// window of a front image entry is suppressed as a duplicate.
func (e *Engine) InsertImage(raw []byte) {
	if len(raw) == 0 {
		return
	}

	data, err := thumbnail.Reduce(raw, e.cfg.Thumbnail.MaxDimension, e.cfg.Thumbnail.Quality)
	if err != nil {
		e.logger.Warn("thumbnail reduction failed, storing raw bytes",
			zap.Int("raw_size", len(raw)),
			zap.Error(err))
		data = raw
	}

	entry := &types.Entry{
		ID:        uuid.New().String(),
		Kind:      types.KindImage,
		Text:      types.ImagePlaceholder,
		ImageData: data,
		CreatedAt: e.now(),
	}

	e.mu.Lock()
	if len(e.entries) > 0 {
		front := e.entries[0]
		if front.IsImage() && entry.CreatedAt.Sub(front.CreatedAt) < e.cfg.ImageDedupWindow() {
			e.mu.Unlock()
			e.logger.Debug("image capture suppressed inside dedup window")
			return
		}
	}
	e.entries = append([]*types.Entry{entry}, e.entries...)
	e.truncateLocked()
	e.mu.Unlock()

	e.logger.Debug("image entry inserted",
		zap.String("id", entry.ID),
		zap.Int("thumbnail_size", len(data)))

	e.schedulePersist()
}

// Delete removes the entry with the given id. Deleting an unknown id is a
// no-op and reports false.
func (e *Engine) Delete(id string) bool {
	e.mu.Lock()
	removed := false
	kept := e.entries[:0]
	for _, entry := range e.entries {
		if entry.ID == id {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}
	e.entries = kept
	e.mu.Unlock()

	if removed {
		e.logger.Debug("entry deleted", zap.String("id", id))
		e.schedulePersist()
	}
	return removed
}

// Clear empties the history.
func (e *Engine) Clear() {
	e.mu.Lock()
	e.entries = nil
	e.mu.Unlock()

	e.logger.Info("history cleared")
	e.schedulePersist()
}

// Copy writes an entry's payload back to the pasteboard and updates the
// capture loop's last-seen state so the write is not re-captured as new
// content on the next tick.
func (e *Engine) Copy(id string) error {
	e.mu.Lock()
	var entry *types.Entry
	for _, candidate := range e.entries {
		if candidate.ID == id {
			entry = candidate
			break
		}
	}
	e.mu.Unlock()

	if entry == nil {
		return ErrNotFound
	}

	if entry.IsImage() {
		if err := e.source.WriteImage(entry.ImageData); err != nil {
			return err
		}
		// The pasteboard carries image data as PNG, so the next read will
		// observe the PNG form of the payload, not the stored bytes.
		e.mu.Lock()
		e.lastSeen.markImage(pasteboard.AsPNG(entry.ImageData))
		e.mu.Unlock()
		return nil
	}

	if err := e.source.WriteText(entry.Text); err != nil {
		return err
	}
	e.mu.Lock()
	e.lastSeen.markText(entry.Text)
	e.mu.Unlock()
	return nil
}

// List returns a snapshot of the history, newest first.
func (e *Engine) List() []*types.Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*types.Entry, len(e.entries))
	copy(out, e.entries)
	return out
}

// Len returns the current history length.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.entries)
}

// truncateLocked enforces the retention cap. Caller holds e.mu.
func (e *Engine) truncateLocked() {
	if limit := e.cfg.MaxEntries; limit > 0 && len(e.entries) > limit {
		evicted := len(e.entries) - limit
		e.entries = e.entries[:limit]
		e.logger.Debug("history truncated", zap.Int("evicted", evicted))
	}
}

// schedulePersist arms the debounced write, replacing any pending one so at
// most a single write timer is active at a time. Each arm bumps the
// generation; a fired timer whose generation has been superseded skips its
// write and leaves persistence to the newer timer.
func (e *Engine) schedulePersist() {
	e.persistMu.Lock()
	defer e.persistMu.Unlock()

	if e.persistTimer != nil {
		e.persistTimer.Stop()
	}
	e.persistGen++
	gen := e.persistGen
	e.persistTimer = time.AfterFunc(e.cfg.DebounceInterval(), func() {
		e.persistCurrent(gen)
	})
}

// persistCurrent writes the history unless a newer write has been scheduled
// since this one was armed.
func (e *Engine) persistCurrent(gen uint64) {
	e.persistMu.Lock()
	superseded := gen != e.persistGen
	e.persistMu.Unlock()
	if superseded {
		return
	}
	e.persist()
}

// persist writes a snapshot of the history to the store. Write failures are
// logged and superseded by the next scheduled write, never retried inline.
func (e *Engine) persist() {
	e.flushMu.Lock()
	defer e.flushMu.Unlock()

	snapshot := e.List()
	if err := e.store.Save(snapshot); err != nil {
		e.logger.Error("failed to persist history", zap.Error(err))
		return
	}
	e.logger.Debug("history persisted", zap.Int("entries", len(snapshot)))
}
