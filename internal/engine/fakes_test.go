package engine

import (
	"sync"
	"time"

	"github.com/clipvault/clipvault/internal/config"
	"github.com/clipvault/clipvault/internal/pasteboard"
	"github.com/clipvault/clipvault/internal/types"
)

// fakeSource is an in-memory pasteboard for tests.
type fakeSource struct {
	mu            sync.Mutex
	snap          *pasteboard.Snapshot
	readErr       error
	writtenText   []string
	writtenImages [][]byte
}

func (f *fakeSource) ReadSnapshot() (*pasteboard.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	if f.snap == nil {
		return &pasteboard.Snapshot{}, nil
	}
	snap := *f.snap
	return &snap, nil
}

func (f *fakeSource) WriteText(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writtenText = append(f.writtenText, text)
	return nil
}

func (f *fakeSource) WriteImage(data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writtenImages = append(f.writtenImages, data)
	return nil
}

func (f *fakeSource) set(snap *pasteboard.Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap = snap
}

func (f *fakeSource) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readErr = err
}

// fakeStore is an in-memory history store for tests.
type fakeStore struct {
	mu          sync.Mutex
	saved       [][]*types.Entry
	loadEntries []*types.Entry
	loadErr     error
	saveErr     error

	// saveHook, when set before the engine starts mutating, runs at the top
	// of every Save; tests use it to stall a write in flight.
	saveHook func()
}

func (f *fakeStore) Load() ([]*types.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.loadEntries, nil
}

func (f *fakeStore) Save(entries []*types.Entry) error {
	if f.saveHook != nil {
		f.saveHook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	snapshot := make([]*types.Entry, len(entries))
	copy(snapshot, entries)
	f.saved = append(f.saved, snapshot)
	return nil
}

func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saved)
}

func (f *fakeStore) lastSaved() []*types.Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.saved) == 0 {
		return nil
	}
	return f.saved[len(f.saved)-1]
}

// fakeClock drives the engine's injectable time source.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func testConfig() *config.Config {
	return &config.Config{
		MaxEntries:         100,
		PollingIntervalMS:  10,
		DebounceIntervalMS: 10,
		ImageDedupWindowMS: 1000,
		Thumbnail: config.ThumbnailConfig{
			MaxDimension: 360,
			Quality:      0.65,
		},
	}
}

func newTestEngine(cfg *config.Config) (*Engine, *fakeSource, *fakeStore, *fakeClock) {
	if cfg == nil {
		cfg = testConfig()
	}
	source := &fakeSource{}
	store := &fakeStore{}
	clock := newFakeClock()

	eng := New(cfg, source, store, nil)
	eng.now = clock.now
	return eng, source, store, clock
}

func entryTexts(entries []*types.Entry) []string {
	texts := make([]string, len(entries))
	for i, entry := range entries {
		texts[i] = entry.Text
	}
	return texts
}
