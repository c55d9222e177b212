package pasteboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

// nativeSource reads and writes the pasteboard via golang.design/x/clipboard,
// which exposes image data as PNG bytes alongside UTF-8 text.
type nativeSource struct{}

func newNativeSource() (Source, error) {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize clipboard: %w", initErr)
	}
	return &nativeSource{}, nil
}

func (s *nativeSource) ReadSnapshot() (*Snapshot, error) {
	snap := &Snapshot{
		Image: clipboard.Read(clipboard.FmtImage),
	}
	if text := clipboard.Read(clipboard.FmtText); len(text) > 0 {
		snap.Text = string(text)
	}
	return snap, nil
}

func (s *nativeSource) WriteText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (s *nativeSource) WriteImage(data []byte) error {
	// FmtImage payloads are PNG-encoded; stored thumbnails are JPEG.
	clipboard.Write(clipboard.FmtImage, AsPNG(data))
	return nil
}
