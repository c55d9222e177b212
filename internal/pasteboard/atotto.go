package pasteboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// textSource is a text-only fallback backed by atotto/clipboard. Image
// captures are invisible through this backend.
type textSource struct{}

func newTextSource() Source {
	return &textSource{}
}

func (s *textSource) ReadSnapshot() (*Snapshot, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read clipboard: %w", err)
	}
	return &Snapshot{Text: text}, nil
}

func (s *textSource) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

func (s *textSource) WriteImage(data []byte) error {
	return ErrImageUnsupported
}
