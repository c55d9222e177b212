// Package pasteboard abstracts the system clipboard behind a small Source
// interface. Two backends exist: the native one (golang.design/x/clipboard)
// which handles both text and image data, and a text-only fallback
// (atotto/clipboard) for environments where the native backend cannot
// initialize.
package pasteboard

import (
	"errors"

	"go.uber.org/zap"
)

// ErrImageUnsupported is returned by backends that cannot carry image data.
var ErrImageUnsupported = errors.New("pasteboard backend does not support image content")

// Snapshot is one raw read of the pasteboard. Image takes priority over Text
// when both are present.
type Snapshot struct {
	Text  string
	Image []byte
}

// Empty reports whether the snapshot carries no usable content.
func (s *Snapshot) Empty() bool {
	return s == nil || (s.Text == "" && len(s.Image) == 0)
}

// Source is the boundary to the OS pasteboard.
type Source interface {
	// ReadSnapshot returns the current pasteboard contents. An inaccessible
	// pasteboard is an error; callers treat it as an empty snapshot.
	ReadSnapshot() (*Snapshot, error)

	// WriteText replaces the pasteboard contents with text.
	WriteText(text string) error

	// WriteImage replaces the pasteboard contents with image bytes.
	WriteImage(data []byte) error
}

// New returns the best available Source: the native backend when it can
// initialize, otherwise the text-only fallback.
func New(logger *zap.Logger) Source {
	if logger == nil {
		logger = zap.NewNop()
	}

	src, err := newNativeSource()
	if err != nil {
		logger.Warn("native pasteboard unavailable, falling back to text-only backend",
			zap.Error(err))
		return newTextSource()
	}

	return src
}
