package types

import (
	"bytes"
	"time"
)

// Kind classifies what a history entry holds.
type Kind string

const (
	KindText  Kind = "text"
	KindURL   Kind = "url"
	KindEmail Kind = "email"
	KindImage Kind = "image"
)

// ImagePlaceholder is the text content recorded for image entries.
const ImagePlaceholder = "Image"

// Entry is one recorded clipboard capture. Entries are immutable after
// creation: the engine replaces them, it never edits them in place.
//
// The json tags define the persisted record format and must not change;
// stored histories round-trip through these exact field names.
type Entry struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"type"`
	Text      string    `json:"content"`
	ImageData []byte    `json:"imageData,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}

// IsImage reports whether the entry's payload is a thumbnail rather than text.
func (e *Entry) IsImage() bool {
	return e.Kind == KindImage
}

// Equal compares two entries by payload, ignoring identity and timestamp.
func (e *Entry) Equal(other *Entry) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Kind == other.Kind && e.Text == other.Text && bytes.Equal(e.ImageData, other.ImageData)
}
