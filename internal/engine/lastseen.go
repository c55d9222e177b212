package engine

import (
	"crypto/sha256"
	"encoding/hex"
)

// lastSeen tracks the most recently observed raw pasteboard state, one slot
// per content kind. Keeping the slots separate means a text comparison can
// never be made against stale image state or vice versa; images are compared
// by content hash so large captures are not retained.
type lastSeen struct {
	text      string
	hasText   bool
	imageHash string
}

func (l *lastSeen) markText(text string) {
	l.text = text
	l.hasText = true
}

func (l *lastSeen) markImage(data []byte) {
	l.imageHash = hashBytes(data)
}

func (l *lastSeen) sameText(text string) bool {
	return l.hasText && l.text == text
}

func (l *lastSeen) sameImage(data []byte) bool {
	return l.imageHash != "" && l.imageHash == hashBytes(data)
}

func hashBytes(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
