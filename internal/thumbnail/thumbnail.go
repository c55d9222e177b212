// Package thumbnail reduces raw captured image blobs to small JPEG
// thumbnails before they enter the history.
package thumbnail

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	// Pasteboard snapshots arrive in whatever bitmap encoding the platform
	// favors; register the common ones so image.Decode can sniff them.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/nfnt/resize"
)

const (
	// DefaultMaxDimension bounds the longer edge of a thumbnail in pixels.
	DefaultMaxDimension = 360

	// DefaultQuality is the JPEG quality factor in the 0..1 range.
	DefaultQuality = 0.65
)

// ErrDecodeFailed indicates the raw bytes could not be decoded as an image.
var ErrDecodeFailed = errors.New("image decode failed")

// Reduce decodes raw image bytes, scales them so the longer edge does not
// exceed maxDimension (never upscaling), and re-encodes as JPEG at the given
// quality. Callers that cannot afford to lose a capture should fall back to
// storing the raw bytes when Reduce fails.
func Reduce(raw []byte, maxDimension uint, quality float64) ([]byte, error) {
	if maxDimension == 0 {
		maxDimension = DefaultMaxDimension
	}
	if quality <= 0 || quality > 1 {
		quality = DefaultQuality
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	// Thumbnail preserves aspect ratio and caps the scale factor at 1.0,
	// so small images pass through at their original size.
	scaled := resize.Thumbnail(maxDimension, maxDimension, img, resize.Lanczos3)

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: int(quality * 100)}
	if err := jpeg.Encode(&buf, scaled, opts); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}
