package pasteboard

import (
	"bytes"
	"image"
	"image/png"

	// Stored payloads are usually JPEG thumbnails, but the raw-bytes fallback
	// can carry anything the platform produced; register the common decoders.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// AsPNG converts image bytes to PNG, the encoding the native pasteboard
// carries image data in. PNG input passes through unchanged; bytes that
// cannot be decoded are returned as-is so a payload is never lost.
func AsPNG(data []byte) []byte {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil || format == "png" {
		return data
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return data
	}
	return buf.Bytes()
}
