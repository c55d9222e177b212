// Package compression provides gzip helpers for stored clipboard payloads.
// Small payloads are not worth the overhead; callers gate on Threshold.
package compression

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// Threshold is the payload size in bytes below which compression is skipped.
const Threshold = 1024

// Compress gzips data. The caller decides whether data is large enough to
// bother; Compress itself does not check Threshold.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize compressed payload: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func Decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read compressed payload: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}
	return out, nil
}
