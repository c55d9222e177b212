package format

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clipvault/clipvault/internal/types"
)

func TestFormatRelativeTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"seconds ago", now.Add(-30 * time.Second), "just now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"hours ago", now.Add(-3 * time.Hour), "3 hours ago"},
		{"days ago", now.Add(-48 * time.Hour), "2 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRelativeTime(tt.t))
		})
	}
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", FormatSize(512))
	assert.Equal(t, "1.0 KB", FormatSize(1024))
	assert.Equal(t, "1.5 MB", FormatSize(3*512*1024))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "truncat...", TruncateText("truncated text here", 10))
	assert.Equal(t, "no limit applied", TruncateText("no limit applied", 0))
}

func TestFormatEntryListEmpty(t *testing.T) {
	f := New(Options{})
	assert.Equal(t, "No clipboard history", f.FormatEntryList(nil))
}

func TestFormatEntryCompact(t *testing.T) {
	f := New(Options{Compact: true, MaxWidth: 40})
	entry := &types.Entry{
		ID:        "1",
		Kind:      types.KindURL,
		Text:      "https://example.com",
		CreatedAt: time.Now().Add(-2 * time.Minute),
	}

	out := f.FormatEntry(entry)
	assert.Contains(t, out, "url")
	assert.Contains(t, out, "https://example.com")
	assert.Contains(t, out, "minutes ago")
	assert.NotContains(t, out, "\n")
}

func TestFormatEntryCollapsesMultilineText(t *testing.T) {
	f := New(Options{Compact: true, MaxWidth: 0})
	entry := &types.Entry{
		ID:        "1",
		Kind:      types.KindText,
		Text:      "line one\nline two\n\tindented",
		CreatedAt: time.Now(),
	}

	out := f.FormatEntry(entry)
	assert.Contains(t, out, "line one line two indented")
}

func TestFormatEntryImage(t *testing.T) {
	f := New(Options{})
	entry := &types.Entry{
		ID:        "1",
		Kind:      types.KindImage,
		Text:      types.ImagePlaceholder,
		ImageData: make([]byte, 2048),
		CreatedAt: time.Now(),
	}

	out := f.FormatEntry(entry)
	assert.Contains(t, out, types.ImagePlaceholder)
	assert.Contains(t, out, "2.0 KB")
}

func TestFormatEntryListNumbersEntries(t *testing.T) {
	f := New(Options{Compact: true})
	entries := []*types.Entry{
		{ID: "a", Kind: types.KindText, Text: "first", CreatedAt: time.Now()},
		{ID: "b", Kind: types.KindText, Text: "second", CreatedAt: time.Now()},
	}

	out := f.FormatEntryList(entries)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "[0]"))
	assert.True(t, strings.HasPrefix(lines[1], "[1]"))
}
