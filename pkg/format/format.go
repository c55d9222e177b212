// Package format renders history entries for terminal display.
package format

import (
	"fmt"
	"strings"

	"github.com/clipvault/clipvault/internal/types"
)

// Formatter renders entries according to its options.
type Formatter struct {
	options Options
}

// New creates a new formatter with the given options
func New(opts Options) *Formatter {
	return &Formatter{options: opts}
}

// FormatEntry formats a single history entry.
func (f *Formatter) FormatEntry(entry *types.Entry) string {
	if entry == nil {
		return ColorizeIf("no entry", Gray, f.options.UseColors)
	}

	header := f.formatHeader(entry)
	preview := f.formatPreview(entry)
	age := DimIf(FormatRelativeTime(entry.CreatedAt), f.options.UseColors)

	if f.options.Compact {
		return fmt.Sprintf("%s %s %s", header, preview, age)
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("%s  %s", header, age))
	parts = append(parts, "  "+preview)
	if entry.IsImage() {
		size := DimIf(FormatSize(int64(len(entry.ImageData))), f.options.UseColors)
		parts = append(parts, "  "+size)
	}
	return strings.Join(parts, "\n")
}

// FormatEntryList formats a numbered history listing, newest first.
func (f *Formatter) FormatEntryList(entries []*types.Entry) string {
	if len(entries) == 0 {
		return ColorizeIf("No clipboard history", Gray, f.options.UseColors)
	}

	var parts []string
	for i, entry := range entries {
		index := BoldIf(fmt.Sprintf("[%d]", i), f.options.UseColors)
		parts = append(parts, fmt.Sprintf("%s %s", index, f.FormatEntry(entry)))
		if !f.options.Compact && i < len(entries)-1 {
			parts = append(parts, "")
		}
	}
	return strings.Join(parts, "\n")
}

func (f *Formatter) formatHeader(entry *types.Entry) string {
	var parts []string

	if f.options.UseIcons {
		if icon, ok := KindIcons[entry.Kind]; ok {
			parts = append(parts, icon)
		}
	}

	kindStr := string(entry.Kind)
	if color, ok := KindColors[entry.Kind]; ok {
		kindStr = ColorizeIf(kindStr, color, f.options.UseColors)
	}
	parts = append(parts, kindStr)

	return strings.Join(parts, " ")
}

func (f *Formatter) formatPreview(entry *types.Entry) string {
	if entry.IsImage() {
		return DimIf(fmt.Sprintf("%s (%s)", entry.Text, FormatSize(int64(len(entry.ImageData)))),
			f.options.UseColors)
	}

	// Collapse to one line for preview purposes.
	text := strings.Join(strings.Fields(entry.Text), " ")
	return TruncateText(text, f.options.MaxWidth)
}
