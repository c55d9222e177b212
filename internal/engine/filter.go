package engine

import (
	"strings"

	"github.com/clipvault/clipvault/internal/types"
)

// Filter narrows a history snapshot on the read side. It never mutates
// engine state; presentation layers apply it to List output.
type Filter struct {
	// Kind restricts results to one entry kind when non-empty.
	Kind types.Kind

	// Query is a case-insensitive substring match on text content.
	Query string
}

// Apply returns the entries matching the filter, preserving order.
func (f Filter) Apply(entries []*types.Entry) []*types.Entry {
	if f.Kind == "" && f.Query == "" {
		return entries
	}

	query := strings.ToLower(f.Query)
	var out []*types.Entry
	for _, entry := range entries {
		if f.Kind != "" && entry.Kind != f.Kind {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(entry.Text), query) {
			continue
		}
		out = append(out, entry)
	}
	return out
}
