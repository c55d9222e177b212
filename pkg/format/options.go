package format

import "github.com/clipvault/clipvault/internal/types"

// Options controls formatting behavior
type Options struct {
	UseColors bool
	UseIcons  bool
	MaxWidth  int  // Max preview width in runes (0 = no limit)
	Compact   bool // Single-line entries
}

// DefaultOptions returns sensible defaults
func DefaultOptions() Options {
	return Options{
		UseColors: true,
		UseIcons:  true,
		MaxWidth:  80,
		Compact:   false,
	}
}

// CompactOptions returns options for compact single-line display
func CompactOptions() Options {
	opts := DefaultOptions()
	opts.Compact = true
	opts.MaxWidth = 60
	return opts
}

// KindIcons maps entry kinds to Unicode icons
var KindIcons = map[types.Kind]string{
	types.KindText:  "📝",
	types.KindURL:   "🔗",
	types.KindEmail: "✉️",
	types.KindImage: "🖼️",
}

// KindColors maps entry kinds to colors
var KindColors = map[types.Kind]string{
	types.KindText:  Cyan,
	types.KindURL:   Blue,
	types.KindEmail: Green,
	types.KindImage: Magenta,
}
