package palette

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// UnknownColorName is the sentinel returned when no table entry can be
// resolved. Naming is auxiliary to the numeric extraction, so an empty
// table degrades to this value instead of failing the whole pipeline.
const UnknownColorName = "unknown color"

//go:embed css3.json
var css3Data []byte

// NamedColor is one entry of the reference dataset as it appears on disk.
type NamedColor struct {
	Name string `json:"name"` // Canonical lowercase color name
	Hex  string `json:"hex"`  // Defining value, "#rrggbb"
}

// tableEntry is a validated entry with its RGB value resolved.
type tableEntry struct {
	name string
	rgb  RGB
}

// Table is an immutable mapping from canonical color names to their
// defining RGB values. Entries are held in canonical alphabetical order,
// which doubles as the tie-break for nearest-name lookups. A Table is
// never mutated after construction and needs no locking for concurrent
// reads.
type Table struct {
	entries []tableEntry
}

// NewCSS3Table builds the Table from the bundled CSS3 reference set
// (147 standard web color names). Call once at process startup and share
// the result; construction validates every entry.
func NewCSS3Table() (*Table, error) {
	return NewTable(css3Data)
}

// NewTable parses and validates a JSON array of NamedColor entries.
//
// Validation happens once here rather than being tolerated per lookup:
// an empty name, an unparseable hex value, or a duplicate name rejects the
// whole dataset. Entries are sorted by name so lookup iteration order is
// canonical regardless of the order on disk.
func NewTable(data []byte) (*Table, error) {
	var raw []NamedColor
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing named color data: %w", err)
	}

	seen := make(map[string]bool, len(raw))
	entries := make([]tableEntry, 0, len(raw))
	for _, nc := range raw {
		if nc.Name == "" {
			return nil, fmt.Errorf("named color with hex %q has no name", nc.Hex)
		}
		if seen[nc.Name] {
			return nil, fmt.Errorf("duplicate named color %q", nc.Name)
		}
		seen[nc.Name] = true

		c, err := colorful.Hex(nc.Hex)
		if err != nil {
			return nil, fmt.Errorf("named color %q: invalid hex %q: %w", nc.Name, nc.Hex, err)
		}
		r, g, b := c.RGB255()
		entries = append(entries, tableEntry{name: nc.Name, rgb: RGB{R: r, G: g, B: b}})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].name < entries[j].name
	})

	return &Table{entries: entries}, nil
}

// Len returns the number of reference entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Nearest returns the name of the table entry closest to c by squared
// Euclidean RGB distance.
//
// The scan is linear over every entry; the first entry encountered wins
// exact distance ties, making alphabetical order the tie-break. An empty
// table returns UnknownColorName.
func (t *Table) Nearest(c RGB) string {
	name := UnknownColorName
	minDist := -1
	for _, e := range t.entries {
		dr := int(e.rgb.R) - int(c.R)
		dg := int(e.rgb.G) - int(c.G)
		db := int(e.rgb.B) - int(c.B)
		dist := dr*dr + dg*dg + db*db
		if minDist < 0 || dist < minDist {
			minDist = dist
			name = e.name
		}
	}
	return name
}
