package palette

import (
	"strings"
	"testing"
)

func TestCSS3TableSize(t *testing.T) {
	table, err := NewCSS3Table()
	if err != nil {
		t.Fatalf("NewCSS3Table failed: %v", err)
	}
	if table.Len() != 147 {
		t.Errorf("table has %d entries, want 147", table.Len())
	}
}

func TestNearestExactMatches(t *testing.T) {
	table, err := NewCSS3Table()
	if err != nil {
		t.Fatalf("NewCSS3Table failed: %v", err)
	}

	tests := []struct {
		color RGB
		want  string
	}{
		{RGB{255, 0, 0}, "red"},
		{RGB{0, 0, 0}, "black"},
		{RGB{255, 255, 255}, "white"},
		{RGB{240, 248, 255}, "aliceblue"},
		{RGB{47, 79, 79}, "darkslategray"},
	}

	for _, tt := range tests {
		if got := table.Nearest(tt.color); got != tt.want {
			t.Errorf("Nearest(%v) = %q, want %q", tt.color, got, tt.want)
		}
	}
}

func TestNearestApproximateMatches(t *testing.T) {
	table, err := NewCSS3Table()
	if err != nil {
		t.Fatalf("NewCSS3Table failed: %v", err)
	}

	tests := []struct {
		color RGB
		want  string
	}{
		{RGB{250, 5, 5}, "red"},
		{RGB{3, 3, 3}, "black"},
		{RGB{253, 253, 253}, "white"},
	}

	for _, tt := range tests {
		if got := table.Nearest(tt.color); got != tt.want {
			t.Errorf("Nearest(%v) = %q, want %q", tt.color, got, tt.want)
		}
	}
}

func TestNearestTieBreakAlphabetical(t *testing.T) {
	table, err := NewCSS3Table()
	if err != nil {
		t.Fatalf("NewCSS3Table failed: %v", err)
	}

	// aqua and cyan share the same RGB value; fuchsia and magenta too.
	// The alphabetically earlier name wins.
	tests := []struct {
		color RGB
		want  string
	}{
		{RGB{0, 255, 255}, "aqua"},
		{RGB{255, 0, 255}, "fuchsia"},
		{RGB{128, 128, 128}, "gray"},
	}

	for _, tt := range tests {
		if got := table.Nearest(tt.color); got != tt.want {
			t.Errorf("Nearest(%v) = %q, want %q", tt.color, got, tt.want)
		}
	}
}

func TestNearestEmptyTable(t *testing.T) {
	table := &Table{}
	if got := table.Nearest(RGB{10, 20, 30}); got != UnknownColorName {
		t.Errorf("Nearest on empty table = %q, want %q", got, UnknownColorName)
	}
}

// TestNearestIsMinimal brute-forces the naming invariant: the returned
// name's reference color is at least as close as every other entry.
func TestNearestIsMinimal(t *testing.T) {
	table, err := NewCSS3Table()
	if err != nil {
		t.Fatalf("NewCSS3Table failed: %v", err)
	}

	sqDist := func(a, b RGB) int {
		dr := int(a.R) - int(b.R)
		dg := int(a.G) - int(b.G)
		db := int(a.B) - int(b.B)
		return dr*dr + dg*dg + db*db
	}

	probes := []RGB{
		{0, 0, 0}, {255, 255, 255}, {17, 130, 200}, {88, 88, 88},
		{254, 1, 128}, {40, 200, 10}, {123, 231, 90}, {200, 150, 100},
	}

	for _, probe := range probes {
		name := table.Nearest(probe)
		var got int
		found := false
		for _, e := range table.entries {
			if e.name == name {
				got = sqDist(probe, e.rgb)
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("Nearest(%v) returned %q, which is not in the table", probe, name)
		}
		for _, e := range table.entries {
			if d := sqDist(probe, e.rgb); d < got {
				t.Errorf("Nearest(%v) = %q (dist %d), but %q is closer (dist %d)",
					probe, name, got, e.name, d)
			}
		}
	}
}

func TestNewTableRejectsMalformedEntries(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			"invalid hex",
			`[{"name": "red", "hex": "not-a-color"}]`,
			"invalid hex",
		},
		{
			"missing name",
			`[{"hex": "#ff0000"}]`,
			"no name",
		},
		{
			"duplicate name",
			`[{"name": "red", "hex": "#ff0000"}, {"name": "red", "hex": "#fe0000"}]`,
			"duplicate",
		},
		{
			"not json",
			`{{{`,
			"parsing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable([]byte(tt.data))
			if err == nil {
				t.Fatal("NewTable accepted malformed data")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewTableCanonicalizesOrder(t *testing.T) {
	// Two entries with identical values, supplied in reverse alphabetical
	// order: lookup iteration is canonical, so the earlier name wins.
	data := `[
		{"name": "zinnia", "hex": "#102030"},
		{"name": "abyss", "hex": "#102030"}
	]`
	table, err := NewTable([]byte(data))
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	if got := table.Nearest(RGB{16, 32, 48}); got != "abyss" {
		t.Errorf("Nearest = %q, want %q", got, "abyss")
	}
}
