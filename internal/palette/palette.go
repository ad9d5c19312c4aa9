package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RGB represents a color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGB struct {
	R uint8 // Red component (0-255)
	G uint8 // Green component (0-255)
	B uint8 // Blue component (0-255)
}

// Hex returns the color in lowercase "#rrggbb" form.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// Descriptor is the final output unit for one dominant color.
//
// Descriptors are returned ordered by cluster prevalence, most common
// first. Count carries the cluster size for callers that want it but is
// excluded from the wire format.
type Descriptor struct {
	RGB   [3]int `json:"rgb"`  // Channel values, each in [0,255]
	Hex   string `json:"hex"`  // Lowercase hex "#rrggbb"
	Name  string `json:"name"` // Title-cased nearest CSS3 name
	Count int    `json:"-"`    // Pixels assigned to this cluster
}

// Extract runs the full extraction pipeline: cluster the request's pixels
// into dominant colors, then label each centroid with the nearest entry in
// the table.
//
// Parameters:
//   - table: The named reference colors used for labeling. Must not be nil.
//   - req: The pixel array, requested color count, and seed to cluster with.
//
// Returns:
//   - []Descriptor: One descriptor per effective cluster, ordered by
//     descending pixel count. The effective count may be smaller than the
//     requested count for small or low-variety images.
//   - error: ErrEmptyInput if the request holds no pixels; a *ClusterError
//     if the partition fails. No partial output is produced on error.
func Extract(table *Table, req Request) ([]Descriptor, error) {
	if table == nil {
		return nil, fmt.Errorf("named color table is nil")
	}

	clusterer := NewClusterer()
	results, err := clusterer.Cluster(req)
	if err != nil {
		return nil, err
	}

	// Title-casing is a presentation transform layered on top of the
	// lookup; cases.Caser is not safe for concurrent use, so build one
	// per call.
	title := cases.Title(language.English)

	descriptors := make([]Descriptor, len(results))
	for i, res := range results {
		c := res.Centroid
		descriptors[i] = Descriptor{
			RGB:   [3]int{int(c.R), int(c.G), int(c.B)},
			Hex:   c.Hex(),
			Name:  title.String(table.Nearest(c)),
			Count: res.Count,
		}
	}

	return descriptors, nil
}
