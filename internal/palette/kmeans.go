package palette

import (
	"math"
	"math/rand"
	"sort"
)

const (
	// DefaultSeed drives randomized centroid initialization when the
	// request does not specify a seed. Determinism is part of the
	// clustering contract, not an accident of a fixed default.
	DefaultSeed = 42

	// MaxColors is the absolute ceiling on the cluster count.
	MaxColors = 10

	// minClusterPixels is the average number of pixels required per
	// cluster. Requests exceeding it are clamped, preventing over-fitting
	// on tiny images.
	minClusterPixels = 100
)

// Request holds one clustering invocation's input. It is treated as
// immutable; the pixel slice is a non-owned view and is never modified.
type Request struct {
	Colors int   // Requested color count (clamped to the effective count)
	Pixels []RGB // Flat pixel array, at least one entry
	Seed   int64 // Initialization seed; 0 selects DefaultSeed
}

// NewRequest builds a Request with the default seed.
func NewRequest(colors int, pixels []RGB) Request {
	return Request{Colors: colors, Pixels: pixels, Seed: DefaultSeed}
}

// Result pairs a cluster centroid with the number of pixels assigned to it.
type Result struct {
	Centroid RGB // Per-channel truncated mean of the cluster's pixels
	Count    int // Cluster prevalence
}

// Clusterer partitions pixel arrays into dominant color clusters using
// k-means over 3-dimensional RGB space. The zero value is not usable; call
// NewClusterer.
type Clusterer struct {
	restarts      int
	maxIterations int
}

// NewClusterer returns a Clusterer with defaults matching the service
// contract: 10 seeded restarts keeping the lowest-inertia partition, and a
// bounded iteration count so a run never loops unbounded.
func NewClusterer() *Clusterer {
	return &Clusterer{
		restarts:      10,
		maxIterations: 100,
	}
}

// EffectiveCount clamps a requested color count against the pixel count.
//
// The result never exceeds MaxColors, never exceeds max(1, pixels/100),
// and never falls below 1. Out-of-range requests are clamped rather than
// rejected; request validation is the transport layer's concern.
func EffectiveCount(requested, pixels int) int {
	k := requested
	if perPixel := pixels / minClusterPixels; perPixel > 0 && k > perPixel {
		k = perPixel
	} else if perPixel == 0 {
		k = 1
	}
	if k > MaxColors {
		k = MaxColors
	}
	if k < 1 {
		k = 1
	}
	return k
}

// Cluster partitions the request's pixels into dominant color clusters.
//
// Returns one Result per effective cluster, sorted by descending pixel
// count; equal counts keep ascending cluster-index order. The effective
// count is additionally bounded by the number of distinct pixel colors, so
// a uniform image always yields a single cluster regardless of the
// requested count.
//
// Errors:
//   - ErrEmptyInput if the pixel array is empty.
//   - *ClusterError if the algorithm fails to produce a valid partition.
func (c *Clusterer) Cluster(req Request) ([]Result, error) {
	n := len(req.Pixels)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	k := EffectiveCount(req.Colors, n)

	// Collect distinct colors in first-appearance order. If the image has
	// no more variety than the effective count, every distinct color is
	// its own cluster and k-means is unnecessary.
	distinct, counts := distinctColors(req.Pixels)
	if k >= len(distinct) {
		results := make([]Result, len(distinct))
		for i, col := range distinct {
			results[i] = Result{Centroid: col, Count: counts[i]}
		}
		sortByPrevalence(results)
		return results, nil
	}

	seed := req.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	points := make([]point3, n)
	for i, p := range req.Pixels {
		points[i] = point3{float64(p.R), float64(p.G), float64(p.B)}
	}

	// Multiple restarts share one seeded source, so the whole run is a
	// deterministic function of (pixels, k, seed).
	var bestCentroids []point3
	var bestAssignments []int
	bestInertia := math.Inf(1)
	for r := 0; r < c.restarts; r++ {
		centroids, assignments := c.run(points, k, rng)
		if inertia := totalInertia(points, centroids, assignments); inertia < bestInertia {
			bestInertia = inertia
			bestCentroids = centroids
			bestAssignments = assignments
		}
	}

	results := make([]Result, k)
	for i, cen := range bestCentroids {
		results[i].Centroid = truncateCentroid(cen)
	}
	for _, a := range bestAssignments {
		results[a].Count++
	}
	for _, res := range results {
		if res.Count == 0 {
			return nil, &ClusterError{K: k, Reason: "partition produced an empty cluster"}
		}
	}

	sortByPrevalence(results)
	return results, nil
}

// point3 is a point in 3-dimensional RGB space.
type point3 struct {
	r, g, b float64
}

// sqDist returns the squared Euclidean distance between two points.
// Squared distance preserves ordering, so the square root is skipped for
// both assignment and nearest-centroid selection.
func (p point3) sqDist(q point3) float64 {
	dr := p.r - q.r
	dg := p.g - q.g
	db := p.b - q.b
	return dr*dr + dg*dg + db*db
}

// run executes one k-means restart and returns the final centroids and
// per-point assignments.
func (c *Clusterer) run(points []point3, k int, rng *rand.Rand) ([]point3, []int) {
	centroids := initCentroids(points, k, rng)
	assignments := make([]int, len(points))
	for i := range assignments {
		assignments[i] = -1
	}

	for iter := 0; iter < c.maxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if changed == 0 {
			break
		}

		// Recompute each centroid as the mean of its assigned points.
		sums := make([]point3, k)
		counts := make([]int, k)
		for i, p := range points {
			a := assignments[i]
			sums[a].r += p.r
			sums[a].g += p.g
			sums[a].b += p.b
			counts[a]++
		}
		var empty []int
		for i := range centroids {
			if counts[i] == 0 {
				empty = append(empty, i)
				continue
			}
			centroids[i] = point3{
				r: sums[i].r / float64(counts[i]),
				g: sums[i].g / float64(counts[i]),
				b: sums[i].b / float64(counts[i]),
			}
		}
		if len(empty) > 0 {
			relocateEmpty(points, centroids, assignments, empty)
		}
	}

	return centroids, assignments
}

// relocateEmpty reseeds clusters that lost every point, moving each empty
// centroid onto the point currently farthest from its assigned centroid.
// The choice is a pure function of the current state, so relocation keeps
// the run deterministic.
func relocateEmpty(points []point3, centroids []point3, assignments []int, empty []int) {
	order := make([]int, len(points))
	dists := make([]float64, len(points))
	for i, p := range points {
		order[i] = i
		dists[i] = p.sqDist(centroids[assignments[i]])
	}
	sort.SliceStable(order, func(a, b int) bool {
		return dists[order[a]] > dists[order[b]]
	})

	for i, cluster := range empty {
		if i >= len(order) {
			break
		}
		centroids[cluster] = points[order[i]]
	}
}

// initCentroids seeds k centroids with k-means++: the first is drawn
// uniformly, each subsequent one with probability proportional to its
// squared distance from the nearest chosen centroid. Points identical to a
// chosen centroid carry zero weight, so the same value is never picked
// twice while distinct candidates remain.
func initCentroids(points []point3, k int, rng *rand.Rand) []point3 {
	centroids := make([]point3, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	weights := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			minDist := math.Inf(1)
			for _, cen := range centroids {
				if d := p.sqDist(cen); d < minDist {
					minDist = d
				}
			}
			weights[i] = minDist
			total += minDist
		}

		target := rng.Float64() * total
		cumulative := 0.0
		chosen := len(points) - 1
		for i, w := range weights {
			cumulative += w
			if cumulative >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}

	return centroids
}

// nearestCentroid returns the index of the centroid closest to p. The
// lowest index wins exact distance ties.
func nearestCentroid(p point3, centroids []point3) int {
	nearest := 0
	minDist := math.Inf(1)
	for i, cen := range centroids {
		if d := p.sqDist(cen); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// totalInertia sums each point's squared distance to its assigned centroid.
func totalInertia(points []point3, centroids []point3, assignments []int) float64 {
	total := 0.0
	for i, p := range points {
		total += p.sqDist(centroids[assignments[i]])
	}
	return total
}

// truncateCentroid converts a float centroid to 8-bit channels, truncating
// the mean toward zero and clamping each channel to [0,255].
func truncateCentroid(p point3) RGB {
	return RGB{
		R: clampChannel(int(p.r)),
		G: clampChannel(int(p.g)),
		B: clampChannel(int(p.b)),
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// distinctColors returns the distinct pixel colors in first-appearance
// order along with each color's occurrence count.
func distinctColors(pixels []RGB) ([]RGB, []int) {
	index := make(map[RGB]int)
	var colors []RGB
	var counts []int
	for _, p := range pixels {
		i, ok := index[p]
		if !ok {
			i = len(colors)
			index[p] = i
			colors = append(colors, p)
			counts = append(counts, 0)
		}
		counts[i]++
	}
	return colors, counts
}

// sortByPrevalence orders results by descending pixel count. The sort is
// stable, so equal counts keep ascending cluster-index order.
func sortByPrevalence(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Count > results[j].Count
	})
}
