// Package palette implements the color extraction core: clustering an
// image's pixels into dominant colors and labeling each color with the
// nearest CSS3 color name.
//
// The package is consumed in two stages:
//
//  1. The Clusterer partitions a pixel array into k dominant clusters via
//     deterministic k-means and returns centroids ordered by cluster size.
//  2. The Table maps each centroid to the closest named reference color.
//
// Extract ties both stages together and produces the final Descriptor list.
//
// # Determinism
//
// Clustering is fully reproducible: randomized initialization is driven by
// an explicit seed on the Request (DefaultSeed when unset), and ordering
// ties are broken by ascending cluster index. Two invocations with the same
// pixels, color count, and seed yield bit-identical results.
//
// # Concurrency
//
// The Table is immutable after construction and safe for unsynchronized
// concurrent reads. The Clusterer holds no per-request state; each Cluster
// call operates only on its own Request.
//
// # Distance Metric
//
// Both cluster assignment and name lookup use squared Euclidean distance in
// RGB space. This is intentionally not a perceptual metric (CIE Lab or
// Delta-E); nearest-name results favor simplicity over perceptual accuracy.
package palette
