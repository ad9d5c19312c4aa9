// Package imaging adapts decoded raster images to the color extraction
// core and hosts the image-level preprocessing the transport layer applies
// before clustering.
//
// This package owns:
//   - Decoding uploads into image.Image values (PNG, JPEG, GIF, BMP, TIFF,
//     and WEBP), honoring EXIF orientation.
//   - Flattening an image into the flat RGB pixel array the clusterer
//     consumes; alpha is discarded.
//   - Optional preprocessing: downsampling oversized images to a pixel
//     budget, Gaussian smoothing to suppress compression noise, and
//     cropping analysis to a caller-supplied region.
//
// # Coordinate System
//
// Region coordinates are 0-based with origin at top-left: (x1,y1) is
// inclusive, (x2,y2) is exclusive.
//
// # Error Handling
//
// Functions return errors for undecodable input and invalid region
// specifications (x1 >= x2, y1 >= y2, or out-of-bounds coordinates).
// Preprocessing helpers never fail; out-of-range knobs degrade to no-ops.
package imaging
