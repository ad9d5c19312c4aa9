// Package server implements the HTTP transport for the color recognition
// service.
//
// The server exposes two routes:
//
//   - POST /api/color-recognition: multipart upload of an image plus an
//     optional num_colors form field (1-10, default 5) and an optional
//     region field ("x1,y1,x2,y2"). Responds with the dominant colors of
//     the image, each as RGB channels, a lowercase hex string, and the
//     title-cased nearest CSS3 color name, ordered most prevalent first.
//   - GET /health: liveness check.
//
// # Request Validation
//
// The transport validates what the core deliberately tolerates: a
// num_colors value outside [1,10] is rejected with 400 here even though
// the clusterer would clamp it, and uploads whose part content type is not
// image/* are rejected before decoding. Upload size is bounded by
// configuration; oversized bodies get 413.
//
// # Error Mapping
//
// Client faults (bad form data, undecodable images, invalid regions) map
// to 400. Core processing failures, including the defensive clustering
// failure, map to 500. Error bodies mirror the success shape with
// "success": false and an "error" message.
//
// # Shared State
//
// The named color table is built once in New and read concurrently without
// synchronization; no writer exists after initialization. Each request
// clusters its own pixel array, so requests share no mutable state.
package server
