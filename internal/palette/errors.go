package palette

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a request carries zero pixels. The
// clusterer fails fast rather than silently emitting zero clusters.
var ErrEmptyInput = errors.New("no pixels to process")

// ClusterError reports a clustering run that failed to produce a valid
// partition. This is defensive; with a well-formed request it should not
// occur. It is propagated without retry, since rerunning with the same
// deterministic seed would reproduce the same failure.
type ClusterError struct {
	K      int    // Effective cluster count of the failed run
	Reason string // What went wrong
}

func (e *ClusterError) Error() string {
	return fmt.Sprintf("clustering failed (k=%d): %s", e.K, e.Reason)
}
