package tessellate

import (
	"errors"
	"fmt"
)

// ConsistencyError reports that a generator produced a different number of
// elements than its closed-form count, or was asked for a resolution it cannot
// represent. It signals a programming error and is never recoverable.
type ConsistencyError struct {
	Mesh string
	What string
	Got  int
	Want int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("tessellation error: %s: %s: got %d, want %d", e.Mesh, e.What, e.Got, e.Want)
}

// IsConsistencyError reports whether err wraps a *ConsistencyError.
func IsConsistencyError(err error) bool {
	var ce *ConsistencyError
	return errors.As(err, &ce)
}

// validate rejects resolutions that cannot be tessellated into 16-bit indices.
func validate(name string, a, b, vertices int) error {
	if a < 1 {
		return &ConsistencyError{Mesh: name, What: "resolution", Got: a, Want: 1}
	}
	if b < 1 {
		return &ConsistencyError{Mesh: name, What: "resolution", Got: b, Want: 1}
	}
	if vertices > MaxVertices {
		return &ConsistencyError{Mesh: name, What: "vertex limit", Got: vertices, Want: MaxVertices}
	}
	return nil
}
