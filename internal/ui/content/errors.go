package content

import "errors"

// ErrOutOfBounds is returned when a grid position has not been allocated.
var ErrOutOfBounds = errors.New("cell out of bounds")
