package workflow

import "errors"

// ErrRunLocked is returned when another run holds the output directory lock.
var ErrRunLocked = errors.New("another camlink run is using the output directory")
