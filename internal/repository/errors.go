package repository

import "errors"

// ErrNotFound is the sentinel wrapped by every lookup miss in this package.
var ErrNotFound = errors.New("not found")
