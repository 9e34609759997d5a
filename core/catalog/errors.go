package catalog

import "errors"

// ErrNotFound is returned when a record addressed by id does not exist.
var ErrNotFound = errors.New("record not found")
