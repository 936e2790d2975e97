package dirsize

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by errors returned for a scan root that does not exist.
var ErrNotFound = errors.New("path does not exist")

// NotFoundError reports a scan root that does not exist.
type NotFoundError struct {
	// Path is the requested root.
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotFound, e.Path)
}

// Is makes errors.Is(err, ErrNotFound) hold for a NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
