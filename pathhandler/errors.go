package pathhandler

import (
	"fmt"
	"github.com/pkg/errors"
)

// ErrNotFound matches any *NotFoundError via errors.Is.
var ErrNotFound = errors.New("project root not found")

// ErrEmptyMarker is returned by Find when the marker name is empty.
var ErrEmptyMarker = errors.New("marker name is empty")

// EnvironmentError is returned when the working directory can't be resolved.
type EnvironmentError struct {
	Err error
}

func (e *EnvironmentError) Error() string {
	return "resolve working directory: " + e.Err.Error()
}

func (e *EnvironmentError) Unwrap() error {
	return e.Err
}

// ListingError is returned when a directory of the ancestor chain can't be
// enumerated. The walk stops there even if a match exists further up.
type ListingError struct {
	Dir string
	Err error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("list %s: %s", e.Dir, e.Err.Error())
}

func (e *ListingError) Unwrap() error {
	return e.Err
}

// NotFoundError means no directory from Start up to the filesystem root
// contains Marker.
type NotFoundError struct {
	Start  string
	Marker Marker
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found in %s or any parent directory", e.Marker, e.Start)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
