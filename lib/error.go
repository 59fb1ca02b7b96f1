package ckan

import "errors"

type errInvalidGameDirectory struct{}

func (e *errInvalidGameDirectory) Error() string {
	return "invalid game directory"
}

var (
	ErrInvalidGameDirectory = &errInvalidGameDirectory{}

	// Version parsing and construction.
	ErrTooManyComponents   = errors.New("version has more than four components")
	ErrNonIntegerComponent = errors.New("version component is not an integer")
	ErrNegativeComponent   = errors.New("version component is negative")
	ErrTooLargeComponent   = errors.New("version component does not fit in 32 bits")
	ErrVersionOutOfRange   = errors.New("version component out of range")

	// Range construction and parsing.
	ErrNoVersions   = errors.New("no versions or ranges given")
	ErrNilVersion   = errors.New("nil version or range in input")
	ErrInvalidRange = errors.New("malformed version range")
)
