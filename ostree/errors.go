package ostree

import (
	"errors"

	"github.com/npillmayer/containers"
)

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("ostree: invalid configuration")
	// ErrCorrupt signals a violated tree invariant, found by Check.
	ErrCorrupt = errors.New("ostree: corrupt tree")
)

// ErrOutOfRange is returned when an end iterator is dereferenced.
const ErrOutOfRange = containers.ErrOutOfRange
