package vector

import (
	"errors"
	"strconv"
)

// ErrOutOfRange is returned by Component for an index other than 0 or 1.
var ErrOutOfRange = errors.New("vector component index out of range")

// IndexError records the index that failed a component lookup.
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return "there is no vector component at " + strconv.Itoa(e.Index)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}
