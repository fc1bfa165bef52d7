package dllist

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned, wrapped, by Get when the requested position holds no element.
var ErrOutOfRange = errors.New("index out of range")

func errEmpty(index int) error {
	return fmt.Errorf("dllist: get %d from empty list: %w", index, ErrOutOfRange)
}

func errIndex(index int, size int) error {
	return fmt.Errorf("dllist: get %d from list of length %d: %w", index, size, ErrOutOfRange)
}
