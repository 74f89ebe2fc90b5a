package pipeline

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrInputNotFound is returned when a data file or dictionary is missing.
	// The underlying os.ErrNotExist stays in the chain.
	ErrInputNotFound = errors.New("pipeline: input not found")

	// ErrNoUsableMapping is returned when the source yields no column at all:
	// an empty dictionary, an empty sample file, or a header that matches no
	// table column.
	ErrNoUsableMapping = errors.New("pipeline: no usable column mapping")

	// ErrMisaligned is returned in strict mode when unmatched header fields
	// are not all trailing.
	ErrMisaligned = errors.New("pipeline: header misaligned with table columns")
)

// openErr classifies an input open failure.
func openErr(what, name string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s %s: %w", ErrInputNotFound, what, name, err)
	}
	return fmt.Errorf("pipeline: open %s %s: %w", what, name, err)
}
