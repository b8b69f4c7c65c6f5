package color

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidColor is returned when a literal or channel tuple cannot be
	// turned into a colour.
	ErrInvalidColor = errors.New("invalid color")

	// ErrUnsupportedFormat is returned by Format for an unknown format name.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidColor, fmt.Sprintf(format, args...))
}
