package gradient

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-gradient/pkg/color"
)

var (
	// ErrMissingArguments is returned when New receives a zero Config.
	ErrMissingArguments = errors.New("no arguments received")

	// ErrMissingSteps is returned when the step count is absent or not a
	// positive integer.
	ErrMissingSteps = errors.New("must provide number of steps")

	// ErrInsufficientStops is returned when fewer than two stops are given.
	ErrInsufficientStops = errors.New("not enough stops")

	// ErrTooManyStops is returned when there are more stops than steps.
	ErrTooManyStops = errors.New("more stops than steps")

	// ErrInvalidModel is returned for an interpolation model other than rgb or hsl.
	ErrInvalidModel = errors.New("model must be rgb or hsl")

	// ErrPositionsOutOfOrder is returned when a stop position is lower than
	// the one before it.
	ErrPositionsOutOfOrder = errors.New("stop positions in wrong order")

	// ErrPositionsEqual is returned when two neighbouring stops share a position.
	ErrPositionsEqual = errors.New("stop positions equal")

	// ErrPositionOutOfRange is returned for a stop position outside 0-100.
	ErrPositionOutOfRange = errors.New("stop position out of range 0-100")

	// ErrNonIntegerPosition is returned for a fractional stop position.
	ErrNonIntegerPosition = errors.New("use whole number for stop position")

	// ErrInvalidPosition is returned by decoders when a stop position is not
	// a finite number.
	ErrInvalidPosition = errors.New("stop position must be a number")

	// ErrInconsistentStopShape is returned when some stops carry a position
	// and others do not.
	ErrInconsistentStopShape = errors.New("either all stops or no stops must have a position")

	// ErrInvalidColor is returned when a stop colour literal cannot be parsed.
	ErrInvalidColor = color.ErrInvalidColor

	// ErrUnsupportedFormat is returned by Strings for an unknown format.
	ErrUnsupportedFormat = color.ErrUnsupportedFormat
)

// StopError reports a problem with one stop. Index refers to the stop list
// after boundary stops at 0 and 100 have been inserted.
type StopError struct {
	// Err is one of the position sentinels above.
	Err error
	// Index is the offending stop index.
	Index int
	// Position is the offending position value.
	Position float64
}

// Error implements the error interface.
func (e *StopError) Error() string {
	return fmt.Sprintf("%v: stop %d (position %v)", e.Err, e.Index, e.Position)
}

// Unwrap returns the underlying sentinel for errors.Is support.
func (e *StopError) Unwrap() error {
	return e.Err
}
