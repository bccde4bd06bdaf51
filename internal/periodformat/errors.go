package periodformat

import (
	"errors"
	"fmt"
)

// Reasons reported by ValidationError.
var (
	ErrWrongSlotCount        = errors.New("wrong slot count")
	ErrBreakPositionMismatch = errors.New("break position mismatch")
	ErrInvalidLabBlock       = errors.New("invalid lab block")
	ErrUnknownSlotType       = errors.New("unknown slot type")
)

// ValidationError is returned by EncodeDay when a day violates the schedule
// geometry. Position is the offending slot; for ErrWrongSlotCount it holds the
// received length.
type ValidationError struct {
	Reason   error
	Position int
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if errors.Is(e.Reason, ErrWrongSlotCount) {
		return fmt.Sprintf("%v: got %d slots, want %d", e.Reason, e.Position, SlotCount)
	}
	return fmt.Sprintf("%v at slot %d", e.Reason, e.Position)
}

// Unwrap returns the reason sentinel.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Reason
}

func invalid(reason error, position int) *ValidationError {
	return &ValidationError{Reason: reason, Position: position}
}
