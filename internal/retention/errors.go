package retention

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every *InvalidInputError via errors.Is
var ErrInvalidInput = errors.New("invalid retention input")

// InvalidInputError reports a match that cannot take part in a retention run
type InvalidInputError struct {
	Index   int    // Position of the match in the input, -1 when not match specific
	MatchID string // May be empty when the ID itself is missing
	Field   string
	Reason  string
}

func (e *InvalidInputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s: %s", ErrInvalidInput, e.Field, e.Reason)
	}
	if e.MatchID == "" {
		return fmt.Sprintf("%s: match #%d: %s: %s", ErrInvalidInput, e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: match #%d (%s): %s: %s", ErrInvalidInput, e.Index, e.MatchID, e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
