package theater

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPlayType is matched by errors carrying a play type outside the known set.
	ErrUnknownPlayType = errors.New("unknown play type")
	// ErrUnknownPlay is matched by errors for performances referencing a play absent from the catalog.
	ErrUnknownPlay = errors.New("unknown play")
)

// UnknownPlayTypeError reports a play type that cannot be priced.
type UnknownPlayTypeError struct {
	Type string
}

func (e *UnknownPlayTypeError) Error() string {
	return fmt.Sprintf("unknown type: %s", e.Type)
}

// Is makes the error match ErrUnknownPlayType.
func (e *UnknownPlayTypeError) Is(target error) bool {
	return target == ErrUnknownPlayType
}

// UnknownPlayError reports a play ID missing from the catalog.
type UnknownPlayError struct {
	PlayID string
}

func (e *UnknownPlayError) Error() string {
	return fmt.Sprintf("unknown play: %s", e.PlayID)
}

// Is makes the error match ErrUnknownPlay.
func (e *UnknownPlayError) Is(target error) bool {
	return target == ErrUnknownPlay
}
