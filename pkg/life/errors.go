package life

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRule reports a birth or survive count outside [0,8] or a
	// malformed rule string.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrUnknownPreset reports a preset name missing from the table.
	ErrUnknownPreset = errors.New("unknown rule preset")
)

// InvariantError describes a cell record that breaks neighbour accounting or
// retention. It always indicates a bookkeeping bug.
type InvariantError struct {
	Op    string
	Coord Coord
	Msg   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("life: %s at %v: %s", e.Op, e.Coord, e.Msg)
}

func violation(op string, c Coord, format string, args ...any) *InvariantError {
	return &InvariantError{Op: op, Coord: c, Msg: fmt.Sprintf(format, args...)}
}
