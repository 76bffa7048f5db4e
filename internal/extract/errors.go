// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"fmt"
)

// ErrShape marks a position string that does not follow the comma or
// keyword layout its category expects.
var ErrShape = errors.New("unrecognized position format")

// ShapeError reports a position string that no rule could parse.
type ShapeError struct {
	Username string
	Position string
	Rule     string
	Reason   string
}

func (e *ShapeError) Error() string {
	msg := fmt.Sprintf("%s: position %q", ErrShape, e.Position)
	if e.Username != "" {
		msg = fmt.Sprintf("%s: %s", e.Username, msg)
	}
	if e.Rule != "" {
		msg += fmt.Sprintf(" (rule %s)", e.Rule)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *ShapeError) Unwrap() error {
	return ErrShape
}

func shapeErr(rule, position, reason string) *ShapeError {
	return &ShapeError{Rule: rule, Position: position, Reason: reason}
}
