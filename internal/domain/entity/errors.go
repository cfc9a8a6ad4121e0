package entity

import "errors"

var (
	ErrIDIsRequired   = errors.New("id is required")
	ErrNegativeRadius = errors.New("radius must not be negative")
)
