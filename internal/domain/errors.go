package domain

import "errors"

var (
	ErrInvalidRange     = errors.New("invalid range: end is before start")
	ErrInvalidDate      = errors.New("invalid date: expected RFC3339 or YYYY-MM-DD")
	ErrInvalidTime      = errors.New("invalid time of day")
	ErrWindowTooLong    = errors.New("invalid range: window is too long")
	ErrBusinessNotFound = errors.New("business not found")
)
