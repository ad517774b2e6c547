package domain

import "errors"

// Validation sentinels. These stop at the operation boundary: the caller
// gets the error and no mutation is performed.
var (
	ErrEmptyName      = errors.New("name is empty")
	ErrInvalidTime    = errors.New("invalid time format, expected H:MM AM/PM")
	ErrEndBeforeStart = errors.New("end time must be after start time")
	ErrNoStartTime    = errors.New("no start time recorded")
)
