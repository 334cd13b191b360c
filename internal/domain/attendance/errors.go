package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrInvalidRange   = errors.New("attendance range start is after end")
)
