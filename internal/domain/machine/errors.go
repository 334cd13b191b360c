package machine

import "errors"

var (
	ErrMachineNotFound = errors.New("machine not found")
)
