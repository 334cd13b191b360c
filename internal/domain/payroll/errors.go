package payroll

import "errors"

var (
	ErrPaymentNotFound = errors.New("salary payment not found")
)
