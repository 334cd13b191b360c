package rentalarea

import "errors"

var (
	ErrAreaNotFound   = errors.New("rental area not found")
	ErrAreaNameExists = errors.New("rental area name already exists in this company")
)
