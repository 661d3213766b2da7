package discount

import "errors"

var (
	ErrInvalidValue = errors.New("invalid discount value")
	ErrCodeExists   = errors.New("discount code already exists")
)
