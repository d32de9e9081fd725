package dal

import "errors"

var (
	ErrInvalidJobID     = errors.New("invalid job id")
	ErrInvalidCompanyID = errors.New("invalid company id")
)
