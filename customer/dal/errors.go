package dal

import "errors"

var (
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrInvalidCompanyID  = errors.New("invalid company id")
)
