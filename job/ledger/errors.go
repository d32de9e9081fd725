package ledger

import "errors"

var (
	ErrInvalidAmount   = errors.New("amount must be a positive finite number")
	ErrIndexOutOfRange = errors.New("payment index out of range")
	ErrPaymentNotFound = errors.New("payment not found")
)
