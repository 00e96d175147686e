package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderIDConflict   = errors.New("order id already exists")
	ErrInvalidTransition = errors.New("status transition not permitted")
)
