package dispatch

import "errors"

var (
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidCourierID = errors.New("invalid courier id")

	ErrOrderTerminal      = errors.New("order is in terminal state")
	ErrCourierNotFound    = errors.New("courier not found")
	ErrCourierUnavailable = errors.New("courier is not available")
)
