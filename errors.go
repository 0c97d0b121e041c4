package inventory

import "errors"

// Errors returned by items and the inventory. They are wrapped with context,
// use errors.Is to test for them.
var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateID       = errors.New("item id already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnknownType       = errors.New("unknown item type")
)
