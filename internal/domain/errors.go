package domain

import "errors"

// Shared error taxonomy. Repositories translate store errors into these
// sentinels, handlers translate them into HTTP status codes.
var (
	// ErrNotFound: no record with the given id.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID: create attempted against an existing primary key.
	ErrDuplicateID = errors.New("id already exists")

	// ErrInvalidInput: structurally invalid request payload.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidItem: order line item missing productId/price or carrying
	// a negative price/quantity.
	ErrInvalidItem = errors.New("invalid order item")

	// ErrUnavailable: the store could not be reached in time. Callers may
	// retry; the service layer never does.
	ErrUnavailable = errors.New("store unavailable")
)
