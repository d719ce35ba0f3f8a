package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a required port was not wired.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates an unknown catalog format, improvement kind
	// or document type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidAmount indicates a currency string could not be parsed.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrCatalogUnavailable indicates the investor catalog could not be loaded.
	ErrCatalogUnavailable = errors.New("investor catalog unavailable")
)
