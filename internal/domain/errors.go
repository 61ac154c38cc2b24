package domain

import "errors"

// Sentinel errors shared by the service and repository layers. Repositories
// translate store-level outcomes (sql.ErrNoRows, zero rows affected on a
// conditional write, unique-constraint conflicts) into these values so the
// transport layer can map them to status codes without inspecting SQL errors.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("already resolved by a concurrent actor")
	ErrCapacityExceeded = errors.New("organization employee capacity exceeded")
	ErrOutOfStock       = errors.New("no available units")
	ErrForbidden        = errors.New("caller does not own this resource")
	ErrValidation       = errors.New("invalid input")
	ErrAlreadyReturned  = errors.New("assignment already returned")
	ErrDuplicatePayment = errors.New("payment transaction already recorded")
	ErrUnknownPackage   = errors.New("unknown subscription package")
)
