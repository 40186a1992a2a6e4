package replica

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrMalformedRow is returned by the local store when a received row is
	// empty or its first column cannot be read as an item id.
	ErrMalformedRow = errors.New("malformed compressed row")
)
