package syncer

import "errors"

var (
	// ErrUnknownRowVersion is returned when a sync request names a
	// compression version that has no registered row encoder. This signals
	// client/server protocol skew and maps to an internal error at the
	// transport boundary, not a client error.
	ErrUnknownRowVersion = errors.New("no row encoder registered for requested version")
)
