package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNegativeID         = errors.New("ids must be positive")
	ErrDuplicateID        = errors.New("ids must be unique")
	ErrNegativeWatermark  = errors.New("lastUpdateTs cannot be negative")
	ErrNegativeRowVersion = errors.New("compressionVersion cannot be negative")
)
