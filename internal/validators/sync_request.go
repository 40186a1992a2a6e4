package validators

import (
	"context"
	"fmt"

	"github.com/webstore/seller-sync/models"
)

const (
	FieldIDsInDB            = "ids_in_db"
	FieldLastUpdateTs       = "last_update_ts"
	FieldCompressionVersion = "compression_version"
)

// SyncRequestValidator enforces the structural rules of the sync protocol
// request bodies before they reach the coordinator.
type SyncRequestValidator struct {
}

func NewSyncRequestValidator() Validator {
	return &SyncRequestValidator{}
}

func (v *SyncRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncV3Request:
		return v.validateV3(ctx, value, fields...)
	case *models.SyncV3Request:
		return v.validateV3(ctx, *value, fields...)

	case models.SyncV4Request:
		return v.validateV4(ctx, value, fields...)
	case *models.SyncV4Request:
		return v.validateV4(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *SyncRequestValidator) validateV3(ctx context.Context, req models.SyncV3Request, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIDsInDB, FieldLastUpdateTs}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldIDsInDB:
			err = validateIDs(req.IDsInDB)
		case FieldLastUpdateTs:
			err = validateWatermark(req.LastUpdateTs)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *SyncRequestValidator) validateV4(ctx context.Context, req models.SyncV4Request, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIDsInDB, FieldLastUpdateTs, FieldCompressionVersion}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldIDsInDB:
			err = validateIDs(req.IDsInDB)
		case FieldLastUpdateTs:
			err = validateWatermark(req.LastUpdateTs)
		case FieldCompressionVersion:
			if req.CompressionVersion < 0 {
				err = ErrNegativeRowVersion
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateIDs(ids []int64) error {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("%w: %d", ErrNegativeID, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

func validateWatermark(ts *int64) error {
	if ts != nil && *ts < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeWatermark, *ts)
	}
	return nil
}
