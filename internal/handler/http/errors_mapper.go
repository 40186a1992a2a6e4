package http

import (
	"errors"
	"net/http"

	"github.com/webstore/seller-sync/internal/service"
	"github.com/webstore/seller-sync/internal/store"
	"github.com/webstore/seller-sync/internal/syncer"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrValidationNoSettingName: http.StatusBadRequest,
	service.ErrValidationNoReportKind:  http.StatusBadRequest,

	// An unregistered row version is a server configuration error, not a
	// client error: it must be loud, never a silent fallback.
	syncer.ErrUnknownRowVersion: http.StatusInternalServerError,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoSellerWasFound:   http.StatusNotFound,
	store.ErrSettingNotSaved:    http.StatusInternalServerError,
	store.ErrSettingNotOwned:    http.StatusForbidden,
	store.ErrReportNotSaved:     http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
