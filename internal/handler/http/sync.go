// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The seller-sync Authors

package http

import (
	"encoding/json"
	"net/http"

	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/internal/syncer"
	"github.com/webstore/seller-sync/internal/utils"
	"github.com/webstore/seller-sync/models"
)

// syncV3 serves POST /api/{entity}/syncdata3. The seller id always comes
// from the authenticated token, never from the body.
func (h *Handler) syncV3(s syncer.EntitySyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		sellerID, found := utils.GetSellerIDFromContext(ctx)
		if !found {
			log.Error().Str("entity", s.Entity()).Msg("no seller ID in request context")
			http.Error(w, "no seller ID was given", http.StatusUnauthorized)
			return
		}

		var req models.SyncV3Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Err(err).Str("entity", s.Entity()).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}

		if err := h.validator.Validate(ctx, req); err != nil {
			log.Err(err).Str("entity", s.Entity()).Msg("invalid sync request")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp, err := s.SyncV3(ctx, sellerID, req)
		if err != nil {
			log.Err(err).Str("entity", s.Entity()).Msg("sync v3 failed")
			http.Error(w, "sync failed", statusFromError(err))
			return
		}

		utils.WriteJSON(w, resp, http.StatusOK)
	}
}

// syncV4 serves POST /api/{entity}/syncdata4 with the caller-selectable
// id-presence gate and row version.
func (h *Handler) syncV4(s syncer.EntitySyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		sellerID, found := utils.GetSellerIDFromContext(ctx)
		if !found {
			log.Error().Str("entity", s.Entity()).Msg("no seller ID in request context")
			http.Error(w, "no seller ID was given", http.StatusUnauthorized)
			return
		}

		var req models.SyncV4Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Err(err).Str("entity", s.Entity()).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}

		if err := h.validator.Validate(ctx, req); err != nil {
			log.Err(err).Str("entity", s.Entity()).Msg("invalid sync request")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp, err := s.SyncV4(ctx, sellerID, req)
		if err != nil {
			log.Err(err).Str("entity", s.Entity()).Msg("sync v4 failed")
			http.Error(w, "sync failed", statusFromError(err))
			return
		}

		utils.WriteJSON(w, resp, http.StatusOK)
	}
}
