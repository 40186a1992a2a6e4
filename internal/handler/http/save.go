package http

import (
	"encoding/json"
	"net/http"

	"github.com/webstore/seller-sync/internal/logger"
	"github.com/webstore/seller-sync/internal/utils"
	"github.com/webstore/seller-sync/models"
)

// saveSettingRequest is the JSON body of POST /api/setting/save.
type saveSettingRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// saveReportRequest is the JSON body of POST /api/report/save.
type saveReportRequest struct {
	Kind    string `json:"kind"`
	Payload string `json:"payload"`
}

// saveSetting is the write-through side channel for the mobile settings
// screen. The upserted row flows back to other devices via setting sync.
func (h *Handler) saveSetting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sellerID, found := utils.GetSellerIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.saveSetting").Msg("no seller ID in request context")
		http.Error(w, "no seller ID was given", http.StatusUnauthorized)
		return
	}

	var req saveSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.SettingService.SaveSetting(ctx, models.Setting{
		SellerID: sellerID,
		Name:     req.Name,
		Value:    req.Value,
	})
	if err != nil {
		log.Err(err).Int64("seller_id", sellerID).Msg("saving setting failed")
		http.Error(w, "saving setting failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

// saveReport accepts a client-generated report row.
func (h *Handler) saveReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sellerID, found := utils.GetSellerIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.saveReport").Msg("no seller ID in request context")
		http.Error(w, "no seller ID was given", http.StatusUnauthorized)
		return
	}

	var req saveReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.ReportService.SaveReport(ctx, models.Report{
		SellerID: sellerID,
		Kind:     req.Kind,
		Payload:  req.Payload,
	})
	if err != nil {
		log.Err(err).Int64("seller_id", sellerID).Msg("saving report failed")
		http.Error(w, "saving report failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}
