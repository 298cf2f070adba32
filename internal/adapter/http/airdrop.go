package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type airdropReq struct {
	AssetIndex int    `json:"asset_index"`
	Recipient  string `json:"recipient"`
}

type airdropResp struct {
	CampaignID      string `json:"campaign_id"`
	AssetAddress    string `json:"asset_address"`
	Amount          uint64 `json:"amount"`
	Recipient       string `json:"recipient"`
	CampaignRemoved bool   `json:"campaign_removed"`
}

// handleAirdrop distributes one asset entry's full remaining amount to the
// recipient. Operator only; rejected before the campaign's starting time.
func (h *Handler) handleAirdrop(w http.ResponseWriter, r *http.Request) {
	who := caller(r)
	if who == "" {
		http.Error(w, "missing "+callerHeader+" header", http.StatusBadRequest)
		return
	}
	var req airdropReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Recipient == "" {
		http.Error(w, "missing recipient", http.StatusBadRequest)
		return
	}
	res, err := h.svc.Airdrop(r.Context(), who, chi.URLParam(r, "campaignID"), req.AssetIndex, req.Recipient)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, airdropResp{
		CampaignID:      res.CampaignID,
		AssetAddress:    res.AssetAddress,
		Amount:          res.Amount,
		Recipient:       res.Recipient,
		CampaignRemoved: res.CampaignRemoved,
	})
}
