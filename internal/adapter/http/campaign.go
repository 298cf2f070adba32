package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"airdrop-platform/internal/core/port"
)

type assetPayload struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

type campaignPayload struct {
	ID           string         `json:"id,omitempty"`
	Assets       []assetPayload `json:"assets"`
	StartingTime int64          `json:"starting_time"`
}

type campaignResp struct {
	ID                   string         `json:"id"`
	Creator              string         `json:"creator"`
	Assets               []assetPayload `json:"assets"`
	StartingTime         int64          `json:"starting_time"`
	TotalAvailableAssets uint64         `json:"total_available_assets"`
	FeeCharged           *uint64        `json:"fee_charged,omitempty"`
}

func toCampaignResp(v port.CampaignView) campaignResp {
	assets := make([]assetPayload, len(v.Assets))
	for i, a := range v.Assets {
		assets[i] = assetPayload{Address: a.Address, Amount: a.Amount}
	}
	return campaignResp{
		ID:                   v.ID,
		Creator:              v.Creator,
		Assets:               assets,
		StartingTime:         v.StartingTime,
		TotalAvailableAssets: v.TotalAvailableAssets,
	}
}

func toCampaignReq(id string, p campaignPayload) port.CampaignReq {
	assets := make([]port.AssetInput, len(p.Assets))
	for i, a := range p.Assets {
		assets[i] = port.AssetInput{Address: a.Address, Amount: a.Amount}
	}
	return port.CampaignReq{ID: id, Assets: assets, StartingTime: p.StartingTime}
}

// handleCreateCampaign registers a campaign owned by the caller and charges
// the per-entry fee.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	who := caller(r)
	if who == "" {
		http.Error(w, "missing "+callerHeader+" header", http.StatusBadRequest)
		return
	}
	var p campaignPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if p.ID == "" {
		http.Error(w, "missing campaign id", http.StatusBadRequest)
		return
	}
	res, err := h.svc.CreateCampaign(r.Context(), who, toCampaignReq(p.ID, p))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := toCampaignResp(res.Campaign)
	resp.FeeCharged = &res.FeeCharged
	h.writeJSON(w, http.StatusCreated, resp)
}

// handleUpdateCampaign replaces the campaign definition wholesale. The fee
// is charged again for the new entry count.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	who := caller(r)
	if who == "" {
		http.Error(w, "missing "+callerHeader+" header", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "campaignID")
	var p campaignPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	res, err := h.svc.UpdateCampaign(r.Context(), who, toCampaignReq(id, p))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := toCampaignResp(res.Campaign)
	resp.FeeCharged = &res.FeeCharged
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]campaignResp, len(views))
	for i, v := range views {
		resp[i] = toCampaignResp(v)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetCampaign(r.Context(), chi.URLParam(r, "campaignID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResp(*view))
}
