package httpadapter

import (
	"encoding/json"
	"net/http"
)

type initializeReq struct {
	FeePerAsset uint64 `json:"fee_per_asset"`
}

// handleInitialize creates the platform singleton. The caller becomes
// admin. A second call answers HTTP 409.
func (h *Handler) handleInitialize(w http.ResponseWriter, r *http.Request) {
	who := caller(r)
	if who == "" {
		http.Error(w, "missing "+callerHeader+" header", http.StatusBadRequest)
		return
	}
	var req initializeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.svc.Initialize(r.Context(), who, req.FeePerAsset); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

type platformResp struct {
	Admin          string   `json:"admin"`
	Operators      []string `json:"operators"`
	FeePerAsset    uint64   `json:"fee_per_asset"`
	AccumulatedFee uint64   `json:"accumulated_fee"`
	CampaignCount  int      `json:"campaign_count"`
}

func (h *Handler) handleGetPlatform(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetPlatform(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, platformResp{
		Admin:          view.Admin,
		Operators:      view.Operators,
		FeePerAsset:    view.FeePerAsset,
		AccumulatedFee: view.AccumulatedFee,
		CampaignCount:  view.CampaignCount,
	})
}

type setOperatorsReq struct {
	Operators []string `json:"operators"`
	Flags     []bool   `json:"flags"`
}

// handleSetOperators adds or removes operators pairwise. Admin only.
func (h *Handler) handleSetOperators(w http.ResponseWriter, r *http.Request) {
	who := caller(r)
	if who == "" {
		http.Error(w, "missing "+callerHeader+" header", http.StatusBadRequest)
		return
	}
	var req setOperatorsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.svc.SetOperators(r.Context(), who, req.Operators, req.Flags); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type setFeeReq struct {
	FeePerAsset uint64 `json:"fee_per_asset"`
}

// handleSetFeePerAsset replaces the per-entry fee rate. Operator only.
func (h *Handler) handleSetFeePerAsset(w http.ResponseWriter, r *http.Request) {
	who := caller(r)
	if who == "" {
		http.Error(w, "missing "+callerHeader+" header", http.StatusBadRequest)
		return
	}
	var req setFeeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.svc.SetFeePerAsset(r.Context(), who, req.FeePerAsset); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type withdrawReq struct {
	Recipient string `json:"recipient"`
}

type withdrawResp struct {
	Amount uint64 `json:"amount"`
}

// handleWithdrawFee pays the accumulated fee balance out. Admin only; an
// empty balance withdraws zero and still succeeds.
func (h *Handler) handleWithdrawFee(w http.ResponseWriter, r *http.Request) {
	who := caller(r)
	if who == "" {
		http.Error(w, "missing "+callerHeader+" header", http.StatusBadRequest)
		return
	}
	var req withdrawReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Recipient == "" {
		http.Error(w, "missing recipient", http.StatusBadRequest)
		return
	}
	amount, err := h.svc.WithdrawFee(r.Context(), who, req.Recipient)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, withdrawResp{Amount: amount})
}
