package httpadapter

import (
	"net/http"
	"time"

	"airdrop-platform/internal/core/port"
)

type statsResp struct {
	CampaignsCreated  int64  `json:"campaigns_created"`
	CampaignsUpdated  int64  `json:"campaigns_updated"`
	Airdrops          int64  `json:"airdrops"`
	AmountDistributed uint64 `json:"amount_distributed"`
	FeesCollected     uint64 `json:"fees_collected"`
	FeesWithdrawn     uint64 `json:"fees_withdrawn"`
}

// handleStatsOverview aggregates recorded platform events over a period
// given by optional `from` and `to` RFC3339 query parameters. Without a
// period it covers the last 24 hours.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q   = r.URL.Query()
		req port.StatsReq
		err error
	)

	if fromStr := q.Get("from"); fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.From = time.Now().Add(-24 * time.Hour)
	}

	if toStr := q.Get("to"); toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.To = time.Now()
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, statsResp{
		CampaignsCreated:  stats.CampaignsCreated,
		CampaignsUpdated:  stats.CampaignsUpdated,
		Airdrops:          stats.Airdrops,
		AmountDistributed: stats.AmountDistributed,
		FeesCollected:     stats.FeesCollected,
		FeesWithdrawn:     stats.FeesWithdrawn,
	})
}
