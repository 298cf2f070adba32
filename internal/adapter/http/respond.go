package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"airdrop-platform/internal/core/domain"
	"airdrop-platform/internal/core/port"
)

// writeJSON encodes v as the response body. Encoding failures are logged;
// by then the status line is already on the wire.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain and port errors onto HTTP statuses. Unrecognized
// errors are treated as internal and not echoed to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrCampaignNotFound),
		errors.Is(err, domain.ErrNotInitialized):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyInitialized),
		errors.Is(err, domain.ErrDuplicateCampaign),
		errors.Is(err, domain.ErrNotStarted),
		errors.Is(err, domain.ErrDepleted),
		errors.Is(err, port.ErrInsufficientAllowance),
		errors.Is(err, port.ErrTransferFailure):
		return http.StatusConflict
	case errors.Is(err, domain.ErrArgumentMismatch),
		errors.Is(err, domain.ErrEmptyAssetList),
		errors.Is(err, domain.ErrZeroAssetAmount),
		errors.Is(err, domain.ErrIndexOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientFee),
		errors.Is(err, port.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
