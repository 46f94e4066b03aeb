package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/utils"
	"github.com/MKhiriev/go-fin-sync/models"
)

// getDeltas answers GET /api/sync/delta?since=<RFC 3339>. A missing since
// means the beginning of time.
func (h *Handler) getDeltas(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getDeltas").Msg("no user ID was given")
		utils.WriteError(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	since, err := parseSince(r.URL.Query().Get("since"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDeltas").Str("since", r.URL.Query().Get("since")).Send()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	delta, err := h.services.DeltaService.GetDeltas(ctx, userID, since)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDeltas").Msg("error computing deltas")
		utils.WriteError(w, "error computing deltas", statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, delta, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getDeltas").Msg("error writing response")
	}
}

// uploadDeltas answers POST /api/sync/delta with a DeltaUploadRequest body.
func (h *Handler) uploadDeltas(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.uploadDeltas").Msg("no user ID was given")
		utils.WriteError(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	var req models.DeltaUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.uploadDeltas").Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	ctx = utils.WithDeviceID(ctx, req.DeviceID)
	if err := h.services.DeltaService.ApplyDeltas(ctx, userID, req); err != nil {
		log.Err(err).Str("func", "*Handler.uploadDeltas").Str("device_id", req.DeviceID).Msg("error applying deltas")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, uploadResponse{Accepted: len(req.Deltas)}, http.StatusOK)
}

type uploadResponse struct {
	Accepted int `json:"accepted"`
}

func parseSince(raw string) (time.Time, error) {
	if raw == "" {
		return models.Epoch, nil
	}

	since, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, errors.Join(ErrInvalidSince, err)
	}
	return since.UTC(), nil
}
