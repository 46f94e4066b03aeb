package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/utils"
)

// verifyHash checks the HashSHA256 header against the HMAC of the
// (already decompressed) request body. It is a no-op when the server runs
// without a hash key. A signed server rejects unsigned uploads.
func (h *Handler) verifyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.signer.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.verifyHash").Msg("failed to read request body")
			utils.WriteError(w, "failed to read request body", http.StatusBadRequest)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(utils.HashHeader)
		if signature == "" || !h.signer.Verify(body, signature) {
			log.Error().Str("func", "*Handler.verifyHash").
				Str("hash from request", signature).
				Msg("hashes are not equal")
			utils.WriteError(w, ErrIntegrityCheckFailed.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
