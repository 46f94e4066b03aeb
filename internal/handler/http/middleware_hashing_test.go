package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/utils"
)

func TestVerifyHash(t *testing.T) {
	body := []byte(`{"deviceId":"d1"}`)
	signer := utils.NewSigner(testHashKey)

	tests := []struct {
		name       string
		key        string
		signature  string
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "matching signature",
			key:        testHashKey,
			signature:  signer.Sign(body),
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "wrong signature",
			key:        testHashKey,
			signature:  utils.NewSigner("other").Sign(body),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing signature",
			key:        testHashKey,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not hex",
			key:        testHashKey,
			signature:  "zz",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "hash check disabled",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop(), signer: utils.NewSigner(tt.key)}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				// тело должно быть восстановлено после чтения
				got, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.Equal(t, body, got)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/sync/delta", bytes.NewReader(body))
			if tt.signature != "" {
				req.Header.Set(utils.HashHeader, tt.signature)
			}
			rr := httptest.NewRecorder()
			h.verifyHash(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
