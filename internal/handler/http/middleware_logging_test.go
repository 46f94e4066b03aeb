package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantSize   int
	}{
		{
			name: "explicit status and body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte("hello"))
			},
			wantStatus: http.StatusCreated,
			wantSize:   5,
		},
		{
			name: "implicit 200 on write",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("abc"))
				w.Write([]byte("de"))
			},
			wantStatus: http.StatusOK,
			wantSize:   5,
		},
		{
			name:       "nothing written",
			handler:    func(w http.ResponseWriter, r *http.Request) {},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			log := logger.NewLogger("test", logger.WithOutput(&out))
			h := &Handler{logger: log}

			req := httptest.NewRequest(http.MethodPost, "/api/sync/delta?x=1", nil)
			req = req.WithContext(log.WithContext(req.Context()))
			rr := httptest.NewRecorder()
			h.withLogging(tt.handler).ServeHTTP(rr, req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
			assert.Equal(t, "/api/sync/delta?x=1", entry["uri"])
			assert.Equal(t, http.MethodPost, entry["method"])
			assert.EqualValues(t, tt.wantStatus, entry["status"])
			assert.EqualValues(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}
