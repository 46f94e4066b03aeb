package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fin-sync/internal/utils"
	"github.com/MKhiriev/go-fin-sync/models"
)

func TestRoutes_Public(t *testing.T) {
	f := newFixture(t, "")
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")
	srv := httptest.NewServer(f.h.Init())
	defer srv.Close()

	resp, err := http.Head(srv.URL + "/api/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))

	resp, err = http.Get(srv.URL + "/api/version")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// неподдерживаемый метод => 404 вместо 405
	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/health", nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRoutes_DeltaRequiresAuth(t *testing.T) {
	f := newFixture(t, "")
	srv := httptest.NewServer(f.h.Init())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/sync/delta")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Полный путь загрузки: gzip-тело, подпись HMAC от распакованного JSON.
func TestRoutes_SignedCompressedUpload(t *testing.T) {
	f := newFixture(t, testHashKey)
	_, body := uploadBody(t)

	f.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{UserID: 7}, nil).Times(2)
	f.deltas.EXPECT().ApplyDeltas(gomock.Any(), int64(7), gomock.Any()).Return(nil)

	srv := httptest.NewServer(f.h.Init())
	defer srv.Close()

	send := func(signature string) int {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/sync/delta", bytes.NewReader(gzipBytes(t, body)))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer good")
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set(utils.HashHeader, signature)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusOK, send(utils.NewSigner(testHashKey).Sign(body)))
	assert.Equal(t, http.StatusBadRequest, send("deadbeef"))
}
