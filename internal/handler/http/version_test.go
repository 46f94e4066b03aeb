package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	f := newFixture(t, "")
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v0.4.0")

	rr := httptest.NewRecorder()
	f.h.getServerVersion(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "v0.4.0", rr.Body.String())
}

func TestHealth(t *testing.T) {
	h := newTestHandler()
	for _, method := range []string{http.MethodHead, http.MethodGet} {
		rr := httptest.NewRecorder()
		h.health(rr, httptest.NewRequest(method, "/api/health", nil))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	}
}
