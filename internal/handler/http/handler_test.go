package http

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/mock"
	"github.com/MKhiriev/go-fin-sync/internal/service"
	"github.com/MKhiriev/go-fin-sync/internal/utils"
)

const testHashKey = "secret"

type handlerFixture struct {
	h       *Handler
	auth    *mock.MockAuthService
	deltas  *mock.MockDeltaService
	appInfo *mock.MockAppInfoService
}

// newFixture собирает Handler поверх моков сервисов.
func newFixture(t *testing.T, hashKey string) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		auth:    mock.NewMockAuthService(ctrl),
		deltas:  mock.NewMockDeltaService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	f.h = NewHandler(&service.Services{
		AuthService:    f.auth,
		DeltaService:   f.deltas,
		AppInfoService: f.appInfo,
	}, hashKey, logger.Nop())
	return f
}

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop(), signer: utils.NewSigner("")}
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
