package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/fretboard-keeper/internal/config"
	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/internal/service"
	"github.com/MKhiriev/fretboard-keeper/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "test-token"

type serviceMocks struct {
	auth    *MockAuthService
	dirs    *MockDirectoryService
	states  *MockStateService
	sync    *MockSyncService
	appInfo *MockAppInfoService
}

func testServerConfig() config.Server {
	return config.Server{
		APIPrefix:      "/api",
		CORSOrigins:    []string{"*"},
		RequestTimeout: 5 * time.Second,
	}
}

// newTestRouter returns the full router backed by service mocks.
func newTestRouter(t *testing.T) (http.Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		auth:    NewMockAuthService(ctrl),
		dirs:    NewMockDirectoryService(ctrl),
		states:  NewMockStateService(ctrl),
		sync:    NewMockSyncService(ctrl),
		appInfo: NewMockAppInfoService(ctrl),
	}
	svcs := &service.Services{
		AuthService:      m.auth,
		DirectoryService: m.dirs,
		StateService:     m.states,
		SyncService:      m.sync,
		AppInfoService:   m.appInfo,
	}

	return NewHandler(svcs, testServerConfig(), logger.Nop()).Init(), m
}

// do sends a request through router and returns the recorded response.
func do(router http.Handler, method, target string, body any, header http.Header) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// doAuthed is like do but carries a bearer token that the auth mock resolves
// to "alice".
func doAuthed(router http.Handler, m serviceMocks, method, target string, body any) *httptest.ResponseRecorder {
	m.auth.EXPECT().Authenticate(gomock.Any(), testToken).Return("alice", nil)
	return do(router, method, target, body, http.Header{"Authorization": {"Bearer " + testToken}})
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func errorDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.ErrorResponse](t, rec).Detail
}
