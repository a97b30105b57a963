package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/cinefeed/internal/api/v1/mocks"
	"github.com/vmunix/cinefeed/internal/catalog"
)

func TestRequestID_Generated(t *testing.T) {
	_, h := setupServer(t)

	w := do(t, h, http.MethodGet, "/healthz")
	id := w.Header().Get(requestIDHeader)
	require.NotEmpty(t, id)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestRequestID_Propagated(t *testing.T) {
	_, h := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestRequestIDFromContext(t *testing.T) {
	srv := &Server{log: testLogger()}

	var got string
	h := srv.requestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "ctx-id")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "ctx-id", got)
}

func TestRecovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	gw.EXPECT().Trending(gomock.Any()).DoAndReturn(func(context.Context) []catalog.Movie { panic("boom") })

	srv, err := New(ServerDeps{Gateway: gw, Log: testLogger()})
	require.NoError(t, err)

	w := do(t, srv.Handler(), http.MethodGet, "/api/v1/movies/trending")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode[errorResponse](t, w).Code)
}

func TestStatusWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec, status: http.StatusOK}

	sw.WriteHeader(http.StatusTeapot)
	sw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusTeapot, sw.status)
	assert.Equal(t, rec, sw.Unwrap())
}
