package v1

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/cinefeed/internal/api/v1/mocks"
	"github.com/vmunix/cinefeed/internal/catalog"
	"github.com/vmunix/cinefeed/internal/telemetry"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMovie(id, title string) catalog.Movie {
	return catalog.Movie{
		ID:           id,
		Title:        title,
		Overview:     catalog.NoDescription,
		PosterPath:   catalog.NotAvailable,
		BackdropPath: catalog.NotAvailable,
		Genres:       []catalog.Genre{},
	}
}

func setupServer(t *testing.T) (*mocks.MockGateway, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	srv, err := New(ServerDeps{Gateway: gw, Log: testLogger(), Version: "test"})
	require.NoError(t, err)
	return gw, srv.Handler()
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestNew_MissingGateway(t *testing.T) {
	_, err := New(ServerDeps{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingDependency))
}

func TestTrending(t *testing.T) {
	gw, h := setupServer(t)
	gw.EXPECT().Trending(gomock.Any()).Return([]catalog.Movie{
		testMovie("tt0111161", "The Shawshank Redemption"),
		testMovie("tt0068646", "The Godfather"),
	})

	w := do(t, h, http.MethodGet, "/api/v1/movies/trending")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decode[listResponse](t, w)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "tt0111161", resp.Items[0].ID)
	assert.Equal(t, "tt0068646", resp.Items[1].ID)
}

func TestPopular_EmptyIsArray(t *testing.T) {
	gw, h := setupServer(t)
	gw.EXPECT().Popular(gomock.Any()).Return(nil)

	w := do(t, h, http.MethodGet, "/api/v1/movies/popular")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

func TestSearch(t *testing.T) {
	gw, h := setupServer(t)
	gw.EXPECT().Search(gomock.Any(), "matrix").Return([]catalog.Movie{
		testMovie("tt0133093", "The Matrix"),
	})

	w := do(t, h, http.MethodGet, "/api/v1/movies/search?q=matrix")
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decode[searchResponse](t, w)
	assert.Equal(t, "matrix", resp.Query)
	assert.Equal(t, 1, resp.Total)
	assert.Nil(t, resp.Best)
}

func TestSearch_Best(t *testing.T) {
	gw, h := setupServer(t)
	gw.EXPECT().Search(gomock.Any(), "the matrix reloaded").Return([]catalog.Movie{
		testMovie("tt0133093", "The Matrix"),
		testMovie("tt0234215", "The Matrix Reloaded"),
	})

	w := do(t, h, http.MethodGet, "/api/v1/movies/search?q=the+matrix+reloaded&best=1")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[searchResponse](t, w)
	require.NotNil(t, resp.Best)
	assert.Equal(t, "tt0234215", resp.Best.Movie.ID)
	assert.Equal(t, "high", resp.Best.Confidence)
}

func TestSearch_MissingQuery(t *testing.T) {
	_, h := setupServer(t)

	w := do(t, h, http.MethodGet, "/api/v1/movies/search?q=+")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[errorResponse](t, w)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
}

func TestGetMovie(t *testing.T) {
	gw, h := setupServer(t)
	gw.EXPECT().Details(gomock.Any(), "603").Return(testMovie("tt0000603", "Some Movie"), true)

	w := do(t, h, http.MethodGet, "/api/v1/movies/603")
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decode[catalog.Movie](t, w)
	assert.Equal(t, "tt0000603", resp.ID)
	assert.Equal(t, catalog.NoDescription, resp.Overview)
}

func TestGetMovie_NotFound(t *testing.T) {
	gw, h := setupServer(t)
	gw.EXPECT().Details(gomock.Any(), "tt9999999").Return(catalog.Movie{}, false)

	w := do(t, h, http.MethodGet, "/api/v1/movies/tt9999999")
	assert.Equal(t, http.StatusNotFound, w.Code)

	resp := decode[errorResponse](t, w)
	assert.Equal(t, "NOT_FOUND", resp.Code)
	assert.Contains(t, resp.Error, "tt9999999")
}

func TestSimilar_NormalizesID(t *testing.T) {
	gw, h := setupServer(t)
	gw.EXPECT().Similar(gomock.Any(), "tt0000603").Return([]catalog.Movie{testMovie("tt0068646", "The Godfather")})

	w := do(t, h, http.MethodGet, "/api/v1/movies/603/similar")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[listResponse](t, w).Total)
}

func TestClearCache(t *testing.T) {
	gw, h := setupServer(t)
	gw.EXPECT().ClearCache()

	w := do(t, h, http.MethodDelete, "/api/v1/cache")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[clearCacheResponse](t, w).Cleared)
}

func TestImage(t *testing.T) {
	_, h := setupServer(t)

	tests := []struct {
		query string
		want  string
	}{
		{"", "https://via.placeholder.com/300x450?text=No+Poster"},
		{"?path=N/A", "https://via.placeholder.com/300x450?text=No+Poster"},
		{"?path=https://m.media-amazon.com/images/M/abc.jpg", "https://m.media-amazon.com/images/M/abc.jpg?format=jpg&quality=85"},
		{"?path=https://example.com/p.jpg&size=500", "https://example.com/p.jpg"},
	}
	for _, tt := range tests {
		w := do(t, h, http.MethodGet, "/api/v1/image"+tt.query)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, tt.want, decode[imageResponse](t, w).URL, tt.query)
	}
}

func TestStatus(t *testing.T) {
	gw, h := setupServer(t)
	gw.EXPECT().CacheStats().Return(3, 1)

	w := do(t, h, http.MethodGet, "/api/v1/status")
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decode[statusResponse](t, w)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test", resp.Version)
	assert.Equal(t, 3, resp.CachedMovies)
	assert.Equal(t, 1, resp.CachedLists)
}

func TestHealthz(t *testing.T) {
	_, h := setupServer(t)

	w := do(t, h, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestNotFoundRoute(t *testing.T) {
	_, h := setupServer(t)

	w := do(t, h, http.MethodGet, "/api/v1/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode[errorResponse](t, w).Code)
}

func TestMethodNotAllowed(t *testing.T) {
	_, h := setupServer(t)

	w := do(t, h, http.MethodPost, "/api/v1/movies/trending")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	gw.EXPECT().Trending(gomock.Any()).Return(nil)

	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(reg)
	srv, err := New(ServerDeps{Gateway: gw, Log: testLogger(), Metrics: m, Gatherer: reg})
	require.NoError(t, err)
	h := srv.Handler()

	do(t, h, http.MethodGet, "/api/v1/movies/trending")
	assert.InDelta(t, 1, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/v1/movies/trending", "200")), 0)

	w := do(t, h, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "cinefeed_requests_total"))
}

func TestMetricsEndpoint_Disabled(t *testing.T) {
	_, h := setupServer(t)

	w := do(t, h, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
