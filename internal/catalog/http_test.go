package catalog_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"Literae/internal/catalog"
)

// fakeProvider records the last request and answers with a canned response.
type fakeProvider struct {
	mu     sync.Mutex
	last   *url.URL
	status int
	body   string
}

func (f *fakeProvider) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.last = r.URL
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = io.WriteString(w, f.body)
}

func (f *fakeProvider) lastURL() *url.URL {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

func newCatalogTS(t *testing.T, upstreamURL string, reg prometheus.Registerer) *httptest.Server {
	t.Helper()

	var metrics *catalog.UpstreamMetrics
	if reg != nil {
		metrics = catalog.NewUpstreamMetrics(reg)
	}

	s := &catalog.Server{
		Catalog: catalog.NewClient(catalog.ClientConfig{
			BaseURL: upstreamURL,
			APIKey:  "test-key",
			Metrics: metrics,
		}),
		Log: zap.NewNop(),
	}
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, u string) (int, map[string]any) {
	t.Helper()

	resp, err := http.Get(u)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestSearch_GenreFilter(t *testing.T) {
	up := &fakeProvider{status: http.StatusOK, body: `{"kind":"books#volumes","totalItems":1,"items":[{"id":"x"}]}`}
	upTS := httptest.NewServer(up)
	t.Cleanup(upTS.Close)

	ts := newCatalogTS(t, upTS.URL, nil)

	t.Run("genre all", func(t *testing.T) {
		status, out := get(t, ts.URL+"/?q=dune&genre=all")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(1), out["totalItems"])

		q := up.lastURL().Query()
		assert.Equal(t, "/volumes", up.lastURL().Path)
		assert.Equal(t, "dune", q.Get("q"))
		assert.Equal(t, "0", q.Get("startIndex"))
		assert.Equal(t, "10", q.Get("maxResults"))
		assert.Equal(t, "test-key", q.Get("key"))
	})

	t.Run("specific genre", func(t *testing.T) {
		status, _ := get(t, ts.URL+"/?q=dune&genre=Fiction&startIndex=10&maxResults=20")
		require.Equal(t, http.StatusOK, status)

		q := up.lastURL().Query()
		assert.Equal(t, "dune+subject:Fiction", q.Get("q"))
		assert.Equal(t, "10", q.Get("startIndex"))
		assert.Equal(t, "20", q.Get("maxResults"))
	})
}

func TestVolume_PassesThrough(t *testing.T) {
	up := &fakeProvider{status: http.StatusOK, body: `{"id":"zyTCAlFPjgYC","volumeInfo":{"title":"The Google story"}}`}
	upTS := httptest.NewServer(up)
	t.Cleanup(upTS.Close)

	ts := newCatalogTS(t, upTS.URL, nil)

	status, out := get(t, ts.URL+"/zyTCAlFPjgYC")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "zyTCAlFPjgYC", out["id"])
	assert.Equal(t, "/volumes/zyTCAlFPjgYC", up.lastURL().Path)
}

func TestUpstreamStatusIsRelayed(t *testing.T) {
	up := &fakeProvider{status: http.StatusForbidden, body: `{"error":{"code":403}}`}
	upTS := httptest.NewServer(up)
	t.Cleanup(upTS.Close)

	reg := prometheus.NewRegistry()
	ts := newCatalogTS(t, upTS.URL, reg)

	status, out := get(t, ts.URL+"/?q=x")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Failed to fetch from Google Books API", out["error"])

	status, out = get(t, ts.URL+"/abc")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Failed to fetch book detail", out["error"])

	n, err := testutil.GatherAndCount(reg, "catalog_upstream_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestUpstreamFailuresBecome500(t *testing.T) {
	t.Run("unreachable", func(t *testing.T) {
		upTS := httptest.NewServer(http.NotFoundHandler())
		upURL := upTS.URL
		upTS.Close()

		ts := newCatalogTS(t, upURL, nil)
		status, out := get(t, ts.URL+"/?q=x")
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "Server error", out["error"])
	})

	t.Run("invalid json", func(t *testing.T) {
		up := &fakeProvider{status: http.StatusOK, body: `<html>`}
		upTS := httptest.NewServer(up)
		t.Cleanup(upTS.Close)

		ts := newCatalogTS(t, upTS.URL, nil)
		status, out := get(t, ts.URL+"/abc")
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "Server error", out["error"])
	})
}
