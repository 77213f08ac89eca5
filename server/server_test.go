package server_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campuswalk/campus"
	"github.com/katalvlaran/campuswalk/metrics"
	"github.com/katalvlaran/campuswalk/server"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testMap = `digraph campus {
  "Library" -> "Union" [seconds="60"];
  "Union" -> "Lab" [seconds="90.5"];
  "Library" -> "Lab" [seconds="200"];
  "Lab" -> "Gym" [seconds="30"];
  "Island" -> "Library" [seconds="10"];
}
`

func newServer(t *testing.T, opts ...server.Option) *server.Server {
	t.Helper()
	svc := campus.New()
	require.NoError(t, svc.Load(strings.NewReader(testMap)))

	return server.New(svc, opts...)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

// ------------------------------------------------------------------------
// 1. Health and locations
// ------------------------------------------------------------------------

func TestHealth(t *testing.T) {
	w := get(t, newServer(t).Handler(), "/healthz")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[server.HealthResponse](t, w)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 5, resp.Locations)
	assert.Equal(t, 5, resp.Walkways)
}

func TestLocations(t *testing.T) {
	w := get(t, newServer(t).Handler(), "/v1/locations")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[server.LocationsResponse](t, w)
	assert.Equal(t, []string{"Library", "Union", "Lab", "Gym", "Island"}, resp.Locations)
}

// ------------------------------------------------------------------------
// 2. Route
// ------------------------------------------------------------------------

func TestRoute_Found(t *testing.T) {
	w := get(t, newServer(t).Handler(), "/v1/route?start=Library&end=Gym")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[campus.Route](t, w)
	assert.True(t, resp.Found)
	assert.Equal(t, []string{"Library", "Union", "Lab", "Gym"}, resp.Stops)
	require.Len(t, resp.Legs, 3)
	assert.InDelta(t, 90.5, resp.Legs[1].Seconds, 1e-9)
	assert.InDelta(t, 180.5, resp.TotalSeconds, 1e-9)
}

func TestRoute_Via(t *testing.T) {
	w := get(t, newServer(t).Handler(), "/v1/route?start=Island&via=Union&end=Gym")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[campus.Route](t, w)
	assert.True(t, resp.Found)
	assert.Equal(t, []string{"Island", "Library", "Union", "Lab", "Gym"}, resp.Stops)
	assert.InDelta(t, 190.5, resp.TotalSeconds, 1e-9)
}

func TestRoute_NoPath(t *testing.T) {
	w := get(t, newServer(t).Handler(), "/v1/route?start=Gym&end=Library")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[campus.Route](t, w)
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Stops)
	assert.Zero(t, resp.TotalSeconds)
}

func TestRoute_MissingParams(t *testing.T) {
	h := newServer(t).Handler()
	for _, target := range []string{"/v1/route", "/v1/route?start=Library", "/v1/route?end=Gym"} {
		w := get(t, h, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, "MISSING_PARAMETER", decode[server.ErrorResponse](t, w).Code)
	}
}

func TestRoute_UnknownLocation(t *testing.T) {
	w := get(t, newServer(t).Handler(), "/v1/route?start=Library&end=Moon")
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decode[server.ErrorResponse](t, w)
	assert.Equal(t, "UNKNOWN_LOCATION", resp.Code)
	assert.Contains(t, resp.Error, "Moon")
}

func TestRoute_NotLoaded(t *testing.T) {
	h := server.New(campus.New()).Handler()
	w := get(t, h, "/v1/route?start=a&end=b")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "NOT_LOADED", decode[server.ErrorResponse](t, w).Code)
}

// ------------------------------------------------------------------------
// 3. Reachable
// ------------------------------------------------------------------------

func TestReachable(t *testing.T) {
	w := get(t, newServer(t).Handler(), "/v1/reachable?from=Library")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[server.ReachableResponse](t, w)
	assert.Equal(t, "Library", resp.From)
	assert.Equal(t, []campus.Reach{
		{Name: "Library", Hops: 0},
		{Name: "Union", Hops: 1},
		{Name: "Lab", Hops: 1},
		{Name: "Gym", Hops: 2},
	}, resp.Locations)
}

func TestReachable_MaxHops(t *testing.T) {
	w := get(t, newServer(t).Handler(), "/v1/reachable?from=Library&max_hops=1")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[server.ReachableResponse](t, w)
	assert.Len(t, resp.Locations, 3)
}

func TestReachable_BadParams(t *testing.T) {
	h := newServer(t).Handler()

	w := get(t, h, "/v1/reachable")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(t, h, "/v1/reachable?from=Library&max_hops=-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_PARAMETER", decode[server.ErrorResponse](t, w).Code)

	w = get(t, h, "/v1/reachable?from=Moon")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ------------------------------------------------------------------------
// 4. Middleware
// ------------------------------------------------------------------------

func TestRequestID(t *testing.T) {
	h := newServer(t).Handler()

	w := get(t, h, "/healthz")
	assert.Len(t, w.Header().Get(server.RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(server.RequestIDHeader))
}

func TestCORS(t *testing.T) {
	h := newServer(t, server.WithCORSOrigins("https://maps.example.edu")).Handler()

	req := httptest.NewRequest(http.MethodGet, "/v1/locations", nil)
	req.Header.Set("Origin", "https://maps.example.edu")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "https://maps.example.edu", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/locations", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := metrics.NewRegistry()
	h := newServer(t, server.WithMetrics(reg)).Handler()

	require.Equal(t, http.StatusOK, get(t, h, "/v1/route?start=Library&end=Gym").Code)
	require.Equal(t, http.StatusNotFound, get(t, h, "/nowhere").Code)

	w := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `campuswalk_http_requests_total{method="GET",path="/v1/route",status="200"} 1`)
	assert.Contains(t, body, `path="unmatched"`)
}

func TestNoMetricsRouteWithoutRegistry(t *testing.T) {
	w := get(t, newServer(t).Handler(), "/metrics")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ------------------------------------------------------------------------
// 5. Run
// ------------------------------------------------------------------------

func TestRun_ShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	s := newServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(server.ShutdownTimeout + time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_ListenError(t *testing.T) {
	err := newServer(t).Run(context.Background(), "not-an-address")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server: listen")
}
