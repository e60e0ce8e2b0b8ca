package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *Server {
	cfg := DefaultRouterConfig()
	cfg.ResolutionDeg = 2.0 // coarse lattice keeps handler tests fast
	cfg.MaxConnectDeg = 3.0
	return NewServer(NewRouter(&LandMask{}, EmptyDepthGrid(), cfg))
}

func postRoute(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-route", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGenerateRouteEndpoint(t *testing.T) {
	handler := testServer().Handler()

	rec := postRoute(t, handler, `{
		"origin": "Singapore",
		"destination": "Shanghai",
		"use_depth_penalty": false
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "Singapore", resp.Origin.Name)
	assert.Equal(t, "Shanghai", resp.Destination.Name)
	assert.False(t, resp.DepthPenaltyEnabled)

	require.Len(t, resp.Routes.Direct, 2)
	assert.GreaterOrEqual(t, len(resp.Routes.Optimized), 2)

	assert.Greater(t, resp.Metrics.Direct.DistanceNM, 2243.0)
	assert.Less(t, resp.Metrics.Direct.DistanceNM, 2250.0)
	assert.Greater(t, resp.Metrics.Direct.FuelCostUSD, 0.0)
	assert.Greater(t, resp.Metrics.Direct.EmissionsTons, 0.0)

	assert.GreaterOrEqual(t, resp.Metrics.Optimized.DistanceNM, resp.Metrics.Direct.DistanceNM*0.99)
	assert.Equal(t, len(resp.Routes.Optimized), resp.Metrics.Optimized.WaypointCount)
}

func TestGenerateRouteUnknownPort(t *testing.T) {
	handler := testServer().Handler()

	rec := postRoute(t, handler, `{"origin": "Atlantis", "destination": "Shanghai"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], "Atlantis")
}

func TestGenerateRouteMissingFields(t *testing.T) {
	handler := testServer().Handler()

	rec := postRoute(t, handler, `{"origin": "Singapore"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateRouteBadBody(t *testing.T) {
	handler := testServer().Handler()

	rec := postRoute(t, handler, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPortsEndpoint(t *testing.T) {
	handler := testServer().Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/ports", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Ports   []Port `json:"ports"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Ports, len(majorPorts))
}

func TestHealthEndpoint(t *testing.T) {
	handler := testServer().Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, false, resp["landPolygons"])
	assert.Equal(t, false, resp["bathymetry"])
}

func TestCORSPreflight(t *testing.T) {
	handler := testServer().Handler()

	req := httptest.NewRequest(http.MethodOptions, "/api/generate-route", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
