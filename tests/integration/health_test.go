package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	env := setupTestEnv(t)

	var health map[string]any
	status := doJSON(t, env, http.MethodGet, "/healthz", nil, &health)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", health["status"])

	var ready map[string]any
	status = doJSON(t, env, http.MethodGet, "/readyz", nil, &ready)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ready", ready["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	resp, err := env.Server.Client().Get(env.Server.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
