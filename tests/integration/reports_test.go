package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventStatsCounts(t *testing.T) {
	env := setupTestEnv(t)

	var stats struct {
		TotalEvents    int64 `json:"totalEvents"`
		TotalAttendees int64 `json:"totalAttendees"`
	}
	status := doJSON(t, env, http.MethodGet, "/api/reports/event-stats", nil, &stats)
	require.Equal(t, http.StatusOK, status)
	require.Zero(t, stats.TotalEvents)
	require.Zero(t, stats.TotalAttendees)

	createRecord(t, env, "/api/events", map[string]any{"name": "One"})
	createRecord(t, env, "/api/events", map[string]any{"name": "Two"})
	createRecord(t, env, "/api/attendees", map[string]any{"name": "Ann"})

	status = doJSON(t, env, http.MethodGet, "/api/reports/event-stats", nil, &stats)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, int64(2), stats.TotalEvents)
	require.Equal(t, int64(1), stats.TotalAttendees)
}
