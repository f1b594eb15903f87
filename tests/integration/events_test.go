package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventCreateGetRoundTrip(t *testing.T) {
	env := setupTestEnv(t)

	created := createRecord(t, env, "/api/events", map[string]any{
		"name":  "Jazz Night",
		"date":  "2026-09-12",
		"venue": "Centennial Park",
		"track": "outdoor", // not a known field, kept verbatim
	})
	id := recordID(t, created)

	var fetched map[string]any
	status := doJSON(t, env, http.MethodGet, "/api/events/"+id, nil, &fetched)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Jazz Night", fetched["name"])
	require.Equal(t, "Centennial Park", fetched["venue"])
	require.Equal(t, "outdoor", fetched["track"])
	require.Equal(t, id, fetched["id"])
}

func TestEventListIncludesCreated(t *testing.T) {
	env := setupTestEnv(t)

	var empty []map[string]any
	status := doJSON(t, env, http.MethodGet, "/api/events", nil, &empty)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, empty)

	createRecord(t, env, "/api/events", map[string]any{"name": "First"})
	createRecord(t, env, "/api/events", map[string]any{"name": "Second"})

	var listed []map[string]any
	status = doJSON(t, env, http.MethodGet, "/api/events", nil, &listed)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, listed, 2)
}

func TestEventUpdateMergesFields(t *testing.T) {
	env := setupTestEnv(t)

	created := createRecord(t, env, "/api/events", map[string]any{
		"name":  "Jazz Night",
		"venue": "Hall A",
	})
	id := recordID(t, created)

	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		var updated map[string]any
		status := doJSON(t, env, method, "/api/events/"+id, map[string]any{"venue": "Hall B"}, &updated)
		require.Equal(t, http.StatusOK, status, method)
		require.Equal(t, "Hall B", updated["venue"], method)
		// Fields absent from the payload survive the update.
		require.Equal(t, "Jazz Night", updated["name"], method)
	}
}

func TestEventGetInvalidID(t *testing.T) {
	env := setupTestEnv(t)

	var payload map[string]any
	status := doJSON(t, env, http.MethodGet, "/api/events/not-a-valid-id", nil, &payload)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Invalid event ID", payload["message"])
}

func TestEventGetNotFound(t *testing.T) {
	env := setupTestEnv(t)

	var payload map[string]any
	status := doJSON(t, env, http.MethodGet, "/api/events/01HYX3KQW7ERTV9XNBM2P8QJZF", nil, &payload)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Event not found", payload["message"])
}

func TestEventDelete(t *testing.T) {
	env := setupTestEnv(t)

	created := createRecord(t, env, "/api/events", map[string]any{"name": "Short-lived"})
	id := recordID(t, created)

	var deleted map[string]any
	status := doJSON(t, env, http.MethodDelete, "/api/events/"+id, nil, &deleted)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Event deleted", deleted["message"])

	status = doJSON(t, env, http.MethodGet, "/api/events/"+id, nil, nil)
	require.Equal(t, http.StatusNotFound, status)
}

func TestEventCreateMalformedBody(t *testing.T) {
	env := setupTestEnv(t)

	req, err := http.NewRequest(http.MethodPost, env.Server.URL+"/api/events", nil)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := env.Server.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	// An empty body is not a JSON object.
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
