package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

const contentType = "application/json"

// MessageBody is the fixed error/confirmation envelope the API uses for
// everything that is not a record payload.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes a JSON payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Internal server error"}`))
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// Message writes a `{"message": ...}` body and logs the underlying error:
// 4xx at warn, 5xx at error, 2xx not at all.
func Message(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil && r != nil && status >= 400 {
		logger := zerolog.Ctx(r.Context())
		event := logger.Warn()
		if status >= 500 {
			event = logger.Error()
		}
		event.
			Err(err).
			Int("status", status).
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Msg(message)
	}
	JSON(w, status, MessageBody{Message: message})
}

// Internal is the generic server-error path for failures the handlers do
// not classify.
func Internal(w http.ResponseWriter, r *http.Request, err error) {
	Message(w, r, http.StatusInternalServerError, "Internal server error", err)
}
