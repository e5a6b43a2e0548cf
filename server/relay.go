package server

import (
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/go-bot-admin/botapi"
	"github.com/rs/zerolog"
)

const (
	contentTypeJSON = "application/json"

	msgInternalError      = "Internal server error"
	msgBackendUnreachable = "Bot API is unreachable"
	msgIncompleteSession  = "Bot API returned an incomplete session"
)

// writeJSON writes an already encoded JSON payload.
func writeJSON(w http.ResponseWriter, status int, payload json.RawMessage) {
	if status == http.StatusNoContent || status == http.StatusNotModified {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, botapi.MessagePayload(message))
}

func writeValue(w http.ResponseWriter, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	writeJSON(w, status, payload)
}

// relay writes a backend response to the browser unchanged. A transport
// failure becomes 502.
func relay(w http.ResponseWriter, r *http.Request, res botapi.Response, err error) {
	if err != nil {
		backendUnavailable(w, r, err)
		return
	}
	writeJSON(w, res.StatusCode, res.Payload)
}

func backendUnavailable(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Err(err).Str("path", r.URL.Path).Msg("Bot API call failed")
	writeMessage(w, http.StatusBadGateway, msgBackendUnreachable)
}

// adminPayload is the browser-facing session body: the admin record without tokens.
func adminPayload(admin json.RawMessage) map[string]json.RawMessage {
	if len(admin) == 0 {
		admin = json.RawMessage("null")
	}
	return map[string]json.RawMessage{"admin": admin}
}
