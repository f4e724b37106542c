package web

import (
	"net/http"
	"strings"
)

type chatRequest struct {
	Message string `json:"message"`
}

// chat handles POST /api/chat, the floating help-widget assistant. The
// endpoint always answers 200: assistant failures surface as the canned
// fallback text, never as an HTTP error.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, r, "message is required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	writeJSON(w, h.svc.Chat(r.Context(), req.Message))
}
