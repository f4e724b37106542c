package web

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error     string            `json:"error"`
	Code      string            `json:"code"`
	RequestID string            `json:"request_id,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeFieldErrors writes a 422 with per-field validation messages. The
// submission is blocked until every listed field is resolved.
func writeFieldErrors(w http.ResponseWriter, r *http.Request, fields map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	resp := errorResponse{
		Error:     "validation failed",
		Code:      "VALIDATION_FAILED",
		RequestID: requestIDFromContext(r.Context()),
		Fields:    fields,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// decodeJSON decodes the request body into v, writing a 400 and returning
// false on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, r, "invalid request body", "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}

// writeJSON writes a JSON response with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// notImplemented is a stub handler that returns HTTP 501 JSON. Used for the
// vendor edit action, which is a documented gap rather than a bug.
func notImplemented(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, "not implemented", "NOT_IMPLEMENTED", http.StatusNotImplemented)
}
