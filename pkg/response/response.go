// Package response writes the one JSON envelope used across the API:
//
//	{"success": bool, "message": "...", ...extra fields}
//
// The observed status codes and messages are preserved on every route; the
// envelope shape itself is deliberately uniform (unlike earlier revisions of
// the service, which varied it per branch).
package response

import (
	"encoding/json"
	"net/http"
)

// M is shorthand for the extra payload fields merged into the envelope.
type M map[string]any

// JSON writes any body verbatim. Used for the handful of endpoints whose
// contract is a bare value (e.g. the order list returns a JSON array).
func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Success writes the envelope with success=true plus any extra fields.
func Success(w http.ResponseWriter, status int, message string, extra M) {
	write(w, status, true, message, extra)
}

// Fail writes the envelope with success=false.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, false, message, nil)
}

func write(w http.ResponseWriter, status int, success bool, message string, extra M) {
	body := M{"success": success}
	if message != "" {
		body["message"] = message
	}
	for k, v := range extra {
		body[k] = v
	}
	JSON(w, status, body)
}
