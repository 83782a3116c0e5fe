package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON encodes v as the response body.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONRaw writes an already-encoded JSON body unchanged.
func JSONRaw(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// JSONDetail writes the gateway's error body: {"detail": "..."}.
func JSONDetail(w http.ResponseWriter, statusCode int, detail string) {
	JSON(w, statusCode, map[string]string{"detail": detail})
}
