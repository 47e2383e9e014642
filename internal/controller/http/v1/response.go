package v1

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}

// pathParam decodes a route parameter, keeping the raw value when it is not valid escaping.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)

	value, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}

	return value
}
