package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON encodes payload and writes it with the given status. When
// payload cannot be encoded the client gets a bare 500 and the encoding
// error is returned for the caller to log.
func WriteJSON(w http.ResponseWriter, payload any, status int) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("encode %T response: %w", payload, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return w.Write(body)
}
