package chain

import (
	auth "ChainDrive/internal/auth"
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, r, res)
}

func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, r, StandardChains())
}

// WriteJSON encodes before writing so an unencodable value becomes a 500
// instead of an empty 200.
func WriteJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		login, _ := auth.UserLogin(r.Context())
		log.Printf("Encode error (user %q, %s): %v", login, r.URL.Path, err)
		http.Error(w, "Calculation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

// StatusFor maps engine errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoSuitablePitch), errors.Is(err, ErrGeometryInfeasible):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func WriteError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Calculation error"
	}
	http.Error(w, msg, status)
}
