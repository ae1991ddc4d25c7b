package autodesign

import (
	"encoding/json"
	"net/http"

	chain "ChainDrive/internal/calc/chain"
)

type Handler struct{}

func (h *Handler) Chain(w http.ResponseWriter, r *http.Request) {
	var input ChainAutoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Chain(input)
	if err != nil {
		chain.WriteError(w, err)
		return
	}
	chain.WriteJSON(w, r, res)
}
