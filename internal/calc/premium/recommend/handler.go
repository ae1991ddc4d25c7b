package recommend

import (
	"encoding/json"
	"net/http"

	chain "ChainDrive/internal/calc/chain"
)

type Handler struct{}

func (h *Handler) ServiceFactor(w http.ResponseWriter, r *http.Request) {
	var input Conditions
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := ServiceFactor(input)
	if err != nil {
		chain.WriteError(w, err)
		return
	}
	chain.WriteJSON(w, r, res)
}
