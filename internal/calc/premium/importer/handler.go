package importer

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	auth "ChainDrive/internal/auth"
	chain "ChainDrive/internal/calc/chain"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct{}

type ChainExportInput struct {
	Lang  string        `json:"lang"`
	Items []chain.Input `json:"items"`
}

func (h *Handler) Chain(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	res, err := ImportChain(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}

	chain.WriteJSON(w, r, res)
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input ChainExportInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(input.Items) == 0 {
		http.Error(w, "No items", http.StatusBadRequest)
		return
	}
	var buf bytes.Buffer
	if err := ExportChain(&buf, input.Items, input.Lang); err != nil {
		login, _ := auth.UserLogin(r.Context())
		log.Printf("ExportChain error (user %q): %v", login, err)
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"chain-drives.xlsx\"")
	w.Write(buf.Bytes())
}
