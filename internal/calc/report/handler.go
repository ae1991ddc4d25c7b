package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	auth "ChainDrive/internal/auth"
	chain "ChainDrive/internal/calc/chain"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string      `json:"project"`
	Author  string      `json:"author"`
	Title   string      `json:"title"`
	Notes   string      `json:"notes"`
	Chain   chain.Input `json:"chain"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := chain.Calculate(input.Chain)
	if err != nil {
		chain.WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, input, res, time.Now()); err != nil {
		id, _ := auth.UserID(r.Context())
		login, _ := auth.UserLogin(r.Context())
		log.Printf("Render error (user %d %q): %v", id, login, err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"chain-drive.pdf\"")
	w.Write(buf.Bytes())
}

// Render writes an A4 report. Core fonts are cp1252, so labels are English.
func Render(w io.Writer, input Input, res chain.Result, date time.Time) error {
	if input.Title == "" {
		input.Title = "Chain Drive Design"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(input.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", input.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", input.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", date.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Calculated per "+chain.Standard)
	pdf.Ln(10)

	table := func(title string, rows []chain.Row) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, row := range rows {
			pdf.CellFormat(110, 7, tr(row.Label), "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 7, row.Value, "1", 1, "R", false, 0, "")
		}
		pdf.Ln(6)
	}
	table("Input", input.Chain.Rows("en"))
	table("Result", res.Rows("en"))

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(input.Notes), "", "L", false)
	}
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr(res.Notes), "", "L", false)

	return pdf.Output(w)
}
