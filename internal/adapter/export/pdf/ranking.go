// Package pdfexport renders crop profitability rankings as printable PDF tables.
package pdfexport

import (
	"fmt"
	"io"
	"time"

	farmingdomain "gamecodex/internal/domain/farming"

	"github.com/jung-kurt/gofpdf"
)

type Report struct {
	ProfileID   string
	Config      farmingdomain.FarmConfig
	Ranking     []farmingdomain.CropAnalysis
	GeneratedAt time.Time
}

type column struct {
	title string
	width float64
	align string
	value func(rank int, a farmingdomain.CropAnalysis) string
}

var columns = []column{
	{"#", 10, "C", func(rank int, _ farmingdomain.CropAnalysis) string { return fmt.Sprintf("%d", rank) }},
	{"Crop", 34, "L", func(_ int, a farmingdomain.CropAnalysis) string { return a.Name }},
	{"Potion", 40, "L", func(_ int, a farmingdomain.CropAnalysis) string { return a.PotionName }},
	{"Grow (min)", 20, "R", func(_ int, a farmingdomain.CropAnalysis) string { return fmt.Sprintf("%d", a.GrowTime) }},
	{"Potions", 18, "R", func(_ int, a farmingdomain.CropAnalysis) string { return fmt.Sprintf("%d", a.ActualPotions) }},
	{"Profit/cycle", 30, "R", func(_ int, a farmingdomain.CropAnalysis) string { return fmt.Sprintf("%d", a.TotalProfitPerCycle) }},
	{"Profit/min", 28, "R", func(_ int, a farmingdomain.CropAnalysis) string { return fmt.Sprintf("%.2f", a.ProfitPerMinute) }},
}

// WriteRanking writes r as a single A4 document to w.
func WriteRanking(w io.Writer, r Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Crop profitability", true)
	if !r.GeneratedAt.IsZero() {
		pdf.SetCreationDate(r.GeneratedAt)
	}
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Crop profitability")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	fert := "no"
	if r.Config.Fertilised {
		fert = "yes"
	}
	summary := fmt.Sprintf("Plots: %d   Fertilised: %s   Cauldron level: %d", r.Config.TotalPlots, fert, r.Config.CauldronLevel)
	if r.ProfileID != "" {
		summary = "Profile: " + r.ProfileID + "   " + summary
	}
	pdf.Cell(0, 6, summary)
	pdf.Ln(10)

	if len(r.Ranking) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.Cell(0, 8, "No sellable crops.")
		return output(pdf, w)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(225, 235, 220)
	for _, c := range columns {
		pdf.CellFormat(c.width, 8, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for i, a := range r.Ranking {
		// Highlight the best crop.
		fill := i == 0
		pdf.SetFillColor(250, 240, 200)
		for _, c := range columns {
			pdf.CellFormat(c.width, 7, c.value(i+1, a), "1", 0, c.align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
	return output(pdf, w)
}

func output(pdf *gofpdf.Fpdf, w io.Writer) error {
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render ranking pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write ranking pdf: %w", err)
	}
	return nil
}
