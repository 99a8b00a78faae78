package recipe

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the document to a minimal single-column PDF with the
// same sections as the Markdown output. Layout is intentionally simple.
func WritePDF(d Document, sourceURL string, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = "Recipe"
	}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	if sourceURL != "" {
		pdf.WriteLinkString(5, sourceURL, sourceURL)
		pdf.Ln(8)
	}

	heading := func(text string) {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
	}

	heading("Ingredients")
	for _, ing := range d.Ingredients {
		pdf.MultiCell(0, 5, "- "+ing, "", "L", false)
	}

	heading("Instructions")
	step := 1
	for _, ins := range d.Instructions {
		s := strings.TrimSpace(ins)
		if s == "" {
			continue
		}
		pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s", step, s), "", "L", false)
		step++
	}

	return pdf.OutputFileAndClose(outPath)
}
