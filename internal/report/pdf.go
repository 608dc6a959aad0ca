package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// RenderPDFToFile writes a plain PDF summary of the results. Evidence is
// printed as indented JSON in a monospace font.
func RenderPDFToFile(r *Results, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("jctf-crypto report", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "jctf-crypto report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Command: %s  Run: %s", r.Command, r.RunID))
	pdf.Ln(8)
	for _, n := range r.Notes {
		pdf.MultiCell(0, 6, n, "", "L", false)
	}
	for _, e := range r.Entries {
		pdf.SetFont("Arial", "B", 12)
		pdf.MultiCell(0, 6, fmt.Sprintf("%s [%s]", e.Name, e.Category), "", "L", false)
		if e.Evidence != nil {
			pdf.SetFont("Courier", "", 9)
			pdf.MultiCell(0, 4, asJSON(e.Evidence), "", "L", false)
		}
		if len(e.Notes) > 0 {
			pdf.SetFont("Arial", "I", 10)
			for _, n := range e.Notes {
				pdf.MultiCell(0, 4, "- "+n, "", "L", false)
			}
		}
		pdf.Ln(2)
	}
	return pdf.OutputFileAndClose(path)
}
