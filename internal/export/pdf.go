package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/noah-isme/theater-billing/internal/statement"
)

// PDF renders a single-page statement.
func PDF(result statement.Result, formatter statement.Formatter) ([]byte, error) {
	if formatter == nil {
		formatter = statement.USD{}
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Statement for "+result.Customer)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 6, "Play", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Seats", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Amount", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Credits", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, line := range result.Lines {
		pdf.CellFormat(80, 6, line.PlayName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", line.Audience), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, formatter.Format(line.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", line.VolumeCredits), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.Cell(0, 6, "Amount owed is "+formatter.Format(result.TotalAmount))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("You earned %d credits", result.TotalVolumeCredits))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
