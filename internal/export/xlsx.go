package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/noah-isme/theater-billing/internal/statement"
)

// XLSX renders a statement workbook with summary and lines sheets.
func XLSX(result statement.Result, formatter statement.Formatter) ([]byte, error) {
	if formatter == nil {
		formatter = statement.USD{}
	}
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()
	summarySheet := "summary"
	linesSheet := "lines"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(linesSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Statement for "+result.Customer)
	_ = f.SetCellValue(summarySheet, "A3", "Amount owed")
	_ = f.SetCellValue(summarySheet, "B3", formatter.Format(result.TotalAmount))
	_ = f.SetCellValue(summarySheet, "A4", "Amount (minor units)")
	_ = f.SetCellValue(summarySheet, "B4", result.TotalAmount)
	_ = f.SetCellValue(summarySheet, "A5", "Volume credits")
	_ = f.SetCellValue(summarySheet, "B5", result.TotalVolumeCredits)

	headers := []string{"Play", "Seats", "Amount", "Amount (minor units)", "Volume credits"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(linesSheet, cell, h)
	}
	for i, line := range result.Lines {
		row := i + 2
		_ = f.SetCellValue(linesSheet, fmt.Sprintf("A%d", row), line.PlayName)
		_ = f.SetCellValue(linesSheet, fmt.Sprintf("B%d", row), line.Audience)
		_ = f.SetCellValue(linesSheet, fmt.Sprintf("C%d", row), formatter.Format(line.Amount))
		_ = f.SetCellValue(linesSheet, fmt.Sprintf("D%d", row), line.Amount)
		_ = f.SetCellValue(linesSheet, fmt.Sprintf("E%d", row), line.VolumeCredits)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
