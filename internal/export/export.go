package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/noah-isme/theater-billing/internal/statement"
)

// Format names an output representation for rendered statements.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat validates a format name.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case FormatText, FormatJSON, FormatXLSX, FormatPDF:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported format %q", value)
	}
}

// Binary reports whether the format produces a file rather than terminal text.
func (f Format) Binary() bool {
	return f == FormatXLSX || f == FormatPDF
}

// Text writes the plain statement.
func Text(w io.Writer, result statement.Result) error {
	_, err := io.WriteString(w, result.Text)
	return err
}

type jsonLine struct {
	statement.Line
	Display string `json:"display"`
}

type jsonStatement struct {
	Customer           string     `json:"customer"`
	Lines              []jsonLine `json:"lines"`
	TotalAmount        int64      `json:"totalAmount"`
	TotalDisplay       string     `json:"totalDisplay"`
	TotalVolumeCredits int        `json:"totalVolumeCredits"`
}

// JSON writes results as a JSON array, amounts in minor units with display strings.
func JSON(w io.Writer, results []statement.Result, formatter statement.Formatter) error {
	if formatter == nil {
		formatter = statement.USD{}
	}
	out := make([]jsonStatement, 0, len(results))
	for _, result := range results {
		doc := jsonStatement{
			Customer:           result.Customer,
			Lines:              make([]jsonLine, 0, len(result.Lines)),
			TotalAmount:        result.TotalAmount,
			TotalDisplay:       formatter.Format(result.TotalAmount),
			TotalVolumeCredits: result.TotalVolumeCredits,
		}
		for _, line := range result.Lines {
			doc.Lines = append(doc.Lines, jsonLine{Line: line, Display: formatter.Format(line.Amount)})
		}
		out = append(out, doc)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
