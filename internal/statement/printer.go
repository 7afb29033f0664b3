package statement

import (
	"fmt"
	"strings"

	"github.com/noah-isme/theater-billing/internal/pricing"
	"github.com/noah-isme/theater-billing/internal/theater"
)

// Line is the priced view of a single performance.
type Line struct {
	PlayID        string        `json:"playID"`
	PlayName      string        `json:"playName"`
	Audience      int           `json:"audience"`
	Amount        pricing.Money `json:"amount"`
	VolumeCredits int           `json:"volumeCredits"`
}

// Result is a rendered statement together with its totals.
type Result struct {
	Customer           string        `json:"customer"`
	Lines              []Line        `json:"lines"`
	TotalAmount        pricing.Money `json:"totalAmount"`
	TotalVolumeCredits int           `json:"totalVolumeCredits"`
	Text               string        `json:"-"`
}

// Printer prices invoices and renders their statements.
type Printer struct {
	Engine    *pricing.Engine
	Formatter Formatter
}

// NewPrinter builds a Printer. A nil formatter defaults to USD.
func NewPrinter(engine *pricing.Engine, formatter Formatter) *Printer {
	if formatter == nil {
		formatter = USD{}
	}
	return &Printer{Engine: engine, Formatter: formatter}
}

// Render prices every performance of the invoice in order and renders the statement.
// Any lookup or pricing failure aborts the whole statement.
func (p *Printer) Render(invoice theater.Invoice, catalog theater.Catalog) (Result, error) {
	result := Result{
		Customer: invoice.Customer,
		Lines:    make([]Line, 0, len(invoice.Performances)),
	}

	var b strings.Builder
	b.WriteString("Statement for " + invoice.Customer + LineSeparator)

	for _, perf := range invoice.Performances {
		play, err := catalog.Lookup(perf.PlayID)
		if err != nil {
			return Result{}, err
		}
		amount, err := p.Engine.Amount(perf, play)
		if err != nil {
			return Result{}, fmt.Errorf("price %s: %w", perf.PlayID, err)
		}
		credits := p.Engine.VolumeCredits(perf, play)

		result.Lines = append(result.Lines, Line{
			PlayID:        perf.PlayID,
			PlayName:      play.Name,
			Audience:      perf.Audience,
			Amount:        amount,
			VolumeCredits: credits,
		})
		result.TotalAmount += amount
		result.TotalVolumeCredits += credits

		fmt.Fprintf(&b, "  %s: %s (%d seats)%s", play.Name, p.Formatter.Format(amount), perf.Audience, LineSeparator)
	}

	fmt.Fprintf(&b, "Amount owed is %s%s", p.Formatter.Format(result.TotalAmount), LineSeparator)
	fmt.Fprintf(&b, "You earned %d credits%s", result.TotalVolumeCredits, LineSeparator)
	result.Text = b.String()
	return result, nil
}
