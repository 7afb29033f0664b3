package statement

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/theater-billing/internal/obs"
	"github.com/noah-isme/theater-billing/internal/theater"
)

// Service renders statements with logging and metrics around the Printer.
type Service struct {
	Printer *Printer
	Logger  zerolog.Logger
	Metrics *obs.StatementMetrics
}

// Render renders a single invoice.
func (s *Service) Render(invoice theater.Invoice, catalog theater.Catalog) (Result, error) {
	statementID := uuid.NewString()
	logger := s.Logger.With().
		Str("statement_id", statementID).
		Str("customer", invoice.Customer).
		Logger()
	logger.Debug().Int("performances", len(invoice.Performances)).Msg("render statement")

	result, err := s.Printer.Render(invoice, catalog)
	if err != nil {
		s.Metrics.ObserveFailure()
		logger.Error().Err(err).Msg("render statement failed")
		return Result{}, err
	}

	s.Metrics.ObserveSuccess(len(result.Lines), result.TotalAmount, result.TotalVolumeCredits)
	logger.Info().
		Int("lines", len(result.Lines)).
		Int64("total_amount", result.TotalAmount).
		Int("volume_credits", result.TotalVolumeCredits).
		Msg("statement rendered")
	return result, nil
}

// RenderAll renders invoices in order and stops at the first failure.
func (s *Service) RenderAll(invoices []theater.Invoice, catalog theater.Catalog) ([]Result, error) {
	results := make([]Result, 0, len(invoices))
	for i, invoice := range invoices {
		result, err := s.Render(invoice, catalog)
		if err != nil {
			return nil, fmt.Errorf("invoice %d (%s): %w", i, invoice.Customer, err)
		}
		results = append(results, result)
	}
	return results, nil
}
