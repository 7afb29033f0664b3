package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/noah-isme/theater-billing/internal/config"
	"github.com/noah-isme/theater-billing/internal/export"
	"github.com/noah-isme/theater-billing/internal/loader"
	"github.com/noah-isme/theater-billing/internal/obs"
	"github.com/noah-isme/theater-billing/internal/pricing"
	"github.com/noah-isme/theater-billing/internal/statement"
)

const (
	exitOK    = 0
	exitData  = 1
	exitUsage = 2
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(exitUsage)
	}
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().
		Str("component", "statement").
		Str("app_env", cfg.AppEnv).
		Logger()
	os.Exit(run(os.Args[1:], cfg, os.Stdout, logger))
}

type options struct {
	plays    string
	invoices string
	format   export.Format
	rates    string
	out      string
}

func parseFlags(args []string, cfg *config.Config) (options, error) {
	fs := flag.NewFlagSet("statement", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		plays    = fs.String("plays", "plays.json", "path to the play catalog (JSON)")
		invoices = fs.String("invoices", "invoices.json", "path to the invoices (JSON)")
		format   = fs.String("format", cfg.StatementFormat, "output format: text, json, xlsx or pdf")
		rates    = fs.String("rates", cfg.RatesFile, "optional YAML rate table")
		out      = fs.String("out", "", "output file; required for xlsx and pdf")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	f, err := export.ParseFormat(*format)
	if err != nil {
		return options{}, err
	}
	if f.Binary() && strings.TrimSpace(*out) == "" {
		return options{}, fmt.Errorf("-out is required for %s output", f)
	}
	return options{plays: *plays, invoices: *invoices, format: f, rates: *rates, out: *out}, nil
}

func run(args []string, cfg *config.Config, stdout io.Writer, logger zerolog.Logger) int {
	opts, err := parseFlags(args, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("invalid arguments")
		return exitUsage
	}

	rates, err := pricing.LoadRatesFile(opts.rates)
	if err != nil {
		logger.Error().Err(err).Str("path", opts.rates).Msg("load rates")
		return exitUsage
	}
	engine, err := pricing.NewEngine(rates)
	if err != nil {
		logger.Error().Err(err).Msg("build pricing engine")
		return exitUsage
	}

	registry := prometheus.NewRegistry()
	svc := &statement.Service{
		Printer: statement.NewPrinter(engine, statement.USD{}),
		Logger:  logger,
		Metrics: obs.NewStatementMetrics(cfg.MetricsNamespace, registry),
	}
	defer func() {
		if cfg.MetricsTextfile == "" {
			return
		}
		if err := obs.WriteTextfile(cfg.MetricsTextfile, registry); err != nil {
			logger.Warn().Err(err).Msg("write metrics")
		}
	}()

	catalog, err := loader.LoadCatalogFile(opts.plays)
	if err != nil {
		logger.Error().Err(err).Str("path", opts.plays).Msg("load plays")
		return exitData
	}
	invoices, err := loader.LoadInvoicesFile(opts.invoices)
	if err != nil {
		logger.Error().Err(err).Str("path", opts.invoices).Msg("load invoices")
		return exitData
	}
	if err := loader.CheckReferences(invoices, catalog); err != nil {
		logger.Error().Err(err).Msg("invoices reference unknown plays")
		return exitData
	}

	results, err := svc.RenderAll(invoices, catalog)
	if err != nil {
		logger.Error().Err(err).Msg("render statements")
		return exitData
	}

	if err := write(opts, results, stdout); err != nil {
		logger.Error().Err(err).Msg("write statements")
		return exitData
	}
	logger.Info().Int("statements", len(results)).Str("format", string(opts.format)).Msg("done")
	return exitOK
}

func write(opts options, results []statement.Result, stdout io.Writer) error {
	if opts.format.Binary() {
		exporter := export.PDF
		if opts.format == export.FormatXLSX {
			exporter = export.XLSX
		}
		return writeFiles(opts.out, results, exporter)
	}

	var buf bytes.Buffer
	switch opts.format {
	case export.FormatJSON:
		if err := export.JSON(&buf, results, statement.USD{}); err != nil {
			return err
		}
	default:
		for _, result := range results {
			if err := export.Text(&buf, result); err != nil {
				return err
			}
		}
	}
	if opts.out == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(opts.out, buf.Bytes(), 0o644)
}

type binaryExporter func(statement.Result, statement.Formatter) ([]byte, error)

// writeFiles encodes every result before writing any file, so a failed export leaves
// nothing on disk.
func writeFiles(out string, results []statement.Result, exporter binaryExporter) error {
	files := make([][]byte, 0, len(results))
	for _, result := range results {
		data, err := exporter(result, statement.USD{})
		if err != nil {
			return fmt.Errorf("export %s: %w", result.Customer, err)
		}
		files = append(files, data)
	}
	for i, data := range files {
		if err := os.WriteFile(outputPath(out, i, len(files)), data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// outputPath suffixes the file name with the invoice index when several files are written.
func outputPath(base string, index, total int) string {
	if total <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(base, ext), index+1, ext)
}
