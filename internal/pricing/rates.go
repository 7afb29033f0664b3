package pricing

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRates decodes a YAML rate table. Keys that are absent keep their DefaultRates value.
func LoadRates(r io.Reader) (Rates, error) {
	rates := DefaultRates()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rates); err != nil && !errors.Is(err, io.EOF) {
		return Rates{}, fmt.Errorf("decode rates: %w", err)
	}
	if err := rates.Validate(); err != nil {
		return Rates{}, err
	}
	return rates, nil
}

// LoadRatesFile reads a rate table from path. An empty path yields DefaultRates.
func LoadRatesFile(path string) (Rates, error) {
	if path == "" {
		return DefaultRates(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Rates{}, fmt.Errorf("open rates: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return LoadRates(f)
}
