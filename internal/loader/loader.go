package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/theater-billing/internal/theater"
)

var validate = validator.New()

// LoadCatalog decodes a play catalog keyed by play ID.
func LoadCatalog(r io.Reader) (theater.Catalog, error) {
	var catalog theater.Catalog
	if err := json.NewDecoder(r).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("decode plays: %w", err)
	}
	for id, play := range catalog {
		if err := validate.Struct(play); err != nil {
			return nil, fmt.Errorf("play %q: %w", id, err)
		}
	}
	if catalog == nil {
		catalog = theater.Catalog{}
	}
	return catalog, nil
}

// LoadInvoices decodes a list of invoices.
func LoadInvoices(r io.Reader) ([]theater.Invoice, error) {
	var invoices []theater.Invoice
	if err := json.NewDecoder(r).Decode(&invoices); err != nil {
		return nil, fmt.Errorf("decode invoices: %w", err)
	}
	for i, invoice := range invoices {
		if err := validate.Struct(invoice); err != nil {
			return nil, fmt.Errorf("invoice %d: %w", i, err)
		}
	}
	return invoices, nil
}

// LoadCatalogFile reads a play catalog from path.
func LoadCatalogFile(path string) (theater.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plays: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return LoadCatalog(f)
}

// LoadInvoicesFile reads invoices from path.
func LoadInvoicesFile(path string) ([]theater.Invoice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open invoices: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return LoadInvoices(f)
}

// CheckReferences reports every play ID referenced by invoices but missing from catalog.
func CheckReferences(invoices []theater.Invoice, catalog theater.Catalog) error {
	missing := make(map[string]struct{})
	for _, invoice := range invoices {
		for _, perf := range invoice.Performances {
			if _, err := catalog.Lookup(perf.PlayID); err != nil {
				missing[perf.PlayID] = struct{}{}
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}
	ids := make([]string, 0, len(missing))
	for id := range missing {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	errs := make([]error, 0, len(ids))
	for _, id := range ids {
		errs = append(errs, &theater.UnknownPlayError{PlayID: id})
	}
	return errors.Join(errs...)
}
