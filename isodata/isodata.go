// Package isodata populates a money.Catalog from CSV currency data.
//
// Each record has four fields: alphabetic code, numeric code, decimal
// places, and a space-separated list of country codes (possibly empty):
//
//	USD,840,2,US
//	EUR,978,2,AT BE CY DE ...
//	XAU,959,-1,
//
// A primary source is required; an optional secondary source overrides or
// extends the primary by alphabetic code before anything is registered, so
// local amendments never fight the catalog's duplicate checks. Malformed
// records are skipped and logged, matching the tolerant startup behavior
// expected of reference-data feeds.
package isodata

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ledgerkit/money"
)

//go:embed data.csv
var dataCSV []byte

// record is one parsed currency row.
type record struct {
	code      string
	numeric   int
	places    int
	countries []string
}

// Bootstrap registers the embedded ISO 4217 subset into the catalog.
// If logger is nil, logging is discarded.
func Bootstrap(cat *money.Catalog, logger *slog.Logger) (int, error) {
	return Load(cat, bytes.NewReader(dataCSV), nil, logger)
}

// Load reads currency records from the primary source, applies overrides
// and additions from the optional secondary source (may be nil), and
// registers the merged set into the catalog.
//
// Malformed records and records whose registration collides with an earlier
// one are skipped and logged at warn level. Load returns the number of
// currencies registered. A nil primary source is an error.
func Load(cat *money.Catalog, primary, secondary io.Reader, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if primary == nil {
		return 0, errors.New("loading currency data: primary source is required")
	}

	recs, order, err := parse(primary, "primary", logger)
	if err != nil {
		return 0, err
	}
	if secondary != nil {
		over, overOrder, err := parse(secondary, "secondary", logger)
		if err != nil {
			return 0, err
		}
		for _, code := range overOrder {
			if _, ok := recs[code]; !ok {
				order = append(order, code)
			}
			recs[code] = over[code]
		}
	}

	n := 0
	for _, code := range order {
		r := recs[code]
		if _, err := cat.Register(r.code, r.numeric, r.places, r.countries...); err != nil {
			logger.Warn("skipping currency record", "code", r.code, "err", err)
			continue
		}
		n++
	}
	return n, nil
}

// LoadFiles is like [Load] but reads from files. A missing primary file is
// an error; a missing secondary file (or an empty path) is not.
func LoadFiles(cat *money.Catalog, primaryPath, secondaryPath string, logger *slog.Logger) (int, error) {
	primary, err := os.Open(primaryPath)
	if err != nil {
		return 0, fmt.Errorf("loading currency data: %w", err)
	}
	defer primary.Close()

	var secondary io.Reader
	if secondaryPath != "" {
		f, err := os.Open(secondaryPath)
		if err == nil {
			defer f.Close()
			secondary = f
		} else if !errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("loading currency data: %w", err)
		}
	}
	return Load(cat, primary, secondary, logger)
}

// parse reads one CSV source into records keyed by code, preserving the
// order of first appearance. Malformed rows are skipped and logged.
func parse(r io.Reader, source string, logger *slog.Logger) (map[string]record, []string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row arity checked below, with logging
	cr.TrimLeadingSpace = true

	recs := map[string]record{}
	var order []string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s currency data: %w", source, err)
		}
		rec, err := parseRow(row)
		if err != nil {
			logger.Warn("skipping malformed currency record", "source", source, "row", strings.Join(row, ","), "err", err)
			continue
		}
		if _, ok := recs[rec.code]; !ok {
			order = append(order, rec.code)
		}
		recs[rec.code] = rec
	}
	return recs, order, nil
}

func parseRow(row []string) (record, error) {
	if len(row) != 4 {
		return record{}, fmt.Errorf("expected 4 fields, got %d", len(row))
	}
	code := strings.TrimSpace(row[0])
	numeric, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return record{}, fmt.Errorf("numeric code: %w", err)
	}
	places, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return record{}, fmt.Errorf("decimal places: %w", err)
	}
	countries := strings.Fields(row[3])
	return record{code: code, numeric: numeric, places: places, countries: countries}, nil
}
