// Package records defines the raw tabular record shape consumed by the
// integrator and the file-backed sources that produce it. The two
// historical source formats name their fields differently (arten/konto,
// funk/funktion, value/betrag); normalization to one shape happens here,
// before any record reaches the core.
package records

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gemfin/gemfin/chart"
)

// Record is one normalized raw data row: an account code, an optional
// function code, the reporting year, the value and its unit, and the
// dimension that decides which tree the record belongs to. HasValue
// distinguishes a reported zero from a missing value field; a decimal
// zero alone cannot.
type Record struct {
	Arten    string          `json:"arten"`
	Funk     string          `json:"funk,omitempty"`
	Jahr     int             `json:"jahr"`
	Value    decimal.Decimal `json:"value"`
	HasValue bool            `json:"-"`
	Dim      chart.Dimension `json:"dim,omitempty"`
	Unit     string          `json:"unit"`
}

// Dimension returns the record's dimension, deriving it from the account
// code's first digit when the dim field is absent. The empty dimension
// marks an unmappable record; such records are dropped, not errored.
func (r Record) Dimension() chart.Dimension {
	if r.Dim != "" {
		return r.Dim
	}
	return chart.DimensionForCode(r.Arten)
}

// HasRequiredFields reports whether the record carries the fields
// integration cannot proceed without: an account code, a year and a
// value.
func (r Record) HasRequiredFields() bool {
	return r.Arten != "" && r.Jahr != 0 && r.HasValue
}

// rawRecord accepts both historical field spellings. Values arrive either
// as JSON numbers or as strings in CSV cells.
type rawRecord struct {
	Arten    string `json:"arten"`
	Konto    string `json:"konto"`
	Funk     string `json:"funk"`
	Funktion string `json:"funktion"`
	Jahr     string `json:"jahr"`
	Value    string `json:"value"`
	Betrag   string `json:"betrag"`
	Dim      string `json:"dim"`
	Unit     string `json:"unit"`
}

// normalize folds the historical field variants into a Record. Unparseable
// years or values leave the zero value in place; the integrator decides
// whether such records are usable.
func (raw rawRecord) normalize() Record {
	rec := Record{
		Arten: firstNonEmpty(raw.Arten, raw.Konto),
		Funk:  firstNonEmpty(raw.Funk, raw.Funktion),
		Dim:   chart.Dimension(strings.TrimSpace(raw.Dim)),
		Unit:  firstNonEmpty(raw.Unit, "CHF"),
	}
	if year, err := strconv.Atoi(strings.TrimSpace(raw.Jahr)); err == nil {
		rec.Jahr = year
	}
	if v := firstNonEmpty(raw.Value, raw.Betrag); v != "" {
		if value, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
			rec.Value = value
			rec.HasValue = true
		}
	}
	return rec
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
