// Package scaling formats financial figures for display: it selects a
// magnitude-based scaling unit (thousand, million, billion, trillion),
// divides the value accordingly and renders the quotient with the locale's
// number conventions.
//
// A Formatter is safe for concurrent use and reconfigurable at runtime;
// UpdateConfig affects the next Format call without reconstruction.
package scaling

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Unit is one scaling step. Factors are powers of ten; the table is
// ordered descending and has no gaps between its smallest factor and the
// default threshold, so every finite value maps to exactly one outcome.
type Unit struct {
	Factor float64
	Abbrev map[string]string
	Names  map[string]string
}

// DefaultUnits is the standard scaling table (trillion down to thousand).
func DefaultUnits() []Unit {
	return []Unit{
		{
			Factor: 1e12,
			Abbrev: map[string]string{"en": "T", "de": "Bio."},
			Names: map[string]string{
				"en": "trillion", "de": "Billionen", "fr": "billions", "it": "bilioni",
			},
		},
		{
			Factor: 1e9,
			Abbrev: map[string]string{"en": "B", "de": "Mrd.", "fr": "Md"},
			Names: map[string]string{
				"en": "billion", "de": "Milliarden", "fr": "milliards", "it": "miliardi",
			},
		},
		{
			Factor: 1e6,
			Abbrev: map[string]string{"en": "M", "de": "Mio."},
			Names: map[string]string{
				"en": "million", "de": "Millionen", "fr": "millions", "it": "milioni",
			},
		},
		{
			Factor: 1e3,
			Abbrev: map[string]string{"en": "K", "de": "Tsd."},
			Names: map[string]string{
				"en": "thousand", "de": "Tausend", "fr": "mille", "it": "mila",
			},
		},
	}
}

// Config controls scaling and formatting behavior.
type Config struct {
	// Threshold is the smallest absolute value that gets scaled.
	// math.Inf(1) disables scaling entirely.
	Threshold float64
	// Precision is the number of fraction digits for scaled values.
	Precision int
	// UseAbbreviated selects the short unit label ("K") over the full
	// one ("thousand").
	UseAbbreviated bool
	// ForceLocale overrides the locale passed to Format when non-empty.
	ForceLocale string
}

// DefaultConfig returns the default formatting configuration.
func DefaultConfig() Config {
	return Config{
		Threshold:      1000,
		Precision:      1,
		UseAbbreviated: true,
	}
}

// Result is one formatting outcome.
type Result struct {
	// Value is the scaled numeric value (equal to Original when unscaled).
	Value float64
	// Unit is the selected unit label, empty when unscaled.
	Unit string
	// Formatted is the display string, unit label included.
	Formatted string
	// Original is the input value.
	Original float64
	// ScalingFactor is the divisor that was applied (1 when unscaled).
	ScalingFactor float64
}

// Formatter renders values according to its current config and unit table.
type Formatter struct {
	mu    sync.RWMutex
	cfg   Config
	units []Unit
}

// New creates a Formatter with the given config and the default unit
// table. A zero-valued Threshold falls back to the default (1000).
func New(cfg Config) *Formatter {
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultConfig().Threshold
	}
	return &Formatter{cfg: cfg, units: DefaultUnits()}
}

// Config returns a copy of the current configuration.
func (f *Formatter) Config() Config {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.cfg
}

// UpdateConfig replaces the configuration. The change applies to the next
// Format call; the formatter is not reconstructed.
func (f *Formatter) UpdateConfig(cfg Config) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultConfig().Threshold
	}
	f.cfg = cfg
}

// SetUnits replaces the unit table. The table must be ordered by
// descending factor.
func (f *Formatter) SetUnits(units []Unit) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.units = units
}

// Format renders a value for the given locale ("de", "fr", "it", "en" or
// any BCP 47 tag). Values below the threshold stay unscaled with locale
// grouping and an empty unit; all others are divided by the largest unit
// factor not exceeding the absolute value.
func (f *Formatter) Format(value float64, locale string) Result {
	f.mu.RLock()
	cfg := f.cfg
	units := f.units
	f.mu.RUnlock()

	if cfg.ForceLocale != "" {
		locale = cfg.ForceLocale
	}
	printer := message.NewPrinter(localeTag(locale))

	if math.IsNaN(value) || math.IsInf(value, 0) {
		formatted := fmt.Sprintf("%v", value)
		return Result{Value: value, Formatted: formatted, Original: value, ScalingFactor: 1}
	}

	unit, ok := selectUnit(units, cfg.Threshold, value)
	if !ok {
		rounded := roundHalfAway(value, cfg.Precision)
		formatted := printer.Sprintf("%v", number.Decimal(rounded, number.MaxFractionDigits(cfg.Precision)))
		return Result{Value: value, Formatted: formatted, Original: value, ScalingFactor: 1}
	}

	scaled := value / unit.Factor
	label := unitLabel(unit, locale, cfg.UseAbbreviated)
	formatted := printer.Sprintf("%v", number.Decimal(roundHalfAway(scaled, cfg.Precision), number.MaxFractionDigits(cfg.Precision)))
	if cfg.UseAbbreviated {
		formatted += label
	} else {
		formatted += " " + label
	}

	return Result{
		Value:         scaled,
		Unit:          label,
		Formatted:     formatted,
		Original:      value,
		ScalingFactor: unit.Factor,
	}
}

// roundHalfAway rounds to the given number of fraction digits with ties
// going away from zero. The x/text printer rounds ties half-to-even, so
// the quotient is settled here before it reaches the printer.
func roundHalfAway(v float64, precision int) float64 {
	p10 := math.Pow10(precision)
	return math.Round(v*p10) / p10
}

// selectUnit picks the largest unit whose factor is <= |value|, provided
// |value| reaches the threshold.
func selectUnit(units []Unit, threshold, value float64) (Unit, bool) {
	abs := math.Abs(value)
	if abs < threshold {
		return Unit{}, false
	}
	for _, unit := range units {
		if unit.Factor <= abs {
			return unit, true
		}
	}
	return Unit{}, false
}

// unitLabel resolves the unit's label for a locale, falling back to the
// English label when the locale is missing from the table.
func unitLabel(unit Unit, locale string, abbreviated bool) string {
	labels := unit.Names
	if abbreviated {
		labels = unit.Abbrev
	}
	base := baseLang(locale)
	if label, ok := labels[base]; ok {
		return label
	}
	return labels["en"]
}

// localeTag maps the app's short language codes to Swiss locales; full
// BCP 47 tags pass through. Unknown input falls back to English.
func localeTag(locale string) language.Tag {
	switch locale {
	case "de":
		return language.MustParse("de-CH")
	case "fr":
		return language.MustParse("fr-CH")
	case "it":
		return language.MustParse("it-CH")
	case "en", "":
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}

func baseLang(locale string) string {
	if len(locale) >= 2 {
		return locale[:2]
	}
	return locale
}
