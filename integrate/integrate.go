// Package integrate merges raw entity/year datasets into the shared chart
// of accounts. A single dataset is addressed by a composite identifier
// "source/model/entityId:year"; its records are fetched from a
// records.Source, optionally filtered, and written onto the matching
// account nodes of the target structure.
//
// Lookup misses are not errors: account codes absent from the tree land in
// the structure's UnusedCodes list and the record is skipped. Fetch
// failures and structurally unusable datasets are errors, attributed to
// the dataset identifier.
package integrate

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gemfin/gemfin/chart"
	"github.com/gemfin/gemfin/filter"
	"github.com/gemfin/gemfin/records"
	"github.com/gemfin/gemfin/telemetry"
)

// MinYear is the earliest reporting year accepted during integration.
// Older records are dropped silently.
const MinYear = 2015

// Known dataset sources.
const (
	SourceGDN = "gdn" // municipalities (Gemeinden)
	SourceSTD = "std" // cantons and confederation (standardized)
)

// DatasetID identifies one entity/model/year dataset. Its string form,
// "source/model/entityId:year", doubles as the entity key under which
// values are stored on account nodes; the two must never diverge.
type DatasetID struct {
	Source   string
	Model    string
	EntityID string
	Year     int
}

// String returns the composite identifier.
func (id DatasetID) String() string {
	return fmt.Sprintf("%s/%s/%s:%d", id.Source, id.Model, id.EntityID, id.Year)
}

// EntityKey returns the key under which this dataset's values are stored.
func (id DatasetID) EntityKey() string {
	return id.String()
}

// ValidationError reports a malformed dataset identifier or configuration.
// It is raised before any I/O is attempted and never silently recovered.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IntegrationError wraps a dataset-level failure with its identifier. The
// wrapped message becomes the overall error of an all-or-nothing load.
type IntegrationError struct {
	Dataset string
	Err     error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("Dataset %s: %s", e.Dataset, e.Err)
}

func (e *IntegrationError) Unwrap() error {
	return e.Err
}

// ParseDatasetID validates and parses a composite dataset identifier.
func ParseDatasetID(s string) (DatasetID, error) {
	segments := strings.Split(s, "/")
	if len(segments) != 3 {
		return DatasetID{}, &ValidationError{Input: s, Reason: "Invalid dataset identifier format"}
	}

	source, model, entityYear := segments[0], segments[1], segments[2]
	parts := strings.Split(entityYear, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return DatasetID{}, &ValidationError{Input: s, Reason: "Invalid entity:year format"}
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return DatasetID{}, &ValidationError{Input: s, Reason: "Invalid entity:year format"}
	}

	if source != SourceGDN && source != SourceSTD {
		return DatasetID{}, &ValidationError{Input: s, Reason: fmt.Sprintf("Unknown dataset source %q", source)}
	}
	if model == "" {
		return DatasetID{}, &ValidationError{Input: s, Reason: "Invalid dataset identifier format"}
	}
	if year < MinYear {
		return DatasetID{}, &ValidationError{Input: s, Reason: fmt.Sprintf("Year %d is before the supported range (>= %d)", year, MinYear)}
	}

	return DatasetID{Source: source, Model: model, EntityID: parts[0], Year: year}, nil
}

// Integrator loads raw records and merges them into a FinancialData
// structure. Construct it with New and the functional options.
type Integrator struct {
	source  records.Source
	catalog *records.Catalog
	engine  *filter.Engine
}

// Option configures an Integrator.
type Option func(*Integrator)

// WithCatalog enriches registered entities with display names and scaling
// factors from the catalog.
func WithCatalog(c *records.Catalog) Option {
	return func(in *Integrator) { in.catalog = c }
}

// WithFilter applies the filter engine to every fetched record before
// integration.
func WithFilter(e *filter.Engine) Option {
	return func(in *Integrator) { in.engine = e }
}

// New creates an Integrator reading from the given record source.
func New(source records.Source, opts ...Option) *Integrator {
	in := &Integrator{source: source}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Integrate fetches the dataset's records and merges them into target,
// mutating it in place: matching account nodes get a value under the
// dataset's entity key (overwriting any previous value, so repeated
// integration is idempotent), and the dataset's entity is registered.
//
// Records older than MinYear or without a mappable dimension are dropped.
// Codes that match no tree node are reported in target.UnusedCodes.
func (in *Integrator) Integrate(ctx context.Context, id DatasetID, target *chart.FinancialData) (filter.Report, error) {
	collector := telemetry.FromContext(ctx)
	timer := collector.Start(fmt.Sprintf("integrate %s", id))
	defer timer.End()

	recs, err := in.source.Fetch(ctx, id.Source, id.Model, id.EntityID, id.Year)
	if err != nil {
		return filter.Report{}, &IntegrationError{Dataset: id.String(), Err: err}
	}

	if len(recs) > 0 && !anyUsable(recs) {
		return filter.Report{}, &IntegrationError{
			Dataset: id.String(),
			Err:     fmt.Errorf("no record carries the required fields (arten, jahr, value)"),
		}
	}

	var report filter.Report
	if in.engine != nil {
		recs, report = in.engine.Apply(recs)
	}

	entityKey := id.EntityKey()
	integrated := 0
	for _, rec := range recs {
		if !rec.HasRequiredFields() || rec.Jahr < MinYear {
			continue
		}

		tree := target.TreeFor(rec.Dimension())
		if tree == nil {
			continue
		}

		node := tree.Find(rec.Arten)
		if node == nil {
			target.MarkUnused(rec.Arten)
			continue
		}

		node.Values[entityKey] = chart.Value{Amount: rec.Value, Unit: rec.Unit}
		target.MarkUsed(rec.Arten)
		integrated++
	}

	target.Entities[entityKey] = in.buildEntity(id, integrated)
	target.Metadata.RecordCount += integrated

	return report, nil
}

func (in *Integrator) buildEntity(id DatasetID, recordCount int) *chart.Entity {
	entity := &chart.Entity{
		Code: id.EntityKey(),
		Year: id.Year,
		Metadata: chart.Metadata{
			Source:      id.Source,
			LoadedAt:    time.Now(),
			RecordCount: recordCount,
		},
	}

	if entry, ok := in.catalog.Lookup(id.EntityID); ok {
		entity.Name = entry.Name
		if entry.ScalingFactor != nil {
			factor := *entry.ScalingFactor
			entity.ScalingFactor = &factor
			entity.ScalingInfo = entry.ScalingInfo
			entity.ScalingMode = chart.ScalingModeDivide
		}
	}
	if entity.Name.DE == "" {
		entity.Name = chart.Labels{DE: id.EntityID}
	}

	return entity
}

func anyUsable(recs []records.Record) bool {
	for _, rec := range recs {
		if rec.HasRequiredFields() {
			return true
		}
	}
	return false
}
