package integrate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/gemfin/gemfin/chart"
	"github.com/gemfin/gemfin/filter"
	"github.com/gemfin/gemfin/records"
)

// stubSource serves canned records per dataset identifier and can be
// primed with an error per entity id.
type stubSource struct {
	recs map[string][]records.Record
	errs map[string]error
}

func (s *stubSource) Fetch(ctx context.Context, source, model, entityID string, year int) ([]records.Record, error) {
	if err, ok := s.errs[entityID]; ok {
		return nil, err
	}
	return s.recs[entityID], nil
}

func rec(code string, year int, value int64) records.Record {
	return records.Record{Arten: code, Jahr: year, Value: decimal.NewFromInt(value), HasValue: true, Unit: "CHF"}
}

func TestParseDatasetID(t *testing.T) {
	id, err := ParseDatasetID("gdn/fs/010002:2022")
	assert.NoError(t, err)
	assert.Equal(t, DatasetID{Source: "gdn", Model: "fs", EntityID: "010002", Year: 2022}, id)
	assert.Equal(t, "gdn/fs/010002:2022", id.String())
	assert.Equal(t, "gdn/fs/010002:2022", id.EntityKey())
}

func TestParseDatasetID_Invalid(t *testing.T) {
	tests := []struct {
		input  string
		reason string
	}{
		{"gdn/fs", "Invalid dataset identifier format"},
		{"gdn/fs/extra/010002:2022", "Invalid dataset identifier format"},
		{"gdn/fs/:2022", "Invalid entity:year format"},
		{"gdn/fs/010002:", "Invalid entity:year format"},
		{"gdn/fs/010002", "Invalid entity:year format"},
		{"gdn/fs/010002:abcd", "Invalid entity:year format"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseDatasetID(tt.input)
			assert.Error(t, err)
			assert.Equal(t, tt.reason, err.Error())

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr), "expected a ValidationError")
		})
	}
}

func TestParseDatasetID_UnknownSource(t *testing.T) {
	_, err := ParseDatasetID("xyz/fs/010002:2022")
	assert.Error(t, err)
}

func TestParseDatasetID_YearBelowRange(t *testing.T) {
	_, err := ParseDatasetID("gdn/fs/010002:2010")
	assert.Error(t, err)
}

func TestIntegrate_WritesValuesAndEntity(t *testing.T) {
	source := &stubSource{recs: map[string][]records.Record{
		"010002": {rec("3600", 2022, 150000), rec("100", 2022, 75000)},
	}}
	in := New(source)
	target := chart.New()

	id := DatasetID{Source: "gdn", Model: "fs", EntityID: "010002", Year: 2022}
	_, err := in.Integrate(context.Background(), id, target)
	assert.NoError(t, err)

	key := "gdn/fs/010002:2022"
	node := target.IncomeStatement.Find("3600")
	assert.True(t, node.Values[key].Amount.Equal(decimal.NewFromInt(150000)))
	assert.Equal(t, "CHF", node.Values[key].Unit)

	balance := target.BalanceSheet.Find("100")
	assert.True(t, balance.Values[key].Amount.Equal(decimal.NewFromInt(75000)))

	entity := target.Entities[key]
	assert.True(t, entity != nil, "entity should be registered")
	assert.Equal(t, 2022, entity.Year)
	assert.Equal(t, 2, entity.Metadata.RecordCount)
	assert.Equal(t, []string{"3600", "100"}, target.UsedCodes)
}

// TestIntegrate_Idempotent: integrating the same dataset twice overwrites
// values instead of duplicating them.
func TestIntegrate_Idempotent(t *testing.T) {
	source := &stubSource{recs: map[string][]records.Record{
		"010002": {rec("3600", 2022, 150000)},
	}}
	in := New(source)
	target := chart.New()
	id := DatasetID{Source: "gdn", Model: "fs", EntityID: "010002", Year: 2022}

	_, err := in.Integrate(context.Background(), id, target)
	assert.NoError(t, err)
	_, err = in.Integrate(context.Background(), id, target)
	assert.NoError(t, err)

	node := target.IncomeStatement.Find("3600")
	assert.Equal(t, 1, len(node.Values))
	assert.Equal(t, 1, len(target.Entities))
	assert.Equal(t, []string{"3600"}, target.UsedCodes)
}

// TestIntegrate_TreeTotality: every record code either lands in a tree or
// appears in UnusedCodes; nothing is lost silently.
func TestIntegrate_TreeTotality(t *testing.T) {
	source := &stubSource{recs: map[string][]records.Record{
		"010002": {
			rec("3600", 2022, 1),
			rec("3699", 2022, 2), // mappable dimension, unknown code
			rec("900", 2022, 3),  // unmappable dimension, dropped
		},
	}}
	in := New(source)
	target := chart.New()

	_, err := in.Integrate(context.Background(), DatasetID{Source: "gdn", Model: "fs", EntityID: "010002", Year: 2022}, target)
	assert.NoError(t, err)

	assert.Equal(t, []string{"3600"}, target.UsedCodes)
	assert.Equal(t, []string{"3699"}, target.UnusedCodes)
}

func TestIntegrate_DropsOldAndIncompleteRecords(t *testing.T) {
	source := &stubSource{recs: map[string][]records.Record{
		"010002": {
			rec("3600", 2014, 1), // before MinYear
			rec("360", 2022, 2),
			{Arten: "3601", Jahr: 2022}, // missing value
			{Jahr: 2022, Value: decimal.NewFromInt(3), HasValue: true}, // missing arten
		},
	}}
	in := New(source)
	target := chart.New()

	_, err := in.Integrate(context.Background(), DatasetID{Source: "gdn", Model: "fs", EntityID: "010002", Year: 2022}, target)
	assert.NoError(t, err)

	assert.Equal(t, []string{"360"}, target.UsedCodes)
	assert.Equal(t, 0, len(target.IncomeStatement.Find("3600").Values))
	assert.Equal(t, 0, len(target.IncomeStatement.Find("3601").Values), "value-less record must not integrate")
}

func TestIntegrate_FetchFailure(t *testing.T) {
	source := &stubSource{errs: map[string]error{"010002": fmt.Errorf("Network error")}}
	in := New(source)

	_, err := in.Integrate(context.Background(), DatasetID{Source: "gdn", Model: "fs", EntityID: "010002", Year: 2022}, chart.New())
	assert.Error(t, err)
	assert.Equal(t, "Dataset gdn/fs/010002:2022: Network error", err.Error())

	var ierr *IntegrationError
	assert.True(t, errors.As(err, &ierr), "expected an IntegrationError")
	assert.Equal(t, "gdn/fs/010002:2022", ierr.Dataset)
}

func TestIntegrate_NoUsableRecords(t *testing.T) {
	source := &stubSource{recs: map[string][]records.Record{
		"010002": {{Jahr: 2022}, {Value: decimal.NewFromInt(1), HasValue: true}},
	}}
	in := New(source)

	_, err := in.Integrate(context.Background(), DatasetID{Source: "gdn", Model: "fs", EntityID: "010002", Year: 2022}, chart.New())
	assert.Error(t, err)
}

// TestIntegrate_AllRecordsMissingValue: a dataset file without a value
// column must fail with a dataset-attributed error, not integrate as
// zeros.
func TestIntegrate_AllRecordsMissingValue(t *testing.T) {
	csv := "arten,jahr\n" +
		"3600,2022\n" +
		"360,2022\n"
	recs, err := records.DecodeCSV(strings.NewReader(csv))
	assert.NoError(t, err)

	source := &stubSource{recs: map[string][]records.Record{"010002": recs}}
	in := New(source)
	target := chart.New()

	_, err = in.Integrate(context.Background(), DatasetID{Source: "gdn", Model: "fs", EntityID: "010002", Year: 2022}, target)
	assert.Error(t, err)
	assert.Equal(t, "Dataset gdn/fs/010002:2022: no record carries the required fields (arten, jahr, value)", err.Error())

	var ierr *IntegrationError
	assert.True(t, errors.As(err, &ierr), "expected an IntegrationError")

	assert.Equal(t, 0, len(target.IncomeStatement.Find("3600").Values))
	assert.Equal(t, 0, len(target.UsedCodes))
	assert.Equal(t, 0, len(target.Entities))
}

func TestIntegrate_WithFilter(t *testing.T) {
	source := &stubSource{recs: map[string][]records.Record{
		"010002": {rec("3600", 2022, 1), rec("4600", 2022, 2)},
	}}
	engine := filter.NewEngine(filter.Config{
		Enabled:     true,
		CombineMode: filter.ModeAND,
		LogFiltered: true,
		Rules: []filter.Rule{
			{ID: "no-36", Type: filter.MatchStartsWith, Pattern: "36", Enabled: true, Action: filter.ActionExclude},
		},
	})
	in := New(source, WithFilter(engine))
	target := chart.New()

	report, err := in.Integrate(context.Background(), DatasetID{Source: "gdn", Model: "fs", EntityID: "010002", Year: 2022}, target)
	assert.NoError(t, err)
	assert.Equal(t, 1, report.FilteredCount)
	assert.Equal(t, []string{"3600"}, report.ExcludedCodes)

	assert.Equal(t, 0, len(target.IncomeStatement.Find("3600").Values))
	assert.Equal(t, 1, len(target.IncomeStatement.Find("4600").Values))
}

func TestIntegrate_CatalogEnrichment(t *testing.T) {
	population := decimal.NewFromInt(420000)
	catalog := records.NewCatalog([]records.CatalogEntry{
		{
			ID:            "010002",
			Name:          chart.Labels{DE: "Zürich", FR: "Zurich"},
			ScalingFactor: &population,
			ScalingInfo:   chart.Labels{DE: "Einwohner"},
		},
	})
	source := &stubSource{recs: map[string][]records.Record{
		"010002": {rec("3600", 2022, 1)},
	}}
	in := New(source, WithCatalog(catalog))
	target := chart.New()

	_, err := in.Integrate(context.Background(), DatasetID{Source: "gdn", Model: "fs", EntityID: "010002", Year: 2022}, target)
	assert.NoError(t, err)

	entity := target.Entities["gdn/fs/010002:2022"]
	assert.Equal(t, "Zürich", entity.Name.Get(chart.LangDE))
	assert.Equal(t, chart.ScalingModeDivide, entity.ScalingMode)
	assert.True(t, entity.ScalingFactor.Equal(population))
}
