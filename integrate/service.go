package integrate

import (
	"context"
	"fmt"
	"sync"

	"github.com/gemfin/gemfin/chart"
	"github.com/gemfin/gemfin/filter"
	"github.com/gemfin/gemfin/telemetry"
)

// Service owns the combined result of a multi-dataset load. Loading is
// all-or-nothing: the first failing dataset aborts the whole load, the
// combined structure becomes nil and the dataset count resets to zero.
// Partial success is never surfaced as partial data.
//
// Datasets are integrated strictly in sequence; the shared trees have no
// per-node locking, so a later dataset's integration never starts before
// the previous one's mutation completes.
//
// Concurrent LoadDatasets calls both run to completion, but a generation
// counter guards the shared result: only the newest load may publish, so a
// slow stale load cannot overwrite a fresher one.
type Service struct {
	integrator *Integrator

	mu         sync.Mutex
	generation uint64
	combined   *chart.FinancialData
	count      int
	report     filter.Report
}

// NewService creates a Service around the given integrator.
func NewService(in *Integrator) *Service {
	return &Service{integrator: in}
}

// LoadDatasets validates all identifiers, builds a fresh structure and
// integrates the datasets in sequence. Validation failures surface before
// any I/O. On success the combined structure is published and returned.
func (s *Service) LoadDatasets(ctx context.Context, ids []string) (*chart.FinancialData, error) {
	if len(ids) == 0 {
		return nil, &ValidationError{Reason: "No datasets requested"}
	}

	// Fail fast on malformed identifiers, before any fetch.
	parsed := make([]DatasetID, 0, len(ids))
	for _, raw := range ids {
		id, err := ParseDatasetID(raw)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, id)
	}

	generation := s.beginLoad()

	collector := telemetry.FromContext(ctx)
	timer := collector.Start(fmt.Sprintf("load %d datasets", len(parsed)))
	defer timer.End()

	data := chart.New()
	var report filter.Report
	for _, id := range parsed {
		if err := ctx.Err(); err != nil {
			s.abort(generation)
			return nil, err
		}

		r, err := s.integrator.Integrate(ctx, id, data)
		if err != nil {
			s.abort(generation)
			return nil, err
		}
		report.FilteredCount += r.FilteredCount
		report.ExcludedCodes = append(report.ExcludedCodes, r.ExcludedCodes...)
	}

	s.publish(generation, data, len(parsed), report)
	return data, nil
}

// Combined returns the currently published structure, nil after a failed
// or aborted load.
func (s *Service) Combined() *chart.FinancialData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.combined
}

// LoadedDatasetCount returns the number of datasets in the published
// structure, zero after a failed load.
func (s *Service) LoadedDatasetCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// FilterReport returns the aggregated filter diagnostics of the published
// load.
func (s *Service) FilterReport() filter.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

// beginLoad bumps the generation counter and clears the published result.
func (s *Service) beginLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.combined = nil
	s.count = 0
	s.report = filter.Report{}
	return s.generation
}

// abort clears the published result unless a newer load has started.
func (s *Service) abort(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != generation {
		return
	}
	s.combined = nil
	s.count = 0
	s.report = filter.Report{}
}

// publish installs the load result unless a newer load has started.
func (s *Service) publish(generation uint64, data *chart.FinancialData, count int, report filter.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != generation {
		return
	}
	s.combined = data
	s.count = count
	s.report = report
}
