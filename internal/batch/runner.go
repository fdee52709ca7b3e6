package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamed0406/webstatus/internal/probe"
)

var (
	ErrEmptyBatch    = errors.New("at least one domain is required")
	ErrBatchTooLarge = errors.New("batch exceeds the maximum size")
)

// Report is the full outcome of one bulk run.
type Report struct {
	BatchID string              `json:"batch_id"`
	Results []probe.CheckResult `json:"results"`
	Summary Summary             `json:"summary"`
}

// Runner fans a batch of domains out over a bounded worker pool and folds
// the results back in input order. Probes share nothing but the results
// slice, each goroutine writing only its own index.
type Runner struct {
	Logger      *zap.Logger
	Checker     probe.Checker
	MaxBatch    int
	Concurrency int
}

func NewRunner(logger *zap.Logger, checker probe.Checker, maxBatch, concurrency int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBatch < 1 {
		maxBatch = 100
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		Logger:      logger,
		Checker:     checker,
		MaxBatch:    maxBatch,
		Concurrency: concurrency,
	}
}

// Run probes every non-blank domain in the batch. The size cap applies to
// the raw input, before blank filtering. The checker never fails a probe
// upward, so one dead domain cannot abort the rest of the batch.
func (r *Runner) Run(ctx context.Context, domains []string) (*Report, error) {
	if len(domains) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(domains) > r.MaxBatch {
		return nil, fmt.Errorf("%w: got %d, limit %d", ErrBatchTooLarge, len(domains), r.MaxBatch)
	}

	kept := make([]string, 0, len(domains))
	for _, d := range domains {
		if d = strings.TrimSpace(d); d != "" {
			kept = append(kept, d)
		}
	}

	results := make([]probe.CheckResult, len(kept))
	sem := make(chan struct{}, r.Concurrency)
	var wg sync.WaitGroup

	for i, d := range kept {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, d string) {
			defer func() { <-sem }()
			defer wg.Done()
			results[i] = r.Checker.Check(ctx, d)
		}(i, d)
	}
	wg.Wait()

	rep := &Report{
		BatchID: uuid.NewString(),
		Results: results,
		Summary: Summarize(results),
	}
	r.Logger.Info("bulk_check",
		zap.String("batch_id", rep.BatchID),
		zap.Int("domains", len(kept)),
		zap.Int("active", rep.Summary.Active),
		zap.Int("errors", rep.Summary.Errors),
	)
	return rep, nil
}
