package batch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hamed0406/webstatus/internal/probe"
)

// fake checker controllable per domain
type fakeChecker struct {
	calls    atomic.Int64
	inflight atomic.Int64
	peak     atomic.Int64
	delay    func(domain string) time.Duration
	status   func(domain string) probe.Status
}

func (f *fakeChecker) Check(ctx context.Context, domain string) probe.CheckResult {
	f.calls.Add(1)
	n := f.inflight.Add(1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if f.delay != nil {
		time.Sleep(f.delay(domain))
	}
	f.inflight.Add(-1)

	st := probe.HTTPStatus(200)
	if f.status != nil {
		st = f.status(domain)
	}
	return probe.CheckResult{Domain: domain, Status: st}
}

func domainsN(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("site-%d.com", i)
	}
	return out
}

func TestRunner_RejectsEmptyAndOversized(t *testing.T) {
	r := NewRunner(nil, &fakeChecker{}, 100, 4)

	if _, err := r.Run(context.Background(), nil); !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("want ErrEmptyBatch, got %v", err)
	}
	if _, err := r.Run(context.Background(), domainsN(101)); !errors.Is(err, ErrBatchTooLarge) {
		t.Fatalf("want ErrBatchTooLarge, got %v", err)
	}

	rep, err := r.Run(context.Background(), domainsN(100))
	if err != nil {
		t.Fatalf("size 100 must be accepted: %v", err)
	}
	if len(rep.Results) != 100 {
		t.Fatalf("want 100 results, got %d", len(rep.Results))
	}
}

func TestRunner_SizeCapAppliesBeforeBlankFiltering(t *testing.T) {
	r := NewRunner(nil, &fakeChecker{}, 3, 1)

	// 4 raw entries exceed the cap even though only 2 are real
	in := []string{"a.com", " ", "", "b.com"}
	if _, err := r.Run(context.Background(), in); !errors.Is(err, ErrBatchTooLarge) {
		t.Fatalf("cap must apply to raw input, got %v", err)
	}
}

func TestRunner_FiltersBlanksAndTrims(t *testing.T) {
	chk := &fakeChecker{}
	r := NewRunner(nil, chk, 100, 4)

	rep, err := r.Run(context.Background(), []string{" a.com ", "", "   ", "b.com"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rep.Results) != 2 {
		t.Fatalf("blanks must be skipped, got %d results", len(rep.Results))
	}
	if rep.Results[0].Domain != "a.com" || rep.Results[1].Domain != "b.com" {
		t.Fatalf("unexpected domains: %+v", rep.Results)
	}
	if got := chk.calls.Load(); got != 2 {
		t.Fatalf("want 2 probes, got %d", got)
	}
}

func TestRunner_PreservesInputOrderUnderConcurrency(t *testing.T) {
	// earlier domains sleep longer, so completion order is reversed
	chk := &fakeChecker{
		delay: func(domain string) time.Duration {
			i, _ := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(domain, "site-"), ".com"))
			return time.Duration(20-i) * 5 * time.Millisecond
		},
	}
	r := NewRunner(nil, chk, 100, 8)

	in := domainsN(20)
	rep, err := r.Run(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	for i, res := range rep.Results {
		if res.Domain != in[i] {
			t.Fatalf("order broken at %d: want %q got %q", i, in[i], res.Domain)
		}
	}
}

func TestRunner_BoundsConcurrency(t *testing.T) {
	chk := &fakeChecker{
		delay: func(string) time.Duration { return 10 * time.Millisecond },
	}
	r := NewRunner(nil, chk, 100, 3)

	if _, err := r.Run(context.Background(), domainsN(30)); err != nil {
		t.Fatal(err)
	}
	if peak := chk.peak.Load(); peak > 3 {
		t.Fatalf("worker pool exceeded bound: peak=%d", peak)
	}
}

func TestRunner_OneFailureDoesNotAbortBatch(t *testing.T) {
	chk := &fakeChecker{
		status: func(domain string) probe.Status {
			if domain == "site-1.com" {
				return probe.StatusConnectionError
			}
			return probe.HTTPStatus(200)
		},
	}
	r := NewRunner(nil, chk, 100, 2)

	rep, err := r.Run(context.Background(), domainsN(3))
	if err != nil {
		t.Fatal(err)
	}
	want := Summary{Total: 3, Active: 2, Errors: 1}
	if rep.Summary != want {
		t.Fatalf("summary mismatch: want %+v got %+v", want, rep.Summary)
	}
	if rep.BatchID == "" {
		t.Fatalf("report must carry a batch id")
	}
}
