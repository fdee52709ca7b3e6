package batch

import "github.com/hamed0406/webstatus/internal/probe"

// Summary tallies one batch of results. Each bucket is its own predicate:
// active [200,300), redirects [300,400), inactive [400,500), errors for
// sentinel statuses or codes >= 500. A code below 200 lands in Total only,
// so the buckets are not guaranteed to sum to Total.
type Summary struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Redirects int `json:"redirects"`
	Inactive  int `json:"inactive"`
	Errors    int `json:"errors"`
}

// Summarize computes the summary for a sequence of results.
func Summarize(results []probe.CheckResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if !r.Status.IsHTTP() {
			s.Errors++
			continue
		}
		switch code := r.Status.Code; {
		case code >= 200 && code < 300:
			s.Active++
		case code >= 300 && code < 400:
			s.Redirects++
		case code >= 400 && code < 500:
			s.Inactive++
		case code >= 500:
			s.Errors++
		}
	}
	return s
}
