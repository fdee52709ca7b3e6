package probe

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds a single probe end to end.
	DefaultTimeout = 10 * time.Second

	// TimeFormat is used for every timestamp the API emits.
	TimeFormat = "2006-01-02 15:04:05"

	// Sites commonly reject obvious bot clients, so probes present a
	// regular browser User-Agent.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// HTTPChecker probes one URL per call with a single GET, following
// redirects. It never returns an error: every failure path is folded into
// the CheckResult, so one bad domain cannot abort a batch.
type HTTPChecker struct {
	Client *http.Client
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPChecker{Client: &http.Client{Timeout: timeout}}
}

func (h *HTTPChecker) Check(ctx context.Context, domain string) CheckResult {
	target := NormalizeURL(domain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return failure(domain, StatusError, errorMessage(err.Error()))
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := h.Client.Do(req)
	if err != nil {
		switch classifyErr(err) {
		case KindTimeout:
			return failure(domain, StatusTimeout, timeoutMessage)
		case KindConnectionError:
			return failure(domain, StatusConnectionError, connectionErrorMessage)
		default:
			return failure(domain, StatusError, errorMessage(err.Error()))
		}
	}
	elapsed := time.Since(start).Seconds()
	defer resp.Body.Close()

	return CheckResult{
		Domain:       domain,
		Status:       HTTPStatus(resp.StatusCode),
		Message:      MessageFor(resp.StatusCode),
		Timestamp:    time.Now().UTC().Format(TimeFormat),
		ResponseTime: &elapsed,
	}
}

func failure(domain string, st Status, msg string) CheckResult {
	return CheckResult{
		Domain:    domain,
		Status:    st,
		Message:   msg,
		Timestamp: time.Now().UTC().Format(TimeFormat),
	}
}

// classifyErr sorts a transport failure into the sentinel taxonomy:
// deadline overruns are TIMEOUT, anything that died before an HTTP response
// could start (DNS, dial, TLS) is CONNECTION_ERROR, the rest ERROR.
func classifyErr(err error) Kind {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return KindTimeout
	}
	var dnsErr *net.DNSError
	var opErr *net.OpError
	var certErr *tls.CertificateVerificationError
	var recErr tls.RecordHeaderError
	if errors.As(err, &dnsErr) || errors.As(err, &opErr) ||
		errors.As(err, &certErr) || errors.As(err, &recErr) {
		return KindConnectionError
	}
	return KindError
}
