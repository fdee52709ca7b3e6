package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind discriminates how a probe ended.
type Kind int

const (
	KindHTTP Kind = iota // a real HTTP response came back
	KindTimeout
	KindConnectionError
	KindError
)

const (
	sentinelTimeout         = "TIMEOUT"
	sentinelConnectionError = "CONNECTION_ERROR"
	sentinelError           = "ERROR"
)

// Status is either a numeric HTTP status code or a sentinel outcome for
// probes that never produced a response. It marshals to a JSON number or to
// the sentinel string, so callers can tell the two apart on the wire.
type Status struct {
	Kind Kind
	Code int // set only when Kind == KindHTTP
}

func HTTPStatus(code int) Status { return Status{Kind: KindHTTP, Code: code} }

var (
	StatusTimeout         = Status{Kind: KindTimeout}
	StatusConnectionError = Status{Kind: KindConnectionError}
	StatusError           = Status{Kind: KindError}
)

// IsHTTP reports whether a real response was obtained.
func (s Status) IsHTTP() bool { return s.Kind == KindHTTP }

func (s Status) String() string {
	switch s.Kind {
	case KindHTTP:
		return strconv.Itoa(s.Code)
	case KindTimeout:
		return sentinelTimeout
	case KindConnectionError:
		return sentinelConnectionError
	default:
		return sentinelError
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	if s.Kind == KindHTTP {
		return []byte(strconv.Itoa(s.Code)), nil
	}
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var code int
	if err := json.Unmarshal(b, &code); err == nil {
		*s = HTTPStatus(code)
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return fmt.Errorf("status must be a number or a string: %w", err)
	}
	switch str {
	case sentinelTimeout:
		*s = StatusTimeout
	case sentinelConnectionError:
		*s = StatusConnectionError
	case sentinelError:
		*s = StatusError
	default:
		return fmt.Errorf("unknown status sentinel %q", str)
	}
	return nil
}

// CheckResult is the outcome of a single probe. Domain echoes the caller's
// raw input for correlation. ResponseTime (seconds) is set iff the request
// round-tripped, i.e. Status carries a numeric code.
type CheckResult struct {
	Domain       string   `json:"domain"`
	Status       Status   `json:"status"`
	Message      string   `json:"message"`
	Timestamp    string   `json:"timestamp"`
	ResponseTime *float64 `json:"response_time"`
}

// Checker performs a single availability check against one raw domain.
type Checker interface {
	Check(ctx context.Context, domain string) CheckResult
}
