package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHTTPChecker_StatusOK(t *testing.T) {
	var gotUA string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	}))
	defer s.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), s.URL)

	if out.Status != HTTPStatus(200) {
		t.Fatalf("want status 200, got %v", out.Status)
	}
	if out.Message != "✅ Site is Live" {
		t.Fatalf("want curated 200 message, got %q", out.Message)
	}
	if out.Domain != s.URL {
		t.Fatalf("domain must echo input, got %q", out.Domain)
	}
	if out.ResponseTime == nil || *out.ResponseTime < 0 {
		t.Fatalf("want non-nil response time, got %v", out.ResponseTime)
	}
	if !strings.Contains(gotUA, "Mozilla/5.0") {
		t.Fatalf("want browser User-Agent, got %q", gotUA)
	}
	if _, err := time.Parse(TimeFormat, out.Timestamp); err != nil {
		t.Fatalf("bad timestamp %q: %v", out.Timestamp, err)
	}
}

func TestHTTPChecker_Status404(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer s.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), s.URL)
	if out.Status != HTTPStatus(404) {
		t.Fatalf("want status 404, got %v", out.Status)
	}
	if out.Message != "❌ 404 Not Found" {
		t.Fatalf("want curated 404 message, got %q", out.Message)
	}
	if out.ResponseTime == nil {
		t.Fatalf("a real response must carry a response time")
	}
}

func TestHTTPChecker_FollowsRedirects(t *testing.T) {
	final := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer final.Close()
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, final.URL, http.StatusMovedPermanently)
	}))
	defer s.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), s.URL)
	if out.Status != HTTPStatus(200) {
		t.Fatalf("redirect should be followed to 200, got %v", out.Status)
	}
}

func TestHTTPChecker_Timeout(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(200)
	}))
	defer s.Close()

	chk := NewHTTPChecker(50 * time.Millisecond)
	out := chk.Check(context.Background(), s.URL)

	if out.Status != StatusTimeout {
		t.Fatalf("want TIMEOUT, got %v (%q)", out.Status, out.Message)
	}
	if out.Message != "⏱️ Request Timeout" {
		t.Fatalf("want timeout message, got %q", out.Message)
	}
	if out.ResponseTime != nil {
		t.Fatalf("timeout must carry null response time, got %v", *out.ResponseTime)
	}
}

func TestHTTPChecker_ConnectionError(t *testing.T) {
	// a closed server yields a refused connection
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := s.URL
	s.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), url)
	if out.Status != StatusConnectionError {
		t.Fatalf("want CONNECTION_ERROR, got %v (%q)", out.Status, out.Message)
	}
	if out.ResponseTime != nil {
		t.Fatalf("connection error must carry null response time")
	}
}

func TestHTTPChecker_UnresolvableHost(t *testing.T) {
	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), "definitely-not-a-real-host.invalid")
	if out.Status != StatusConnectionError {
		t.Fatalf("want CONNECTION_ERROR for bad DNS, got %v (%q)", out.Status, out.Message)
	}
	if out.Message != "❌ Connection Failed" {
		t.Fatalf("want connection message, got %q", out.Message)
	}
	if out.Domain != "definitely-not-a-real-host.invalid" {
		t.Fatalf("domain must echo the raw input, got %q", out.Domain)
	}
}
