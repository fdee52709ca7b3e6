// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func main() {
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	addr := strings.TrimSpace(os.Getenv("API_ADDR"))
	logDir := strings.TrimSpace(os.Getenv("LOG_DIR"))
	allowed := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS"))
	timeout := strings.TrimSpace(os.Getenv("CHECK_TIMEOUT_MS"))
	workers := strings.TrimSpace(os.Getenv("MAX_CONCURRENT_CHECKS"))
	batchCap := strings.TrimSpace(os.Getenv("MAX_BATCH_SIZE"))

	if addr == "" {
		warn("API_ADDR is empty; the app defaults to 127.0.0.1:8080.")
	} else {
		ok("API_ADDR=" + addr)
	}

	if logDir == "" {
		warn("LOG_DIR is empty; logs will go to ./logs.")
	} else {
		ok("LOG_DIR=" + logDir)
	}

	if allowed == "" {
		warn("ALLOWED_ORIGINS empty — CORS falls back to allow-all (fine for local dev).")
	} else {
		ok("ALLOWED_ORIGINS=" + allowed)
	}

	// Numeric knobs: a bad value is silently ignored by the app, so flag it here.
	checks := map[string]string{
		"CHECK_TIMEOUT_MS":      timeout,
		"MAX_CONCURRENT_CHECKS": workers,
		"MAX_BATCH_SIZE":        batchCap,
	}
	for name, v := range checks {
		if v == "" {
			continue
		}
		if n, err := strconv.Atoi(v); err != nil || n <= 0 {
			warn(name + "=" + v + " is not a positive integer; the built-in default will be used.")
		} else {
			ok(name + "=" + v)
		}
	}

	ok("preflight passed")
}
