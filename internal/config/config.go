package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
)

type Config struct {
	Addr           string        // API bind address, e.g., "127.0.0.1:8080" (Windows) or ":8080" (Docker)
	LogDir         string        // logs directory
	AllowedOrigins []string      // CORS origins; empty means allow all
	CheckTimeout   time.Duration // per-probe HTTP timeout
	MaxConcurrent  int           // bulk worker-pool size
	MaxBatchSize   int           // domain cap for bulk checks and uploads
}

func FromEnv() Config {
	// Bind address (Windows-friendly default)
	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	// Logs
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	// CORS (empty list means the browser-facing default: allow everything)
	var origins []string
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	// Probe tuning
	timeout := 10 * time.Second
	if v := os.Getenv("CHECK_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	maxConcurrent := 10
	if v := os.Getenv("MAX_CONCURRENT_CHECKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxConcurrent = n
		}
	}

	maxBatch := 100
	if v := os.Getenv("MAX_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxBatch = n
		}
	}

	return Config{
		Addr:           addr,
		LogDir:         logDir,
		AllowedOrigins: origins,
		CheckTimeout:   timeout,
		MaxConcurrent:  maxConcurrent,
		MaxBatchSize:   maxBatch,
	}
}

// Validate reports every problem at once instead of stopping at the first.
func (c Config) Validate() error {
	var err error
	if c.Addr == "" {
		err = multierr.Append(err, fmt.Errorf("addr must not be empty"))
	}
	if c.LogDir == "" {
		err = multierr.Append(err, fmt.Errorf("log dir must not be empty"))
	}
	if c.CheckTimeout <= 0 {
		err = multierr.Append(err, fmt.Errorf("check timeout must be positive, got %s", c.CheckTimeout))
	}
	if c.MaxConcurrent < 1 {
		err = multierr.Append(err, fmt.Errorf("max concurrent checks must be >= 1, got %d", c.MaxConcurrent))
	}
	if c.MaxBatchSize < 1 {
		err = multierr.Append(err, fmt.Errorf("max batch size must be >= 1, got %d", c.MaxBatchSize))
	}
	return err
}
