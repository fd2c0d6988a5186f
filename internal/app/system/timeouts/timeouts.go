// Package timeouts centralizes the context deadlines handlers put on
// database and storage calls.
//
// Tiers, from fastest to slowest:
//   - Ping: health checks and connectivity probes
//   - Short: single-document reads (get by id, lookup by email)
//   - Medium: whole-collection lists and single-document writes
//   - Long: writes that also touch blob storage (poster and proof uploads)
//   - Batch: CSV exports and multi-file gallery uploads
//
// The site's collections stay small (hundreds of documents), so the
// defaults are tight; Configure can loosen them for slow deployments.
package timeouts

import (
	"sync"
	"time"
)

// Defaults, used unless Configure overrides them.
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 3 * time.Second
	DefaultMedium = 8 * time.Second
	DefaultLong   = 20 * time.Second
	DefaultBatch  = 45 * time.Second
)

var (
	mu     sync.RWMutex
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	long   = DefaultLong
	batch  = DefaultBatch
)

// Ping returns the deadline for health checks and connectivity probes.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the deadline for single-document reads.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the deadline for list queries and simple writes.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Long returns the deadline for writes that include a storage upload.
func Long() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return long
}

// Batch returns the deadline for exports and multi-file uploads.
func Batch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return batch
}

// Config holds override values; zero fields keep the current setting.
type Config struct {
	Ping   time.Duration
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
	Batch  time.Duration
}

// Configure applies overrides. Call during startup, before handlers run.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.Medium > 0 {
		medium = cfg.Medium
	}
	if cfg.Long > 0 {
		long = cfg.Long
	}
	if cfg.Batch > 0 {
		batch = cfg.Batch
	}
}

// Reset restores the defaults. Tests use this to undo Configure.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
	long = DefaultLong
	batch = DefaultBatch
}
