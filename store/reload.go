package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/etnz/ledgerdash"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Reloader publishes a new snapshot into a Store whenever the ledger at path
// changes.
type Reloader struct {
	store *Store
	path  string
	opts  ledgerdash.Options
	log   zerolog.Logger

	mu          sync.Mutex
	fingerprint string
	cron        *cron.Cron
}

// NewReloader creates a reloader of the ledger at path (a file or a directory
// of .jsonl files).
func NewReloader(s *Store, path string, opts ledgerdash.Options, log zerolog.Logger) *Reloader {
	return &Reloader{store: s, path: path, opts: opts, log: log.With().Str("path", path).Logger()}
}

// Reload loads and publishes the ledger if it changed since the last
// successful reload. It reports whether a snapshot was published.
//
// On error the current snapshot is kept.
func (r *Reloader) Reload(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return false, err
	}
	fp, err := fingerprint(r.path)
	if err != nil {
		return false, err
	}
	if fp == r.fingerprint && r.store.Current() != nil {
		return false, nil
	}

	snap, err := ledgerdash.LoadSnapshot(r.path, r.opts)
	if err != nil {
		return false, err
	}
	r.fingerprint = fp
	r.store.Publish(snap)

	event := r.log.Info()
	if n := len(snap.Rejected()); n > 0 {
		event = r.log.Warn().Int("rejected", n).AnErr("error", snap.Err())
	}
	event.Str("snapshot", snap.ID()).Int("transactions", snap.Len()).Msg("ledger loaded")
	return true, nil
}

// Start reloads the ledger on the cron schedule spec (for instance
// "@every 1m") until Stop is called.
func (r *Reloader) Start(spec string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cron != nil {
		return fmt.Errorf("reloader already started")
	}
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if _, err := r.Reload(context.Background()); err != nil {
			r.log.Error().Err(err).Msg("could not reload ledger")
		}
	}); err != nil {
		return fmt.Errorf("invalid reload schedule %q: %w", spec, err)
	}
	c.Start()
	r.cron = c
	return nil
}

// Stop stops the schedule and waits for a running reload to complete.
func (r *Reloader) Stop() {
	r.mu.Lock()
	c := r.cron
	r.cron = nil
	r.mu.Unlock()
	if c != nil {
		<-c.Stop().Done()
	}
}

// fingerprint summarizes the names, sizes and modification times of the
// ledger files.
func fingerprint(path string) (string, error) {
	var b strings.Builder
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || (p != path && !strings.HasSuffix(p, ".jsonl")) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "%s %d %d\n", p, info.Size(), info.ModTime().UnixNano())
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("could not read ledger %q: %w", path, err)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:]), nil
}
