// Package sqlite implements the local VendorService backend. The vendor
// list is kept as one JSON value in a SQLite key-value table, seeded with
// sample data on first read. Every operation waits for a configured delay
// to emulate network latency.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/juju/clock"
	"github.com/juju/loggo"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/vendors/pkg/types"
)

var logger = loggo.GetLogger("vendors.sqlite")

// Backend implements types.VendorService on a local SQLite file.
type Backend struct {
	mu       sync.Mutex
	attached bool
	config   types.Config
	db       *sql.DB
	clock    clock.Clock

	fetchDelay    time.Duration
	mutationDelay time.Duration
}

// Option configures a Backend.
type Option func(*Backend)

// WithClock replaces the wall clock used for simulated latency.
func WithClock(c clock.Clock) Option {
	return func(b *Backend) {
		b.clock = c
	}
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{clock: clock.WallClock}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach opens <DataDir>/vendors.db, creating the directory and the
// key-value table if needed. Existing data is kept.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createKV); err != nil {
		db.Close()
		return fmt.Errorf("create schema: %w", err)
	}

	b.db = db
	b.config = config
	b.fetchDelay = config.FetchDelay
	b.mutationDelay = config.MutationDelay
	b.attached = true

	logger.Debugf("attached local store in %s", dataDir)
	return nil
}

// Detach closes the database. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	if b.db != nil {
		err := b.db.Close()
		b.db = nil
		return err
	}
	return nil
}

// Close is Detach, so the backend satisfies io.Closer.
func (b *Backend) Close() error {
	return b.Detach()
}

// FetchAll returns the stored vendors, seeding the store first if needed.
func (b *Backend) FetchAll(ctx context.Context) types.Result[[]types.Vendor] {
	if err := b.wait(ctx, b.fetchDelay); err != nil {
		return types.Fail[[]types.Vendor](err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	vendors, err := b.loadLocked(ctx)
	if err != nil {
		return types.Fail[[]types.Vendor](err)
	}
	return types.Ok(vendors)
}

// Add appends v to the stored list.
func (b *Backend) Add(ctx context.Context, v types.Vendor) types.Result[types.Vendor] {
	if err := b.wait(ctx, b.mutationDelay); err != nil {
		return types.Fail[types.Vendor](err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	vendors, err := b.loadLocked(ctx)
	if err != nil {
		return types.Fail[types.Vendor](err)
	}
	if err := b.saveLocked(ctx, append(vendors, v)); err != nil {
		return types.Fail[types.Vendor](err)
	}
	logger.Debugf("added vendor %q", v.CompanyName)
	return types.Ok(v)
}

// Update replaces the vendor whose name equals originalName, in place.
func (b *Backend) Update(ctx context.Context, originalName string, v types.Vendor) types.Result[types.Vendor] {
	if err := b.wait(ctx, b.mutationDelay); err != nil {
		return types.Fail[types.Vendor](err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	vendors, err := b.loadLocked(ctx)
	if err != nil {
		return types.Fail[types.Vendor](err)
	}
	i := indexOf(vendors, originalName)
	if i < 0 {
		return types.Fail[types.Vendor](notFound(originalName))
	}
	vendors[i] = v
	if err := b.saveLocked(ctx, vendors); err != nil {
		return types.Fail[types.Vendor](err)
	}
	logger.Debugf("updated vendor %q", originalName)
	return types.Ok(v)
}

// Delete removes the first vendor whose name equals name.
func (b *Backend) Delete(ctx context.Context, name string) types.Result[struct{}] {
	if err := b.wait(ctx, b.mutationDelay); err != nil {
		return types.Fail[struct{}](err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	vendors, err := b.loadLocked(ctx)
	if err != nil {
		return types.Fail[struct{}](err)
	}
	i := indexOf(vendors, name)
	if i < 0 {
		return types.Fail[struct{}](notFound(name))
	}
	remaining := make([]types.Vendor, 0, len(vendors)-1)
	remaining = append(remaining, vendors[:i]...)
	remaining = append(remaining, vendors[i+1:]...)
	if err := b.saveLocked(ctx, remaining); err != nil {
		return types.Fail[struct{}](err)
	}
	logger.Debugf("deleted vendor %q", name)
	return types.Ok(struct{}{})
}

// loadLocked reads the vendor list. A missing or unreadable value is
// replaced with the sample vendors, which are persisted before returning.
// The caller must hold b.mu.
func (b *Backend) loadLocked(ctx context.Context) ([]types.Vendor, error) {
	if !b.attached {
		return nil, types.ErrDetached
	}

	var raw string
	err := b.db.QueryRowContext(ctx, selectValue, storeKey).Scan(&raw)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read store: %w", err)
	}
	if err == nil {
		vendors, decodeErr := decodeVendors(raw)
		if decodeErr == nil {
			return vendors, nil
		}
		logger.Warningf("reseeding local store: %v", decodeErr)
	}

	seed := seedVendors()
	if err := b.saveLocked(ctx, seed); err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}
	return seedVendors(), nil
}

// saveLocked writes the full vendor list under storeKey.
// The caller must hold b.mu.
func (b *Backend) saveLocked(ctx context.Context, vendors []types.Vendor) error {
	value, err := encodeVendors(vendors)
	if err != nil {
		return fmt.Errorf("encode vendors: %w", err)
	}
	if _, err := b.db.ExecContext(ctx, upsertValue, storeKey, value); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

// wait blocks for d on the backend clock, or until ctx is done.
func (b *Backend) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-b.clock.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func indexOf(vendors []types.Vendor, name string) int {
	for i, v := range vendors {
		if v.CompanyName == name {
			return i
		}
	}
	return -1
}

func notFound(name string) error {
	return fmt.Errorf("%w: %q", types.ErrNotFound, name)
}
