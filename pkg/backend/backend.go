// Package backend selects and constructs the VendorService implementation
// for a Config. The spreadsheet backend is used when both a credential and
// a spreadsheet ID are configured; otherwise the local store is used.
//
// Example:
//
//	svc, err := backend.New(ctx, types.Config{DataDir: ".vendors-db"})
//	if err != nil {
//	    return err
//	}
//	defer svc.Close()
package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/juju/clock"
	"github.com/juju/loggo"

	"github.com/mesh-intelligence/vendors/internal/sheets"
	"github.com/mesh-intelligence/vendors/internal/sqlite"
	"github.com/mesh-intelligence/vendors/pkg/types"
)

var logger = loggo.GetLogger("vendors.backend")

// Select reports which backend a Config selects. It reads nothing but cfg.
func Select(cfg types.Config) types.BackendKind {
	if cfg.HasRemote() {
		return types.BackendSheets
	}
	return types.BackendLocal
}

// Service is a selected backend together with its kind and resources.
type Service struct {
	types.VendorService
	kind  types.BackendKind
	close func() error
}

// Kind returns the selected backend kind.
func (s *Service) Kind() types.BackendKind {
	return s.kind
}

// Close releases the backend's resources.
func (s *Service) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

type options struct {
	clock      clock.Clock
	httpClient *http.Client
}

// Option adjusts backend construction.
type Option func(*options)

// WithClock sets the clock the local backend uses for simulated latency.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithHTTPClient sets the HTTP client used by the spreadsheet backend.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// New validates cfg and constructs the backend Select picks for it.
func New(ctx context.Context, cfg types.Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	o := options{clock: clock.WallClock}
	for _, opt := range opts {
		opt(&o)
	}

	switch kind := Select(cfg); kind {
	case types.BackendSheets:
		b, err := sheets.New(ctx, sheets.Options{
			SpreadsheetID:  cfg.SpreadsheetID,
			SheetName:      cfg.Sheet(),
			Credential:     cfg.Credential,
			CredentialType: cfg.CredentialType,
			Endpoint:       cfg.Endpoint,
			HTTPClient:     o.httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("connect spreadsheet: %w", err)
		}
		logger.Infof("using spreadsheet backend (sheet %q)", cfg.Sheet())
		return &Service{VendorService: b, kind: kind}, nil
	default:
		b := sqlite.NewBackend(sqlite.WithClock(o.clock))
		if err := b.Attach(cfg); err != nil {
			return nil, fmt.Errorf("attach local store: %w", err)
		}
		logger.Infof("using local backend in %q", cfg.DataDir)
		return &Service{VendorService: b, kind: kind, close: b.Detach}, nil
	}
}
