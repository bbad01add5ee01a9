package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/vendors/internal/manager"
	"github.com/mesh-intelligence/vendors/pkg/backend"
	"github.com/mesh-intelligence/vendors/pkg/types"
)

// errUsage marks command-line mistakes that cobra does not catch itself.
var errUsage = errors.New("usage")

// session is one opened backend with a Manager over it.
type session struct {
	cfg types.Config
	svc *backend.Service
	mgr *manager.Manager
}

// openSession resolves configuration, opens the selected backend and runs
// the first refresh. The caller must Close the session.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}
	svc, err := backend.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open backend: %w", err)
	}
	return &session{
		cfg: cfg,
		svc: svc,
		mgr: manager.New(ctx, svc),
	}, nil
}

func (s *session) Close() error {
	return s.svc.Close()
}

// records returns the loaded list, or an error when the refresh failed.
func (s *session) records() ([]types.Vendor, error) {
	if msg := s.mgr.FetchError(); msg != "" {
		return nil, fmt.Errorf("fetch vendors: %s", msg)
	}
	return s.mgr.Records(), nil
}

// reportAlert prints the alert a mutation left behind.
func (s *session) reportAlert(cmd *cobra.Command) {
	if a := s.mgr.Alert(); a != nil && a.Kind == manager.AlertSuccess {
		fmt.Fprintln(cmd.OutOrStdout(), a.Message)
	}
}

// exactArgs is cobra.ExactArgs with the failure classified as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		return nil
	}
}
