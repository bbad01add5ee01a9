package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/vendors/pkg/backend"
	"github.com/mesh-intelligence/vendors/pkg/types"
)

func newBackendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backend",
		Short: "Show which backend the configuration selects",
		Long: `Backend resolves the configuration and reports whether records would be
kept in the spreadsheet or in the local store. It does not connect.`,
		Args: exactArgs(0),
		RunE: runBackend,
	}
}

type backendInfo struct {
	Backend types.BackendKind `json:"backend"`
	Sheet   string            `json:"sheet,omitempty"`
	DataDir string            `json:"data_dir,omitempty"`
}

func runBackend(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	info := backendInfo{Backend: backend.Select(cfg)}
	if info.Backend == types.BackendSheets {
		info.Sheet = cfg.Sheet()
	} else {
		info.DataDir = cfg.DataDir
	}

	if flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), info)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "backend: %s\n", info.Backend)
	if info.Sheet != "" {
		fmt.Fprintf(out, "sheet: %s\n", info.Sheet)
	}
	if info.DataDir != "" {
		fmt.Fprintf(out, "data dir: %s\n", info.DataDir)
	}
	return nil
}
