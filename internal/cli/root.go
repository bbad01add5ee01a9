// Package cli implements the vendors command-line interface, a thin
// consumer of the manager: it loads configuration, validates input the
// way an edit form would, and prints the resulting state.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/vendors/internal/manager"
	"github.com/mesh-intelligence/vendors/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	envFile   string
	jsonMode  bool
	verbose   bool
}

var flags rootFlags

// NewRootCmd creates the top-level "vendors" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vendors",
		Short: "Manage vendor records in a spreadsheet or a local store",
		Long: "vendors lists, adds, updates and deletes vendor records.\n" +
			"Records live in a Google Sheets spreadsheet when a credential and\n" +
			"spreadsheet ID are configured, and in a local store otherwise.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "local store directory (default: .vendors-db)")
	root.PersistentFlags().StringVar(&flags.envFile, "env-file", "", ".env file with GOOGLE_SHEETS_API_KEY, GOOGLE_SHEET_ID, GOOGLE_SHEET_NAME")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log backend activity to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newBackendCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newUpdateCmd())
	root.AddCommand(newDeleteCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit code: input problems are
// user errors, everything else is a system error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrInvalidData),
		errors.Is(err, types.ErrInvalidName),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, manager.ErrBusy),
		errors.Is(err, errUsage):
		return exitUserError
	default:
		return exitSysError
	}
}

func printError(w io.Writer, err error) {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(w, "Error: invalid vendor")
		for _, f := range verr.Fields {
			fmt.Fprintf(w, "  %s: %s\n", f.Field, f.Message)
		}
		return
	}
	fmt.Fprintln(w, "Error:", err)
}
