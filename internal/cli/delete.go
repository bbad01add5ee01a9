package cli

import (
	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <company-name>",
		Short: "Delete a vendor",
		Long: `Delete removes the vendor named <company-name> from the selected backend.
On a spreadsheet the whole table is rewritten.

Example:
  vendors delete "Global Textiles"`,
		Args: exactArgs(1),
		RunE: runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.mgr.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	s.reportAlert(cmd)
	return nil
}
