package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/vendors/pkg/types"
)

func newUpdateCmd() *cobra.Command {
	var f formFlags
	cmd := &cobra.Command{
		Use:   "update <company-name>",
		Short: "Update a vendor",
		Long: `Update edits the vendor currently named <company-name>. Only the flags
given are changed; passing --name renames the vendor.

Example:
  vendors update "Acme Electronics" --name "Acme Corp"
  vendors update "Acme Corp" --products Electronics,Software --years 16`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, args[0], &f)
		},
	}
	f.register(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, originalName string, f *formFlags) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	existing, err := s.records()
	if err != nil {
		return err
	}

	var current *types.Vendor
	for i := range existing {
		if existing[i].CompanyName == originalName {
			current = &existing[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("%w: %q", types.ErrNotFound, originalName)
	}

	form := types.ToForm(*current)
	if f.apply(cmd, &form) == 0 {
		return fmt.Errorf("%w: nothing to update, pass at least one field flag", errUsage)
	}
	if err := types.ValidateForm(form, existing, originalName); err != nil {
		return err
	}

	v := form.ToVendor()
	if err := s.mgr.Update(cmd.Context(), originalName, v); err != nil {
		return err
	}
	if flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), v)
	}
	s.reportAlert(cmd)
	return nil
}
