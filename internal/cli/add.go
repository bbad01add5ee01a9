package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/vendors/pkg/types"
)

func newAddCmd() *cobra.Command {
	var f formFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a vendor",
		Long: `Add validates the vendor the way the edit form does and appends it to
the selected backend. The list is refetched afterwards.

Example:
  vendors add --name "Acme2" --type Retailer --products Electronics --years 3 --date 2025-01-01`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, &f)
		},
	}
	f.register(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, f *formFlags) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	existing, err := s.records()
	if err != nil {
		return err
	}

	form := newForm(time.Now())
	f.apply(cmd, &form)
	if err := types.ValidateForm(form, existing, ""); err != nil {
		return err
	}

	v := form.ToVendor()
	if err := s.mgr.Add(cmd.Context(), v); err != nil {
		return err
	}
	if flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), v)
	}
	s.reportAlert(cmd)
	return nil
}
