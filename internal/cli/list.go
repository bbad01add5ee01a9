package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/vendors/pkg/types"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all vendors",
		Long: `List fetches every vendor from the selected backend and prints them
in backend order.

Example:
  vendors list
  vendors list --json`,
		Args: exactArgs(0),
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	vendors, err := s.records()
	if err != nil {
		return err
	}

	if flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), vendors)
	}
	printVendorTable(cmd.OutOrStdout(), vendors)
	return nil
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}

// printVendorTable prints vendors in a human-readable table format.
func printVendorTable(out io.Writer, vendors []types.Vendor) {
	if len(vendors) == 0 {
		fmt.Fprintln(out, "No vendors found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "COMPANY\tTYPE\tPRODUCTS\tYEARS\tONBOARDED")
	fmt.Fprintln(w, "-------\t----\t--------\t-----\t---------")
	for _, v := range vendors {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			truncate(v.CompanyName, 40),
			v.BusinessType,
			truncate(v.Products, 48),
			v.YearsInBusiness,
			v.OnboardingDate,
		)
	}
	w.Flush()

	for _, line := range strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n") {
		fmt.Fprintln(out, strings.TrimRight(line, " "))
	}
	fmt.Fprintf(out, "Total: %d vendor(s)\n", len(vendors))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
