package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/vendors/pkg/types"
)

// formFlags are the vendor fields shared by add and update.
type formFlags struct {
	name     string
	kind     string
	products []string
	years    int
	date     string
	notes    string
}

func (f *formFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "company name (unique, case-insensitive)")
	cmd.Flags().StringVar(&f.kind, "type", "", "business type ("+strings.Join(types.BusinessTypes, ", ")+")")
	cmd.Flags().StringSliceVar(&f.products, "products", nil, "products offered, comma-separated (1 to 5)")
	cmd.Flags().IntVar(&f.years, "years", 0, "years in business (0 to 50)")
	cmd.Flags().StringVar(&f.date, "date", "", "onboarding date, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&f.notes, "notes", "", "additional information (at most 500 characters)")
}

// apply copies every flag the user set onto form.
func (f *formFlags) apply(cmd *cobra.Command, form *types.VendorForm) int {
	changed := 0
	set := func(name string, fn func()) {
		if cmd.Flags().Changed(name) {
			fn()
			changed++
		}
	}
	set("name", func() { form.CompanyName = f.name })
	set("type", func() { form.BusinessType = f.kind })
	set("products", func() { form.Products = trimAll(f.products) })
	set("years", func() { form.YearsInBusiness = f.years })
	set("date", func() { form.OnboardingDate = f.date })
	set("notes", func() { form.AdditionalInfo = f.notes })
	return changed
}

// newForm returns the blank add form: no type, no products, today's date.
func newForm(now time.Time) types.VendorForm {
	return types.VendorForm{OnboardingDate: now.Format(types.DateLayout)}
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
