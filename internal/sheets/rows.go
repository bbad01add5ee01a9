package sheets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/vendors/pkg/types"
)

// tableRow is a parsed vendor together with its one-based sheet row.
type tableRow struct {
	vendor types.Vendor
	row    int
}

// parseRows maps the raw value grid into vendors. Row 1 is the header and
// names the field of every column, so reordered columns still map
// correctly; a misspelled header leaves its field at the zero value.
// Blank rows are skipped but still counted for row numbering.
func parseRows(values [][]any) []tableRow {
	if len(values) < 2 {
		return nil
	}

	header := make([]string, len(values[0]))
	for i, cell := range values[0] {
		header[i] = strings.TrimSpace(cellString(cell))
	}

	var out []tableRow
	for i, row := range values[1:] {
		if isBlank(row) {
			continue
		}
		fields := make(map[string]string, len(header))
		for j, name := range header {
			// The API omits trailing empty cells.
			if j < len(row) {
				fields[name] = cellString(row[j])
			}
		}
		out = append(out, tableRow{vendor: fromFields(fields), row: i + 2})
	}
	return out
}

func fromFields(fields map[string]string) types.Vendor {
	return types.Vendor{
		CompanyName:     fields["CompanyName"],
		BusinessType:    fields["BusinessType"],
		Products:        fields["Products"],
		YearsInBusiness: parseYears(fields["YearsInBusiness"]),
		OnboardingDate:  fields["OnboardingDate"],
		AdditionalInfo:  fields["AdditionalInfo"],
	}
}

// parseYears reads a whole number of years, truncating decimals. Anything
// unparseable is 0.
func parseYears(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// toRow renders v in the fixed column order.
func toRow(v types.Vendor) []any {
	return []any{
		v.CompanyName,
		v.BusinessType,
		v.Products,
		v.YearsInBusiness,
		v.OnboardingDate,
		v.AdditionalInfo,
	}
}

func headerRow() []any {
	row := make([]any, len(Columns))
	for i, c := range Columns {
		row[i] = c
	}
	return row
}

// blankRow clears all six cells of a row when written.
func blankRow() []any {
	row := make([]any, len(Columns))
	for i := range row {
		row[i] = ""
	}
	return row
}

func cellString(cell any) string {
	switch c := cell.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return fmt.Sprint(c)
	}
}

func isBlank(row []any) bool {
	for _, cell := range row {
		if strings.TrimSpace(cellString(cell)) != "" {
			return false
		}
	}
	return true
}
