package sheets

import (
	"fmt"
	"strings"
	"unicode"
)

// Columns is the fixed write order of the six vendor columns. Writes are
// positional and always use this order; reads map cells by header name.
var Columns = []string{
	"CompanyName",
	"BusinessType",
	"Products",
	"YearsInBusiness",
	"OnboardingDate",
	"AdditionalInfo",
}

// lastColumn is the A1 letter of the sixth column.
const lastColumn = "F"

// quoteSheet returns the sheet name in A1 notation, quoted when it holds
// anything other than letters, digits and underscores.
func quoteSheet(name string) string {
	plain := name != ""
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			plain = false
			break
		}
	}
	if plain {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// fullRange covers every row of the six vendor columns.
func fullRange(sheet string) string {
	return fmt.Sprintf("%s!A:%s", quoteSheet(sheet), lastColumn)
}

// rowRange covers a single one-based row.
func rowRange(sheet string, row int) string {
	return fmt.Sprintf("%s!A%d:%s%d", quoteSheet(sheet), row, lastColumn, row)
}

// tableRange covers rows 1..rows, header included.
func tableRange(sheet string, rows int) string {
	return fmt.Sprintf("%s!A1:%s%d", quoteSheet(sheet), lastColumn, rows)
}
