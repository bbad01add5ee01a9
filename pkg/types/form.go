package types

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the ISO calendar date format used for OnboardingDate.
const DateLayout = "2006-01-02"

// FieldError describes one invalid form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every field problem found by ValidateForm.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid vendor: " + strings.Join(parts, "; ")
}

// Unwrap lets callers match ErrInvalidData with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidData
}

// ValidateForm checks a form before it is submitted. existing is the
// current record list; originalName is the key of the record being edited,
// or empty when adding. Company names must be unique ignoring case.
// Returns nil or a *ValidationError.
func ValidateForm(f VendorForm, existing []Vendor, originalName string) error {
	var errs []FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	name := strings.TrimSpace(f.CompanyName)
	if name == "" {
		add("CompanyName", "is required")
	} else {
		for _, v := range existing {
			if v.CompanyName == originalName && originalName != "" {
				continue
			}
			if strings.EqualFold(strings.TrimSpace(v.CompanyName), name) {
				add("CompanyName", "%q already exists", name)
				break
			}
		}
	}

	switch {
	case f.BusinessType == "":
		add("BusinessType", "is required")
	case !IsBusinessType(f.BusinessType):
		add("BusinessType", "unknown business type %q", f.BusinessType)
	}

	if len(f.Products) == 0 {
		add("Products", "select at least one product")
	}
	if len(f.Products) > MaxProducts {
		add("Products", "select at most %d products", MaxProducts)
	}
	seen := make(map[string]bool, len(f.Products))
	for _, p := range f.Products {
		if !IsProduct(p) {
			add("Products", "unknown product %q", p)
		}
		if seen[p] {
			add("Products", "duplicate product %q", p)
		}
		seen[p] = true
	}

	if f.YearsInBusiness < MinYearsInBusiness || f.YearsInBusiness > MaxYearsInBusiness {
		add("YearsInBusiness", "must be between %d and %d", MinYearsInBusiness, MaxYearsInBusiness)
	}

	if f.OnboardingDate == "" {
		add("OnboardingDate", "is required")
	} else if _, err := time.Parse(DateLayout, f.OnboardingDate); err != nil {
		add("OnboardingDate", "must be a date in YYYY-MM-DD form")
	}

	if utf8.RuneCountInString(strings.TrimSpace(f.AdditionalInfo)) > MaxAdditionalInfo {
		add("AdditionalInfo", "must be at most %d characters", MaxAdditionalInfo)
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
