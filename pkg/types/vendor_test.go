package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToForm_SplitsProducts(t *testing.T) {
	v := Vendor{
		CompanyName:     "Acme Electronics",
		BusinessType:    BusinessManufacturer,
		Products:        "Electronics, Software",
		YearsInBusiness: 12,
		OnboardingDate:  "2024-03-15",
		AdditionalInfo:  "Preferred supplier",
	}

	f := ToForm(v)
	assert.Equal(t, "Acme Electronics", f.CompanyName)
	assert.Equal(t, []string{"Electronics", "Software"}, f.Products)
	assert.Equal(t, 12, f.YearsInBusiness)
}

func TestToForm_DropsEmptySegments(t *testing.T) {
	tests := []struct {
		products string
		want     []string
	}{
		{"", nil},
		{", ", nil},
		{"Electronics, , Software", []string{"Electronics", "Software"}},
		{"Electronics,Software,", []string{"Electronics", "Software"}},
		{"Food & Beverage", []string{"Food & Beverage"}},
	}
	for _, tt := range tests {
		t.Run(tt.products, func(t *testing.T) {
			assert.Equal(t, tt.want, ToForm(Vendor{Products: tt.products}).Products)
		})
	}
}

func TestToVendor_TrimsAndJoins(t *testing.T) {
	f := VendorForm{
		CompanyName:     "  Globex  ",
		BusinessType:    BusinessRetailer,
		Products:        []string{"Clothing", "Furniture"},
		YearsInBusiness: 4,
		OnboardingDate:  "2025-01-01",
		AdditionalInfo:  "\tnotes \n",
	}

	v := f.ToVendor()
	assert.Equal(t, "Globex", v.CompanyName)
	assert.Equal(t, "Clothing, Furniture", v.Products)
	assert.Equal(t, "notes", v.AdditionalInfo)
}

func TestVendorRoundTrip(t *testing.T) {
	records := []Vendor{
		{"Acme Electronics", BusinessManufacturer, "Electronics, Software", 12, "2024-03-15", "Preferred supplier"},
		{"Initech", BusinessServiceProvider, "Software", 0, "2023-11-01", ""},
		{"Umbrella Foods", BusinessWholesaler, "Food & Beverage, Office Supplies, Furniture", 50, "2020-06-30", "Net 30"},
		{"Empty Products", BusinessDistributor, "", 7, "2022-02-02", "none"},
	}
	for _, v := range records {
		t.Run(v.CompanyName, func(t *testing.T) {
			assert.Equal(t, v, ToForm(v).ToVendor())
		})
	}
}

func TestFormRoundTrip_TrimsWhitespace(t *testing.T) {
	f := VendorForm{
		CompanyName:     " Hooli ",
		BusinessType:    BusinessDistributor,
		Products:        []string{"Electronics"},
		YearsInBusiness: 3,
		OnboardingDate:  "2025-05-05",
		AdditionalInfo:  " x ",
	}
	got := ToForm(f.ToVendor())
	assert.Equal(t, "Hooli", got.CompanyName)
	assert.Equal(t, "x", got.AdditionalInfo)
	assert.Equal(t, f.Products, got.Products)
}
