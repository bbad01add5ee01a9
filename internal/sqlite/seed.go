package sqlite

import "github.com/mesh-intelligence/vendors/pkg/types"

// sampleVendors is written to an empty or unreadable store on first read.
var sampleVendors = []types.Vendor{
	{
		CompanyName:     "Acme Electronics",
		BusinessType:    types.BusinessManufacturer,
		Products:        "Electronics, Industrial Equipment",
		YearsInBusiness: 15,
		OnboardingDate:  "2023-01-15",
		AdditionalInfo:  "Primary supplier for circuit boards.",
	},
	{
		CompanyName:     "Global Textiles",
		BusinessType:    types.BusinessDistributor,
		Products:        "Clothing",
		YearsInBusiness: 8,
		OnboardingDate:  "2023-04-02",
		AdditionalInfo:  "Ships from two regional warehouses.",
	},
	{
		CompanyName:     "Fresh Foods Co",
		BusinessType:    types.BusinessWholesaler,
		Products:        "Food & Beverage",
		YearsInBusiness: 22,
		OnboardingDate:  "2022-09-20",
		AdditionalInfo:  "",
	},
	{
		CompanyName:     "Comfort Living",
		BusinessType:    types.BusinessRetailer,
		Products:        "Furniture, Office Supplies",
		YearsInBusiness: 5,
		OnboardingDate:  "2024-02-11",
		AdditionalInfo:  "Seasonal catalog every quarter.",
	},
	{
		CompanyName:     "ByteWorks",
		BusinessType:    types.BusinessServiceProvider,
		Products:        "Software",
		YearsInBusiness: 3,
		OnboardingDate:  "2024-07-30",
		AdditionalInfo:  "Annual license renewal in July.",
	},
}

// seedVendors returns a fresh copy of the sample vendors.
func seedVendors() []types.Vendor {
	out := make([]types.Vendor, len(sampleVendors))
	copy(out, sampleVendors)
	return out
}
