package types

import (
	"slices"
	"strings"
)

// ProductSeparator joins the product list in the storage form.
const ProductSeparator = ", "

// Business types a vendor may declare.
const (
	BusinessManufacturer    = "Manufacturer"
	BusinessDistributor     = "Distributor"
	BusinessRetailer        = "Retailer"
	BusinessWholesaler      = "Wholesaler"
	BusinessServiceProvider = "Service Provider"
)

// BusinessTypes lists the business types in display order.
var BusinessTypes = []string{
	BusinessManufacturer,
	BusinessDistributor,
	BusinessRetailer,
	BusinessWholesaler,
	BusinessServiceProvider,
}

// Products lists the product categories a vendor may offer, in display order.
var Products = []string{
	"Electronics",
	"Clothing",
	"Food & Beverage",
	"Furniture",
	"Software",
	"Office Supplies",
	"Industrial Equipment",
}

// Field limits checked by ValidateForm.
const (
	MaxProducts        = 5
	MinYearsInBusiness = 0
	MaxYearsInBusiness = 50
	MaxAdditionalInfo  = 500
)

// Vendor is the storage form of a vendor record. Every field is scalar;
// Products holds the selected products joined with ProductSeparator.
// CompanyName is the identity key.
type Vendor struct {
	CompanyName     string `json:"CompanyName"`
	BusinessType    string `json:"BusinessType"`
	Products        string `json:"Products"`
	YearsInBusiness int    `json:"YearsInBusiness"`
	OnboardingDate  string `json:"OnboardingDate"`
	AdditionalInfo  string `json:"AdditionalInfo"`
}

// VendorForm is the edit form of a vendor record. Products is an ordered
// list and BusinessType may be empty while unset.
type VendorForm struct {
	CompanyName     string
	BusinessType    string
	Products        []string
	YearsInBusiness int
	OnboardingDate  string
	AdditionalInfo  string
}

// ProductList splits the stored product string into its segments,
// dropping empty ones.
func (v Vendor) ProductList() []string {
	var out []string
	for _, p := range strings.Split(v.Products, strings.TrimSpace(ProductSeparator)) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ToForm converts a stored vendor into its edit form.
func ToForm(v Vendor) VendorForm {
	return VendorForm{
		CompanyName:     v.CompanyName,
		BusinessType:    v.BusinessType,
		Products:        v.ProductList(),
		YearsInBusiness: v.YearsInBusiness,
		OnboardingDate:  v.OnboardingDate,
		AdditionalInfo:  v.AdditionalInfo,
	}
}

// ToVendor converts the edit form into the storage form. The company name
// and notes are trimmed; products are joined in order.
func (f VendorForm) ToVendor() Vendor {
	return Vendor{
		CompanyName:     strings.TrimSpace(f.CompanyName),
		BusinessType:    f.BusinessType,
		Products:        strings.Join(f.Products, ProductSeparator),
		YearsInBusiness: f.YearsInBusiness,
		OnboardingDate:  f.OnboardingDate,
		AdditionalInfo:  strings.TrimSpace(f.AdditionalInfo),
	}
}

// IsBusinessType reports whether s is one of BusinessTypes.
func IsBusinessType(s string) bool {
	return slices.Contains(BusinessTypes, s)
}

// IsProduct reports whether s is one of Products.
func IsProduct(s string) bool {
	return slices.Contains(Products, s)
}
