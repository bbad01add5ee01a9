package types

import (
	"context"
	"errors"
)

// VendorService provides uniform CRUD operations over the vendor list.
// Both the spreadsheet and the local backend implement it identically.
// Keys are matched exactly; uniqueness is not enforced here.
type VendorService interface {
	// FetchAll returns every stored vendor in storage order.
	FetchAll(ctx context.Context) Result[[]Vendor]

	// Add stores a new vendor and returns it.
	Add(ctx context.Context, v Vendor) Result[Vendor]

	// Update replaces the vendor whose CompanyName equals originalName.
	// Fails with a not-found message when no such vendor exists.
	Update(ctx context.Context, originalName string, v Vendor) Result[Vendor]

	// Delete removes the vendor whose CompanyName equals name.
	// Fails with a not-found message when no such vendor exists.
	Delete(ctx context.Context, name string) Result[struct{}]
}

// Operation errors.
var (
	ErrNotFound    = errors.New("vendor not found")
	ErrInvalidName = errors.New("company name must not be empty")
	ErrInvalidData = errors.New("invalid vendor data")
)
