// Package types defines the vendor record model, the backend-agnostic
// VendorService contract, the Result envelope, configuration, and the
// standard errors shared by every backend.
package types
