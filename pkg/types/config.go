package types

import (
	"errors"
	"strings"
	"time"
)

// BackendKind names a VendorService implementation.
type BackendKind string

// Supported backends.
const (
	BackendSheets BackendKind = "sheets"
	BackendLocal  BackendKind = "local"
)

// Credential kinds accepted for the spreadsheet backend.
const (
	CredentialAPIKey = "api_key"
	CredentialToken  = "token"
)

// DefaultSheetName is used when Config.SheetName is empty.
const DefaultSheetName = "Sheet1"

// Default simulated latencies for the local backend.
const (
	DefaultFetchDelay    = 300 * time.Millisecond
	DefaultMutationDelay = 500 * time.Millisecond
)

// Config holds the explicit inputs to backend selection. The spreadsheet
// backend is chosen only when both Credential and SpreadsheetID are set.
type Config struct {
	Credential     string `json:"credential" yaml:"credential"`
	CredentialType string `json:"credential_type" yaml:"credential_type"`
	SpreadsheetID  string `json:"spreadsheet_id" yaml:"spreadsheet_id"`
	SheetName      string `json:"sheet_name" yaml:"sheet_name"`
	Endpoint       string `json:"endpoint" yaml:"endpoint"`

	DataDir       string        `json:"data_dir" yaml:"data_dir"`
	FetchDelay    time.Duration `json:"fetch_delay" yaml:"fetch_delay"`
	MutationDelay time.Duration `json:"mutation_delay" yaml:"mutation_delay"`
}

// Config validation errors.
var (
	ErrCredentialTypeUnknown = errors.New("unknown credential type")
	ErrDelayNegative         = errors.New("delay must not be negative")
)

// HasRemote reports whether the remote credential and collection
// identifier are both present.
func (c Config) HasRemote() bool {
	return strings.TrimSpace(c.Credential) != "" && strings.TrimSpace(c.SpreadsheetID) != ""
}

// Sheet returns the configured sheet name or DefaultSheetName.
func (c Config) Sheet() string {
	if s := strings.TrimSpace(c.SheetName); s != "" {
		return s
	}
	return DefaultSheetName
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	switch c.CredentialType {
	case "", CredentialAPIKey, CredentialToken:
	default:
		return ErrCredentialTypeUnknown
	}
	if c.FetchDelay < 0 || c.MutationDelay < 0 {
		return ErrDelayNegative
	}
	return nil
}
