package types

import (
	"errors"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty config is valid",
			config:  Config{},
			wantErr: nil,
		},
		{
			name:    "token credential is valid",
			config:  Config{Credential: "tok", CredentialType: CredentialToken, SpreadsheetID: "sheet"},
			wantErr: nil,
		},
		{
			name:    "unknown credential type returns ErrCredentialTypeUnknown",
			config:  Config{CredentialType: "password"},
			wantErr: ErrCredentialTypeUnknown,
		},
		{
			name:    "negative fetch delay returns ErrDelayNegative",
			config:  Config{FetchDelay: -time.Second},
			wantErr: ErrDelayNegative,
		},
		{
			name:    "negative mutation delay returns ErrDelayNegative",
			config:  Config{MutationDelay: -time.Millisecond},
			wantErr: ErrDelayNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigHasRemote(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   bool
	}{
		{"both present", Config{Credential: "key", SpreadsheetID: "id"}, true},
		{"missing credential", Config{SpreadsheetID: "id"}, false},
		{"missing spreadsheet", Config{Credential: "key"}, false},
		{"blank values", Config{Credential: "  ", SpreadsheetID: "\t"}, false},
		{"neither", Config{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.HasRemote(); got != tt.want {
				t.Errorf("HasRemote() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigSheet(t *testing.T) {
	if got := (Config{}).Sheet(); got != DefaultSheetName {
		t.Errorf("Sheet() = %q, want %q", got, DefaultSheetName)
	}
	if got := (Config{SheetName: " Vendors "}).Sheet(); got != "Vendors" {
		t.Errorf("Sheet() = %q, want %q", got, "Vendors")
	}
}
