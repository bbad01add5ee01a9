package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/vendors/internal/paths"
)

// configFile holds the keys init writes to config.yaml. Unset keys are
// omitted so .env values and defaults still apply.
type configFile struct {
	CredentialType string `yaml:"credential_type,omitempty"`
	SpreadsheetID  string `yaml:"spreadsheet_id,omitempty"`
	SheetName      string `yaml:"sheet_name,omitempty"`
	DataDir        string `yaml:"data_dir,omitempty"`
}

type initFlags struct {
	spreadsheetID  string
	sheetName      string
	credentialType string
	force          bool
}

func newInitCmd() *cobra.Command {
	var f initFlags
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and storage",
		Long: `Init writes config.yaml to the configuration directory, then opens the
selected backend once. On the local store this seeds the sample vendors.

The credential itself is never written; supply it through .env
(GOOGLE_SHEETS_API_KEY) or VENDORS_CREDENTIAL.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, &f)
		},
	}
	cmd.Flags().StringVar(&f.spreadsheetID, "spreadsheet-id", "", "spreadsheet to use as the backend")
	cmd.Flags().StringVar(&f.sheetName, "sheet-name", "", "sheet (tab) name within the spreadsheet")
	cmd.Flags().StringVar(&f.credentialType, "credential-type", "", "credential kind: api_key or token")
	cmd.Flags().BoolVar(&f.force, "force", false, "overwrite an existing config.yaml")
	return cmd
}

func runInit(cmd *cobra.Command, f *initFlags) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	cfg := configFile{
		CredentialType: f.credentialType,
		SpreadsheetID:  f.spreadsheetID,
		SheetName:      f.sheetName,
		DataDir:        flags.dataDir,
	}
	configPath := filepath.Join(configDir, configFileExt)
	written, err := writeConfig(configPath, cfg, f.force)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	vendors, err := s.records()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if written {
		fmt.Fprintf(out, "Wrote %s\n", configPath)
	}
	fmt.Fprintf(out, "Initialized %s backend with %d vendor(s)\n", s.svc.Kind(), len(vendors))
	return nil
}

// writeConfig writes cfg to path unless the file exists and force is
// false. It reports whether the file was written.
func writeConfig(path string, cfg configFile, force bool) (bool, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return false, nil
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
