package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/juju/loggo"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/vendors/internal/paths"
	"github.com/mesh-intelligence/vendors/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "VENDORS"

	cfgKeyCredential     = "credential"
	cfgKeyCredentialType = "credential_type"
	cfgKeySpreadsheetID  = "spreadsheet_id"
	cfgKeySheetName      = "sheet_name"
	cfgKeyEndpoint       = "endpoint"
	cfgKeyDataDir        = "data_dir"
	cfgKeyFetchDelay     = "fetch_delay"
	cfgKeyMutationDelay  = "mutation_delay"
	cfgKeyLogLevel       = "log_level"

	defaultLogLevel = "<root>=WARNING"
	verboseLogLevel = "<root>=DEBUG"
)

// dotenvKeys maps the variables read from a .env file to config keys.
var dotenvKeys = map[string]string{
	"GOOGLE_SHEETS_API_KEY": cfgKeyCredential,
	"GOOGLE_SHEET_ID":       cfgKeySpreadsheetID,
	"GOOGLE_SHEET_NAME":     cfgKeySheetName,
}

// defaultConfigYAML is written to config.yaml on first run. Every key is
// commented out so values from .env and the environment stay visible.
const defaultConfigYAML = `# vendors CLI configuration

# Spreadsheet backend. Used only when both credential and spreadsheet_id
# are set; otherwise records are kept in the local store.
# credential:
# credential_type: api_key   # or "token" for an OAuth access token
# spreadsheet_id:
# sheet_name: Sheet1

# Local store directory (optional; overridable by --data-dir)
# data_dir:
# fetch_delay: 300ms
# mutation_delay: 500ms

# log_level: <root>=WARNING
`

// loadConfig reads config.yaml from configDir with Viper. Values from
// envFile (when non-empty) are the lowest-priority defaults; VENDORS_*
// environment variables override the file. A missing config.yaml is
// created with defaults.
func loadConfig(configDir, envFile string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyCredentialType, types.CredentialAPIKey)
	v.SetDefault(cfgKeySheetName, types.DefaultSheetName)
	v.SetDefault(cfgKeyFetchDelay, types.DefaultFetchDelay)
	v.SetDefault(cfgKeyMutationDelay, types.DefaultMutationDelay)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)

	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("read env file: %w", err)
		}
		for name, key := range dotenvKeys {
			if val := strings.TrimSpace(values[name]); val != "" {
				v.SetDefault(key, val)
			}
		}
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates config.yaml if it does not exist.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// resolveConfig turns flags, config file, .env and environment into the
// explicit Config handed to backend selection, and applies the log level.
func resolveConfig() (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}
	envFile, err := paths.ResolveEnvFile(flags.envFile, configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve env file: %w", err)
	}

	v, err := loadConfig(configDir, envFile)
	if err != nil {
		return types.Config{}, err
	}

	level := v.GetString(cfgKeyLogLevel)
	if flags.verbose {
		level = verboseLogLevel
	}
	if err := loggo.ConfigureLoggers(level); err != nil {
		return types.Config{}, fmt.Errorf("configure logging: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Credential:     v.GetString(cfgKeyCredential),
		CredentialType: v.GetString(cfgKeyCredentialType),
		SpreadsheetID:  v.GetString(cfgKeySpreadsheetID),
		SheetName:      v.GetString(cfgKeySheetName),
		Endpoint:       v.GetString(cfgKeyEndpoint),
		DataDir:        dataDir,
		FetchDelay:     v.GetDuration(cfgKeyFetchDelay),
		MutationDelay:  v.GetDuration(cfgKeyMutationDelay),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
