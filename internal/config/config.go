// =============================================================================
// Bolle Export - Configuration Module
// =============================================================================
//
// This module loads and manages configuration. There are two layers:
//
//   1. Main Config (config.yaml): global application settings: directories,
//      output naming, output encoding, logging.
//   2. Export Profiles (profiles/*.yaml): per-recipient constants written
//      into header records (supplier code, recipient code, currency,
//      protocol tag) plus normalization options and the output format
//      (fixed-width records or delimited lines).
//
// New recipients are added by dropping a profile file into the profiles
// directory; no code changes are needed.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/bolle-export/internal/delimited"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// OutputDir is the directory where generated export files are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir is the directory where processed input files are
	// moved after successful conversion.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// ProfilesDir is the directory containing export profile files.
	// Default: "./profiles"
	ProfilesDir string `yaml:"profiles_dir"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputNameFormat defines the output file name. Placeholders:
	//   {base}      - OutputBaseName
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	// Default: "{base}_{timestamp}.txt"
	OutputNameFormat string `yaml:"output_name_format"`

	// OutputBaseName is the base file name for exports.
	// Default: "bolle_export"
	OutputBaseName string `yaml:"output_base_name"`

	// Encoding is the character encoding of the output bytes.
	// Valid values: "utf-8", "iso-8859-1", "windows-1252"
	// Default: "utf-8"
	Encoding string `yaml:"encoding"`

	// ArchiveOnSuccess moves the input file to InputArchiveDir after a
	// successful conversion. Defaults to true; set to false to disable.
	ArchiveOnSuccess *bool `yaml:"archive_on_success"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// ShouldArchive reports whether successful conversions archive their input.
func (c *MainConfig) ShouldArchive() bool {
	return c.ArchiveOnSuccess == nil || *c.ArchiveOnSuccess
}

// =============================================================================
// EXPORT PROFILE STRUCTURE
// =============================================================================

// ExportProfile holds the per-recipient constants and options for one
// interchange counterparty.
type ExportProfile struct {
	// ProfileName is the human-readable name of the profile, used in logs
	// and to select a profile on the command line.
	ProfileName string `yaml:"profile_name"`

	// SupplierCode identifies the issuing party in header records.
	SupplierCode string `yaml:"supplier_code"`

	// RecipientCode identifies the receiving party in header records.
	RecipientCode string `yaml:"recipient_code"`

	// Currency is the 3-letter currency code.
	// Default: "EUR"
	Currency string `yaml:"currency"`

	// ProtocolTag is the fixed interchange protocol tag.
	// Default: "DSV"
	ProtocolTag string `yaml:"protocol_tag"`

	// DescriptionCleanMode selects description cleaning ahead of encoding.
	// Valid values: "none", "base", "aggressive"
	// Default: "none"
	DescriptionCleanMode string `yaml:"description_clean_mode"`

	// OutputFormat selects the export variant.
	// Valid values: "fixed" (128-character records), "delimited" (free-form
	// name/pieces/weight lines)
	// Default: "fixed"
	OutputFormat string `yaml:"output_format"`

	// NameToPiecesSpaces is the delimited-format spacing between the product
	// name and the piece count. Zero is a valid value.
	// Default: 1
	NameToPiecesSpaces *int `yaml:"name_to_pieces_spaces"`

	// PiecesToWeightSpaces is the delimited-format spacing between the piece
	// count and the weight. Zero is a valid value.
	// Default: 26
	PiecesToWeightSpaces *int `yaml:"pieces_to_weight_spaces"`

	// WeightDecimals is the delimited-format decimal count for the weight.
	// Default: 3
	WeightDecimals *int `yaml:"weight_decimals"`

	// WeightDecimalSeparator is the delimited-format decimal separator.
	// Valid values: ".", ","
	// Default: "."
	WeightDecimalSeparator string `yaml:"weight_decimal_separator"`
}

// DelimitedOptions resolves the delimited-format layout for the profile,
// falling back to the package defaults for unset fields.
func (p *ExportProfile) DelimitedOptions() delimited.Options {
	opts := delimited.DefaultOptions()
	if p.NameToPiecesSpaces != nil {
		opts.NameToPiecesSpaces = *p.NameToPiecesSpaces
	}
	if p.PiecesToWeightSpaces != nil {
		opts.PiecesToWeightSpaces = *p.PiecesToWeightSpaces
	}
	if p.WeightDecimals != nil {
		opts.WeightDecimals = *p.WeightDecimals
	}
	if p.WeightDecimalSeparator != "" {
		opts.DecimalSeparator = p.WeightDecimalSeparator
	}
	return opts
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// LoadMainConfig loads the main configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the main configuration file. A missing file
//     is not an error: the defaults apply, so the tool works out of the box.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - An error if the file exists but cannot be read or parsed.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	var config MainConfig

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// Fall through to defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyMainConfigDefaults(&config)

	if err := ensureDirectories(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadMainConfigStrict is like LoadMainConfig but treats a missing file as
// an error. Used when the user named the config file explicitly, where a
// silent fallback to defaults would hide a typo in the path.
func LoadMainConfigStrict(configPath string) (*MainConfig, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}
	return LoadMainConfig(configPath)
}

// applyMainConfigDefaults sets default values for any unset options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.InputArchiveDir == "" {
		config.InputArchiveDir = "./input_archive"
	}
	if config.ProfilesDir == "" {
		config.ProfilesDir = "./profiles"
	}
	if config.OutputNameFormat == "" {
		config.OutputNameFormat = "{base}_{timestamp}.txt"
	}
	if config.OutputBaseName == "" {
		config.OutputBaseName = "bolle_export"
	}
	if config.Encoding == "" {
		config.Encoding = "utf-8"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}

// ensureDirectories creates the configured directories if they don't exist.
func ensureDirectories(config *MainConfig) error {
	for _, dir := range []string{config.OutputDir, config.InputArchiveDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// =============================================================================
// PROFILE LOADING
// =============================================================================

// LoadProfiles loads all export profiles from a directory.
//
// PARAMETERS:
//   - profilesDir: The directory containing profile YAML files.
//
// RETURNS:
//   - A map of profiles keyed by profile name (file name when unset).
//   - An error if the directory cannot be listed or a file cannot be parsed.
//
// An empty or missing directory yields one default profile named "default",
// so a bare installation can still convert files.
func LoadProfiles(profilesDir string) (map[string]*ExportProfile, error) {
	profiles := make(map[string]*ExportProfile)

	files, err := filepath.Glob(filepath.Join(profilesDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list profile files: %w", err)
	}
	ymlFiles, err := filepath.Glob(filepath.Join(profilesDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list profile files: %w", err)
	}
	files = append(files, ymlFiles...)

	for _, file := range files {
		profile, err := loadProfile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}

		key := profile.ProfileName
		if key == "" {
			key = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
			profile.ProfileName = key
		}
		profiles[key] = profile
	}

	if len(profiles) == 0 {
		fallback := &ExportProfile{ProfileName: "default"}
		applyProfileDefaults(fallback)
		profiles["default"] = fallback
	}

	return profiles, nil
}

// loadProfile loads a single export profile file.
func loadProfile(filePath string) (*ExportProfile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var profile ExportProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}

	applyProfileDefaults(&profile)
	return &profile, nil
}

// applyProfileDefaults sets default values for an export profile.
func applyProfileDefaults(profile *ExportProfile) {
	if profile.Currency == "" {
		profile.Currency = "EUR"
	}
	if profile.ProtocolTag == "" {
		profile.ProtocolTag = "DSV"
	}
	if profile.DescriptionCleanMode == "" {
		profile.DescriptionCleanMode = "none"
	}
	if profile.OutputFormat == "" {
		profile.OutputFormat = "fixed"
	}
}
