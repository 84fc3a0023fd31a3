package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// maxConfigFileSize caps how much of a config file is read.
const maxConfigFileSize = 10 * 1024 * 1024

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	CompanyListConfig CompanyListConfig `json:"company_list_config,omitempty" yaml:"company_list_config,omitempty"`
	HTTPClientConfig  HTTPClientConfig  `json:"http_client_config,omitempty" yaml:"http_client_config,omitempty"`
	LogConfig         LogConfig         `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	SearchConfig      SearchConfig      `json:"search_config,omitempty" yaml:"search_config,omitempty"`
	SentimentConfig   SentimentConfig   `json:"sentiment_config,omitempty" yaml:"sentiment_config,omitempty"`
	VerifierConfig    VerifierConfig    `json:"verifier_config,omitempty" yaml:"verifier_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		CompanyListConfig: NewDefaultCompanyListConfig(),
		HTTPClientConfig:  NewDefaultHTTPClientConfig(),
		LogConfig:         NewDefaultLogConfig(),
		SearchConfig:      NewDefaultSearchConfig(),
		SentimentConfig:   NewDefaultSentimentConfig(),
		VerifierConfig:    NewDefaultVerifierConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath, supports both JSON and YAML formats.
// YAML is preferred if the file extension is .yaml or .yml. Credentials from the
// environment are applied on top of whatever the file provides.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	if providedPath != "" && !fileExists(providedPath) {
		return nil, errorwrapper.NewValidationError("config_file", providedPath, "config file does not exist")
	}

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		logger.Debug().Msg("No config file found, using defaults")
		ApplyEnvOverrides(cfg)
		return cfg, nil
	}

	data, err := loadConfigFileContent(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}

	ApplyEnvOverrides(cfg)
	logger.Debug().Str("path", filePath).Msg("Loaded configuration")
	return cfg, nil
}

// ApplyEnvOverrides fills API credentials from the environment. Non-empty
// environment values win over file values.
func ApplyEnvOverrides(cfg *GlobalConfig) {
	if v := os.Getenv(EnvSearchAPIKey); v != "" {
		cfg.SearchConfig.APIKey = v
	}
	if v := os.Getenv(EnvSearchEngineID); v != "" {
		cfg.SearchConfig.EngineID = v
	} else if v := os.Getenv(EnvSearchEngineIDAlt); v != "" {
		cfg.SearchConfig.EngineID = v
	}
	if v := os.Getenv(EnvSentimentAPIKey); v != "" {
		cfg.SentimentConfig.APIKey = v
	}
}

func loadConfigFileContent(filePath string) ([]byte, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigFileSize {
		return nil, errorwrapper.NewValidationError("config_file", filePath, "config file exceeds 10MB")
	}
	return os.ReadFile(filePath)
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
