package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to flags.
type FileConfig struct {
	UserAgent   string        `yaml:"userAgent" json:"userAgent"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout"`
	MaxAttempts int           `yaml:"maxAttempts" json:"maxAttempts"`

	TextScore struct {
		MaxLen     int    `yaml:"maxLen" json:"maxLen"`
		Vocabulary string `yaml:"vocabulary" json:"vocabulary"`
	} `yaml:"textScore" json:"textScore"`

	Output  string `yaml:"output" json:"output"`
	PDF     string `yaml:"pdf" json:"pdf"`
	Verbose bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON.
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any
// fields still at their flag defaults, so explicit flags win over the
// file and the file wins over built-in defaults.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.UserAgent == "" || cfg.UserAgent == DefaultUserAgent) && fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if (cfg.Timeout == 0 || cfg.Timeout == DefaultTimeout) && fc.Timeout > 0 {
		cfg.Timeout = fc.Timeout
	}
	if (cfg.MaxAttempts == 0 || cfg.MaxAttempts == DefaultMaxAttempts) && fc.MaxAttempts > 0 {
		cfg.MaxAttempts = fc.MaxAttempts
	}
	if cfg.TextScoreMaxLen == 0 && fc.TextScore.MaxLen > 0 {
		cfg.TextScoreMaxLen = fc.TextScore.MaxLen
	}
	if cfg.TextScoreVocabulary == "" && fc.TextScore.Vocabulary != "" {
		cfg.TextScoreVocabulary = fc.TextScore.Vocabulary
	}
	if cfg.OutputPath == "" && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.PDFPath == "" && fc.PDF != "" {
		cfg.PDFPath = fc.PDF
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// Flag defaults shared with the CLI so the file overlay can tell an
// explicit flag from an untouched one.
const (
	DefaultUserAgent   = "tempura/1.0 (+https://github.com/hyperifyio/tempura)"
	DefaultTimeout     = 15 * time.Second
	DefaultMaxAttempts = 2
)

// ValidateConfig performs minimal schema validation.
func ValidateConfig(cfg Config) error {
	if cfg.Timeout < 0 {
		return errors.New("config: negative timeout is not allowed")
	}
	if cfg.MaxAttempts < 0 {
		return errors.New("config: negative maxAttempts is not allowed")
	}
	if cfg.TextScoreMaxLen < 0 {
		return errors.New("config: negative textScore.maxLen is not allowed")
	}
	if cfg.TextScoreVocabulary != "" {
		if _, err := regexp.Compile(cfg.TextScoreVocabulary); err != nil {
			return fmt.Errorf("config: textScore.vocabulary: %w", err)
		}
	}
	return nil
}
