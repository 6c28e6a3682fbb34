package domain

import (
	"fmt"
	"strings"

	"github.com/openkraft/cleanuml/internal/domain/uml"
)

// LogFormat selects the log encoder.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// ValidLogLevels enumerates accepted log levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds validation settings loaded from .cleanuml.yaml.
type Config struct {
	Skip  SkipConfig        `yaml:"skip"  json:"skip,omitempty"`
	Scope []uml.OwningGroup `yaml:"scope" json:"scope,omitempty"`

	// Verbose makes rules that found nothing report at INFO instead of DEBUG.
	Verbose bool `yaml:"verbose" json:"verbose,omitempty"`

	// VersionPackages names, per nature, the packages that must hold a
	// <Package>Version class.
	VersionPackages map[uml.Nature][]string `yaml:"version_packages" json:"version_packages,omitempty"`

	Log    LogConfig    `yaml:"log"    json:"log,omitempty"`
	Report ReportConfig `yaml:"report" json:"report,omitempty"`
}

// SkipConfig disables whole element kinds or individual rules by ID.
type SkipConfig struct {
	Kinds []uml.Kind `yaml:"kinds" json:"kinds,omitempty"`
	Rules []string   `yaml:"rules" json:"rules,omitempty"`
}

type LogConfig struct {
	Level  string    `yaml:"level"  json:"level,omitempty"`
	Format LogFormat `yaml:"format" json:"format,omitempty"`
}

type ReportConfig struct {
	Disabled bool `yaml:"disabled" json:"disabled,omitempty"`
	// Dir overrides the directory of the CSV report; default is next to the
	// model file.
	Dir string `yaml:"dir" json:"dir,omitempty"`
}

// DefaultConfig validates every kind in every owning group.
func DefaultConfig() Config {
	return Config{
		Scope: append([]uml.OwningGroup(nil), uml.OwningGroups...),
		Log:   LogConfig{Level: "info", Format: LogFormatConsole},
	}
}

// IsSkippedKind reports whether validation of the kind is switched off.
func (c Config) IsSkippedKind(k uml.Kind) bool {
	for _, s := range c.Skip.Kinds {
		if s == k {
			return true
		}
	}
	return false
}

// IsSkippedRule reports whether the rule ID is disabled.
func (c Config) IsSkippedRule(id string) bool {
	for _, s := range c.Skip.Rules {
		if s == id {
			return true
		}
	}
	return false
}

// InScope reports whether objects owned by g are validated.
func (c Config) InScope(g uml.OwningGroup) bool {
	for _, s := range c.Scope {
		if s == g {
			return true
		}
	}
	return false
}

// IsVersionPackage reports whether the named package of the given nature
// must hold a version class.
func (c Config) IsVersionPackage(n uml.Nature, name string) bool {
	for _, p := range c.VersionPackages[n] {
		if p == name {
			return true
		}
	}
	return false
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	// 1. skip.kinds must name validated kinds
	for _, k := range c.Skip.Kinds {
		if !uml.IsValidatedKind(k) {
			return fmt.Errorf("unknown kind %q in skip.kinds", k)
		}
	}

	// 2. scope must name known owning groups
	for _, g := range c.Scope {
		if _, err := uml.ParseOwningGroup(string(g)); err != nil {
			return fmt.Errorf("%w in scope", err)
		}
	}

	// 3. version_packages keys must be known natures
	for n, pkgs := range c.VersionPackages {
		if _, err := uml.ParseNature(string(n)); err != nil {
			return fmt.Errorf("%w in version_packages", err)
		}
		for i, p := range pkgs {
			if strings.TrimSpace(p) == "" {
				return fmt.Errorf("version_packages[%s][%d] must not be empty", n, i)
			}
		}
	}

	// 4. log settings
	if c.Log.Level != "" && !isValidLogLevel(c.Log.Level) {
		return fmt.Errorf("unknown log.level %q (valid: debug, info, warn, error)", c.Log.Level)
	}
	if c.Log.Format != "" && c.Log.Format != LogFormatConsole && c.Log.Format != LogFormatJSON {
		return fmt.Errorf("unknown log.format %q (valid: console, json)", c.Log.Format)
	}

	return nil
}

func isValidLogLevel(level string) bool {
	for _, l := range ValidLogLevels {
		if strings.EqualFold(l, level) {
			return true
		}
	}
	return false
}
