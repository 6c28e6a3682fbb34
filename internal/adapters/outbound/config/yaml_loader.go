package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/openkraft/cleanuml/internal/domain"
	"github.com/openkraft/cleanuml/internal/domain/uml"
)

// FileName is the configuration file looked up next to the model.
const FileName = ".cleanuml.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .cleanuml.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .cleanuml.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	cfg, err := l.LoadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads an explicit configuration file, which must exist.
func (l *YAMLLoader) LoadFile(path string) (domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, err
	}
	name := filepath.Base(path)

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", name, err)
	}

	canonicalize(&cfg)

	// Validate before merging: catches typos in the user's raw input.
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", name, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// canonicalize fixes the letter case of owning groups and natures so that
// "wg13" and "iec61850" are accepted. Unknown values are left for Validate.
func canonicalize(cfg *domain.Config) {
	for i, g := range cfg.Scope {
		if parsed, err := uml.ParseOwningGroup(string(g)); err == nil {
			cfg.Scope[i] = parsed
		}
	}
	if len(cfg.VersionPackages) == 0 {
		return
	}
	fixed := make(map[uml.Nature][]string, len(cfg.VersionPackages))
	for n, pkgs := range cfg.VersionPackages {
		if parsed, err := uml.ParseNature(string(n)); err == nil {
			n = parsed
		}
		fixed[n] = append(fixed[n], pkgs...)
	}
	cfg.VersionPackages = fixed
}

// mergeConfig overlays explicit values on top of the defaults.
// An omitted scope keeps every owning group; an explicit empty list
// validates nothing.
func mergeConfig(base, override domain.Config) domain.Config {
	result := base

	result.Skip = override.Skip
	if override.Scope != nil {
		result.Scope = override.Scope
	}
	result.Verbose = override.Verbose
	result.VersionPackages = override.VersionPackages

	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.Format != "" {
		result.Log.Format = override.Log.Format
	}
	result.Report = override.Report

	return result
}
