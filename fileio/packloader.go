package fileio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/exoumoon/invar/core"
)

// LoadPackFile reads and validates the pack manifest.
func LoadPackFile(packPath string) (*core.Pack, error) {
	raw, err := os.ReadFile(packPath)
	if err != nil {
		return nil, err
	}

	var pack core.Pack
	if err := yaml.Unmarshal(raw, &pack); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", packPath, err)
	}
	if pack.Name == "" {
		return nil, fmt.Errorf("%s does not name a pack", packPath)
	}
	if _, err := pack.SemVersion(); err != nil {
		return nil, fmt.Errorf("pack version %q is not valid semver: %w", pack.Version, err)
	}

	return &pack, nil
}

// LoadComponentFile reads a single component metadata record.
func LoadComponentFile(path string) (*core.Component, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var component core.Component
	if err := yaml.Unmarshal(raw, &component); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := component.Source.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &component, nil
}
