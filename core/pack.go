package core

import (
	"path"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Pack is the top-level modpack entity persisted in pack.yml: one
// authoritative copy per repository root.
type Pack struct {
	Name     string   `yaml:"name"`
	Version  string   `yaml:"version"`
	Instance Instance `yaml:"instance"`
	Settings Settings `yaml:"settings"`

	// LocalComponents tracks repository files shipped as-is; remote
	// components live in their own metadata records instead.
	LocalComponents []LocalComponentEntry `yaml:"local_components,omitempty"`
}

// DefaultPackVersion is the version a freshly set-up pack starts at.
const DefaultPackVersion = "0.1.0"

func NewPack(name, version string, instance Instance) *Pack {
	return &Pack{
		Name:     name,
		Version:  version,
		Instance: instance,
		Settings: DefaultSettings(),
	}
}

// SemVersion parses the pack's version field as strict semver.
func (p *Pack) SemVersion() (*semver.Version, error) {
	return semver.StrictNewVersion(p.Version)
}

// LocalComponentEntry is a manifest line tracking one local file.
type LocalComponentEntry struct {
	Path     string   `yaml:"path"`
	Category Category `yaml:"category"`
}

// Id derives the entry's component id from its file stem.
func (e LocalComponentEntry) Id() Id {
	base := path.Base(e.Path)
	return NewId(strings.TrimSuffix(base, path.Ext(base)))
}

// Component expands the manifest entry into a full component. Local
// files carry no registry metadata, so tags stay empty and the
// environment defaults to both sides.
func (e LocalComponentEntry) Component() Component {
	return Component{
		Id:          e.Id(),
		Category:    e.Category,
		Tags:        Untagged(),
		Environment: ClientAndServer(),
		Source:      LocalSource(e.Path),
	}
}
