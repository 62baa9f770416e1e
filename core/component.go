package core

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Id identifies a component within a pack. Ids are stored trimmed and
// lowercased so lookups are case-insensitive.
type Id string

func NewId(raw string) Id {
	return Id(strings.ToLower(strings.TrimSpace(raw)))
}

func (id Id) String() string {
	return string(id)
}

// Category is the kind of content a component carries.
type Category string

const (
	CategoryMod          Category = "mod"
	CategoryResourcepack Category = "resourcepack"
	CategoryShader       Category = "shader"
	CategoryDatapack     Category = "datapack"
	CategoryConfig       Category = "config"
)

// Categories lists every valid category, in presentation order.
var Categories = []Category{
	CategoryMod,
	CategoryResourcepack,
	CategoryShader,
	CategoryDatapack,
	CategoryConfig,
}

// ParseCategory maps a raw category string (from YAML, JSON or a CLI
// flag) to a Category. The registry reports Bukkit-style plugins with
// their own type; those load like mods and are treated as such.
func ParseCategory(raw string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "mod", "plugin":
		return CategoryMod, nil
	case "resourcepack":
		return CategoryResourcepack, nil
	case "shader", "shaderpack":
		return CategoryShader, nil
	case "datapack":
		return CategoryDatapack, nil
	case "config":
		return CategoryConfig, nil
	}
	return "", fmt.Errorf("unknown component category %q", raw)
}

func (c Category) String() string {
	return string(c)
}

func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseCategory(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c *Category) UnmarshalJSON(data []byte) error {
	parsed, err := ParseCategory(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Requirement describes how a component (or a dependency) relates to
// an environment: it is needed there, tolerated there, or won't load.
type Requirement string

const (
	RequirementRequired    Requirement = "required"
	RequirementOptional    Requirement = "optional"
	RequirementUnsupported Requirement = "unsupported"
)

// ParseRequirement is permissive on purpose: the registry has grown
// new values over time ("embedded" and friends), and treating an
// unrecognized one as required is the safe direction.
func ParseRequirement(raw string) Requirement {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "optional":
		return RequirementOptional
	case "unsupported", "incompatible":
		return RequirementUnsupported
	default:
		return RequirementRequired
	}
}

func (r Requirement) String() string {
	return string(r)
}

func (r *Requirement) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*r = ParseRequirement(raw)
	return nil
}

func (r *Requirement) UnmarshalJSON(data []byte) error {
	*r = ParseRequirement(strings.Trim(string(data), `"`))
	return nil
}

// Env is the client/server requirement pair of a component.
type Env struct {
	Client Requirement `yaml:"client" json:"client"`
	Server Requirement `yaml:"server" json:"server"`
}

func ClientAndServer() Env {
	return Env{Client: RequirementRequired, Server: RequirementRequired}
}

func ClientOnly() Env {
	return Env{Client: RequirementRequired, Server: RequirementUnsupported}
}

func ServerOnly() Env {
	return Env{Client: RequirementUnsupported, Server: RequirementRequired}
}

func (e Env) String() string {
	onClient := e.Client != RequirementUnsupported
	onServer := e.Server != RequirementUnsupported
	switch {
	case onClient && onServer:
		return "client/server"
	case onClient:
		return "client"
	case onServer:
		return "server"
	}
	return "unsupported"
}

// Hashes carries the two checksums the registry publishes per file.
type Hashes struct {
	Sha1   string `yaml:"sha1" json:"sha1"`
	Sha512 string `yaml:"sha512" json:"sha512"`
}

// RemoteComponent describes a component downloadable from the registry.
type RemoteComponent struct {
	DownloadURL string `yaml:"download_url"`
	FileName    string `yaml:"file_name"`
	FileSize    int64  `yaml:"file_size"`
	VersionID   string `yaml:"version_id"`
	Hashes      Hashes `yaml:"hashes"`
}

// LocalComponent is a file already present in the repository that
// should be shipped as-is.
type LocalComponent struct {
	Path string `yaml:"path"`
}

// Source is a tagged union: exactly one of Remote or Local is set.
type Source struct {
	Remote *RemoteComponent `yaml:"remote,omitempty"`
	Local  *LocalComponent  `yaml:"local,omitempty"`
}

func RemoteSource(remote RemoteComponent) Source {
	return Source{Remote: &remote}
}

func LocalSource(filePath string) Source {
	return Source{Local: &LocalComponent{Path: filePath}}
}

func (s Source) IsRemote() bool {
	return s.Remote != nil
}

func (s Source) IsLocal() bool {
	return s.Local != nil
}

// FileName returns the base name of the file this source points at.
func (s Source) FileName() string {
	switch {
	case s.Remote != nil:
		return s.Remote.FileName
	case s.Local != nil:
		return path.Base(s.Local.Path)
	}
	return ""
}

func (s Source) String() string {
	if s.IsRemote() {
		return "remote"
	}
	return "local"
}

func (s Source) Validate() error {
	if (s.Remote == nil) == (s.Local == nil) {
		return errors.New("component source must be exactly one of remote or local")
	}
	return nil
}

// Component is a single building block of a modpack: a mod,
// resourcepack, shaderpack, datapack or config file.
type Component struct {
	Id          Id             `yaml:"id"`
	Category    Category       `yaml:"category"`
	Tags        TagInformation `yaml:"tags"`
	Environment Env            `yaml:"environment"`
	Source      Source         `yaml:"source"`
}

// DefaultEnv is the environment assumed for a category when the
// registry does not declare one. Pure asset packs are client matter;
// everything else is assumed to matter on both sides.
func DefaultEnv(category Category) Env {
	switch category {
	case CategoryResourcepack, CategoryShader:
		return ClientOnly()
	default:
		return ClientAndServer()
	}
}
