package core

import (
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Loader is a modloader an instance (or a registry version) targets.
type Loader string

const (
	// LoaderMinecraft is vanilla with no external modloader. Versions
	// hosted for plain datapacks declare this one.
	LoaderMinecraft Loader = "minecraft"
	LoaderForge     Loader = "forge"
	LoaderNeoforge  Loader = "neoforge"
	LoaderFabric    Loader = "fabric"
	LoaderQuilt     Loader = "quilt"

	// LoaderOther stands in for loader tags we don't recognize.
	// Shaders report "iris" or "optifine", some mods say "modloader";
	// compatibility checks treat this marker permissively and leave
	// the judgement to the user.
	LoaderOther Loader = "other"
)

// Loaders lists the well-known loaders, in presentation order.
var Loaders = []Loader{
	LoaderMinecraft,
	LoaderForge,
	LoaderNeoforge,
	LoaderFabric,
	LoaderQuilt,
	LoaderOther,
}

// ParseLoader maps a raw loader tag onto a Loader, folding the
// aliases seen in the wild into LoaderMinecraft and everything
// unrecognized into LoaderOther.
func ParseLoader(raw string) Loader {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "minecraft", "vanilla", "none", "datapack":
		return LoaderMinecraft
	case "forge":
		return LoaderForge
	case "neoforge":
		return LoaderNeoforge
	case "fabric":
		return LoaderFabric
	case "quilt":
		return LoaderQuilt
	default:
		return LoaderOther
	}
}

func (l Loader) String() string {
	return string(l)
}

func (l *Loader) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*l = ParseLoader(raw)
	return nil
}

func (l *Loader) UnmarshalJSON(data []byte) error {
	*l = ParseLoader(strings.Trim(string(data), `"`))
	return nil
}

// Instance describes the game an assembled pack runs on: the game
// version, the chosen loader and its version, plus which foreign
// loaders' components are tolerated.
type Instance struct {
	MinecraftVersion MinecraftVersion `yaml:"minecraft_version"`
	Loader           Loader           `yaml:"loader"`
	LoaderVersion    string           `yaml:"loader_version"`

	// AllowedForeignLoaders lists loaders whose components may be
	// installed even though they don't match Loader. Compatibility
	// shims like Sinytra Connector load Fabric mods on (Neo)Forge;
	// allowing the foreign loader here keeps such mods installable
	// without per-component warnings.
	AllowedForeignLoaders []Loader `yaml:"allowed_foreign_loaders"`
}

// NewInstance seeds AllowedForeignLoaders from the fixed cross-loader
// compatibility table: forge and neoforge accept each other's mods,
// as do fabric and quilt, and every modded instance accepts plain
// datapack-style components.
func NewInstance(mcVersion MinecraftVersion, loader Loader, loaderVersion string) Instance {
	var foreign []Loader
	if loader != LoaderMinecraft {
		foreign = append(foreign, LoaderMinecraft)
	}
	switch loader {
	case LoaderForge:
		foreign = append(foreign, LoaderNeoforge)
	case LoaderNeoforge:
		foreign = append(foreign, LoaderForge)
	case LoaderFabric:
		foreign = append(foreign, LoaderQuilt)
	case LoaderQuilt:
		foreign = append(foreign, LoaderFabric)
	}

	return Instance{
		MinecraftVersion:      mcVersion,
		Loader:                loader,
		LoaderVersion:         loaderVersion,
		AllowedForeignLoaders: foreign,
	}
}

// AllowedLoaders is the instance's effective allow-list: its own
// loader plus every allowed foreign one.
func (i *Instance) AllowedLoaders() []Loader {
	allowed := append([]Loader{i.Loader}, i.AllowedForeignLoaders...)
	slices.Sort(allowed)
	return slices.Compact(allowed)
}

func (i *Instance) Allows(loader Loader) bool {
	return loader == i.Loader || slices.Contains(i.AllowedForeignLoaders, loader)
}

// IndexDependencies renders the instance as mrpack index dependencies.
func (i *Instance) IndexDependencies() map[string]string {
	deps := map[string]string{
		"minecraft": i.MinecraftVersion.String(),
	}
	if i.Loader != LoaderMinecraft {
		deps[i.Loader.String()] = i.LoaderVersion
	}
	return deps
}
