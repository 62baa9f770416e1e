package sources

import (
	"fmt"
	"strings"
	"time"

	"github.com/unascribed/FlexVer/go/flexver"
	"golang.org/x/exp/slices"

	"github.com/exoumoon/invar/core"
)

// Project mirrors the registry's project document; fetched mostly to
// resolve dependency display names and slugs.
type Project struct {
	ID           string          `json:"id"`
	Slug         string          `json:"slug"`
	Name         string          `json:"name"`
	Summary      string          `json:"summary"`
	Types        []core.Category `json:"project_types"`
	GameVersions []string        `json:"game_versions"`
	Loaders      []core.Loader   `json:"loaders"`
	Versions     []string        `json:"versions"`
}

// Version mirrors one published version of a registry project.
type Version struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ProjectTypes  []core.Category `json:"project_types"`
	GameVersions  []string        `json:"game_versions"`
	Loaders       []core.Loader   `json:"loaders"`
	DatePublished time.Time       `json:"date_published"`
	Environment   *Environment    `json:"environment"`
	Files         []File          `json:"files"`
	Dependencies  []Dependency    `json:"dependencies"`
}

// File is a downloadable artifact attached to a Version.
type File struct {
	Hashes core.Hashes `json:"hashes"`
	URL    string      `json:"url"`
	Name   string      `json:"filename"`
	Size   int64       `json:"size"`
}

// Dependency is a version's declared relation to another project.
// DisplayName and Summary start empty and are filled in by a
// secondary project lookup.
type Dependency struct {
	ProjectID string           `json:"project_id"`
	VersionID string           `json:"version_id"`
	FileName  string           `json:"file_name"`
	Kind      core.Requirement `json:"dependency_type"`

	DisplayName string `json:"-"`
	Summary     string `json:"-"`
}

func (d Dependency) String() string {
	var b strings.Builder
	if d.DisplayName != "" {
		fmt.Fprintf(&b, "%s ", d.DisplayName)
	}
	fmt.Fprintf(&b, "[%s]", d.ProjectID)
	if d.Summary != "" {
		summary := d.Summary
		if runes := []rune(summary); len(runes) > 80 {
			summary = string(runes[:80]) + "..."
		}
		fmt.Fprintf(&b, " %s", summary)
	}
	return b.String()
}

// Environment is the registry's own client/server classification.
type Environment string

const (
	EnvClientOnly      Environment = "client_only"
	EnvServerOnly      Environment = "server_only"
	EnvClientAndServer Environment = "client_and_server"
)

func (e *Environment) UnmarshalJSON(data []byte) error {
	switch Environment(strings.Trim(string(data), `"`)) {
	case EnvClientOnly:
		*e = EnvClientOnly
	case EnvServerOnly:
		*e = EnvServerOnly
	default:
		*e = EnvClientAndServer
	}
	return nil
}

// Env converts the registry classification into a component Env.
func (e Environment) Env() core.Env {
	switch e {
	case EnvClientOnly:
		return core.ClientOnly()
	case EnvServerOnly:
		return core.ServerOnly()
	default:
		return core.ClientAndServer()
	}
}

// IsCompatible reports whether this version may be offered for the
// given instance.
//
// Game version admissibility is waived for resourcepacks and shaders:
// those load regardless of the game version they were tagged with.
// Loader admissibility is never waived, except through the "other"
// loader marker, which stands for tags we can't classify and is
// accepted permissively. A version declaring no loaders at all never
// matches.
func (v *Version) IsCompatible(instance *core.Instance) bool {
	versionAgnostic := slices.ContainsFunc(v.ProjectTypes, func(t core.Category) bool {
		return t == core.CategoryResourcepack || t == core.CategoryShader
	})
	correctGameVersion := slices.Contains(v.GameVersions, instance.MinecraftVersion.String())

	unknownLoader := slices.Contains(v.Loaders, core.LoaderOther)
	supportedLoader := slices.ContainsFunc(v.Loaders, instance.Allows)

	return (versionAgnostic || correctGameVersion) && (unknownLoader || supportedLoader)
}

// RequiredDependencies returns the dependencies that must be present.
func (v *Version) RequiredDependencies() []Dependency {
	return v.dependenciesOfKind(core.RequirementRequired)
}

// OptionalDependencies returns the recommended extras, sorted by
// project id so selection menus are stable.
func (v *Version) OptionalDependencies() []Dependency {
	optional := v.dependenciesOfKind(core.RequirementOptional)
	slices.SortFunc(optional, func(a, b Dependency) int {
		return strings.Compare(a.ProjectID, b.ProjectID)
	})
	return optional
}

func (v *Version) dependenciesOfKind(kind core.Requirement) []Dependency {
	var matching []Dependency
	for _, dep := range v.Dependencies {
		if dep.Kind == kind {
			matching = append(matching, dep)
		}
	}
	return matching
}

// String renders a version the way selection menus show it.
func (v *Version) String() string {
	loaders := make([]string, len(v.Loaders))
	for i, loader := range v.Loaders {
		loaders[i] = loader.String()
	}
	return fmt.Sprintf(
		"%s [%s] - loaders: %s, game versions: %s, released %s",
		v.Name, v.ID,
		strings.Join(loaders, "/"),
		strings.Join(SortedGameVersions(v.GameVersions), " "),
		v.DatePublished.Format("Jan 2, 2006"),
	)
}

// SortedGameVersions orders declared game versions newest-first and
// drops duplicates. Game versions don't reliably parse as semver, so
// FlexVer ordering is used.
func SortedGameVersions(versions []string) []string {
	sorted := append([]string(nil), versions...)
	flexver.VersionSlice(sorted).Sort()
	slices.Reverse(sorted)
	return slices.Compact(sorted)
}
