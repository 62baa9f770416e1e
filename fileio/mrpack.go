package fileio

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/exoumoon/invar/core"
)

// The Modrinth modpack format: a JSON index at a fixed entry name
// inside a zip, with local files layered in as overrides.
const (
	IndexFileName      = "modrinth.index.json"
	IndexFormatVersion = 1
	IndexGame          = "minecraft"

	CommonOverridesDir = "overrides"
	ServerOverridesDir = "server-overrides"
	ClientOverridesDir = "client-overrides"
)

type MrpackIndex struct {
	FormatVersion int               `json:"formatVersion"`
	Game          string            `json:"game"`
	VersionID     string            `json:"versionId"`
	Name          string            `json:"name"`
	Summary       string            `json:"summary,omitempty"`
	Files         []MrpackFile      `json:"files"`
	Dependencies  map[string]string `json:"dependencies"`
}

type MrpackFile struct {
	Path      string      `json:"path"`
	Hashes    core.Hashes `json:"hashes"`
	Env       *MrpackEnv  `json:"env"`
	Downloads []string    `json:"downloads"`
	FileSize  int64       `json:"fileSize"`
}

type MrpackEnv struct {
	Client core.Requirement `json:"client"`
	Server core.Requirement `json:"server"`
}

// BuildIndex assembles the index for a pack. Only remote components
// become file entries; local ones ship as overrides instead.
func BuildIndex(pack *core.Pack, components []core.Component) MrpackIndex {
	files := make([]MrpackFile, 0, len(components))
	for i := range components {
		component := &components[i]
		if !component.Source.IsRemote() {
			continue
		}
		remote := component.Source.Remote
		files = append(files, MrpackFile{
			Path:   component.RuntimePath(),
			Hashes: remote.Hashes,
			Env: &MrpackEnv{
				Client: component.Environment.Client,
				Server: component.Environment.Server,
			},
			Downloads: []string{remote.DownloadURL},
			FileSize:  remote.FileSize,
		})
	}
	slices.SortFunc(files, func(a, b MrpackFile) int {
		return strings.Compare(a.Path, b.Path)
	})

	return MrpackIndex{
		FormatVersion: IndexFormatVersion,
		Game:          IndexGame,
		VersionID:     pack.Version,
		Name:          pack.Name,
		Files:         files,
		Dependencies:  pack.Instance.IndexDependencies(),
	}
}

// OverridesDir picks the overrides layer a local component belongs
// to, based on which sides it is supported on.
func OverridesDir(env core.Env) string {
	switch env.String() {
	case "client":
		return ClientOverridesDir
	case "server":
		return ServerOverridesDir
	default:
		return CommonOverridesDir
	}
}
