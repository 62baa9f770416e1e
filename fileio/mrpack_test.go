package fileio

import (
	"encoding/json"
	"testing"

	"github.com/bradleyjkemp/cupaloy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exoumoon/invar/core"
)

func indexFixture() (*core.Pack, []core.Component) {
	pack := core.NewPack("Ground Zero", "0.1.0", core.NewInstance(
		core.ParseMinecraftVersion("1.20.1"), core.LoaderNeoforge, "21.1.77",
	))

	components := []core.Component{
		{
			Id:          "stay-true",
			Category:    core.CategoryResourcepack,
			Environment: core.ClientOnly(),
			Source: core.RemoteSource(core.RemoteComponent{
				DownloadURL: "https://cdn.example/stay-true.zip",
				FileName:    "StayTrue_1.20.zip",
				FileSize:    2048,
				VersionID:   "rp1",
				Hashes:      core.Hashes{Sha1: "cc", Sha512: "dd"},
			}),
		},
		{
			Id:          "sodium",
			Category:    core.CategoryMod,
			Environment: core.ClientAndServer(),
			Source: core.RemoteSource(core.RemoteComponent{
				DownloadURL: "https://cdn.example/sodium.jar",
				FileName:    "sodium-fabric-0.5.11.jar",
				FileSize:    1024,
				VersionID:   "v1",
				Hashes:      core.Hashes{Sha1: "aa", Sha512: "bb"},
			}),
		},
		{
			Id:          "options",
			Category:    core.CategoryConfig,
			Environment: core.ClientAndServer(),
			Source:      core.LocalSource("config/options.json"),
		},
	}

	return pack, components
}

func TestBuildIndex(t *testing.T) {
	pack, components := indexFixture()

	index := BuildIndex(pack, components)

	assert.Equal(t, 1, index.FormatVersion)
	assert.Equal(t, "minecraft", index.Game)
	assert.Equal(t, "Ground Zero", index.Name)
	assert.Equal(t, "0.1.0", index.VersionID)
	assert.Equal(t, map[string]string{
		"minecraft": "1.20.1",
		"neoforge":  "21.1.77",
	}, index.Dependencies)

	// Local components never become file entries, and entries come
	// out sorted by path.
	require.Len(t, index.Files, 2)
	assert.Equal(t, "mods/sodium-fabric-0.5.11.jar", index.Files[0].Path)
	assert.Equal(t, "resourcepacks/stay-true.zip", index.Files[1].Path)
	assert.Equal(t, core.RequirementUnsupported, index.Files[1].Env.Server)
}

func TestMrpackIndexJson(t *testing.T) {
	pack, components := indexFixture()

	data, err := json.MarshalIndent(BuildIndex(pack, components), "", "  ")
	require.NoError(t, err)

	cupaloy.SnapshotT(t, string(data))
}

func TestOverridesDir(t *testing.T) {
	assert.Equal(t, "overrides", OverridesDir(core.ClientAndServer()))
	assert.Equal(t, "client-overrides", OverridesDir(core.ClientOnly()))
	assert.Equal(t, "server-overrides", OverridesDir(core.ServerOnly()))
}
