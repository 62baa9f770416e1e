package sources

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exoumoon/invar/core"
)

func installedComponent(versionId string) core.Component {
	return core.Component{
		Id:          "sodium",
		Category:    core.CategoryMod,
		Environment: core.ClientAndServer(),
		Source: core.RemoteSource(core.RemoteComponent{
			DownloadURL: "https://cdn.example/" + versionId + ".jar",
			FileName:    versionId + ".jar",
			FileSize:    1024,
			VersionID:   versionId,
			Hashes:      core.Hashes{Sha1: "sha1-" + versionId},
		}),
	}
}

func TestCheckUpdate(t *testing.T) {
	instance := neoforgeInstance()
	older := modVersion("old", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := modVersion("new", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	registry := &fakeRegistry{
		versions: map[string][]*Version{"sodium": {older, newer}},
	}

	t.Run("newer version available", func(t *testing.T) {
		component := installedComponent("old")
		check, err := CheckUpdate(registry, &instance, &component)
		require.NoError(t, err)
		assert.True(t, check.UpdateAvailable)
		assert.Equal(t, "old.jar -> new.jar", check.UpdateString)
		require.NotNil(t, check.NewVersion)
		assert.Equal(t, "new", check.NewVersion.ID)
	})

	t.Run("already on the latest", func(t *testing.T) {
		component := installedComponent("new")
		check, err := CheckUpdate(registry, &instance, &component)
		require.NoError(t, err)
		assert.False(t, check.UpdateAvailable)
	})

	t.Run("local components have no updates", func(t *testing.T) {
		component := core.Component{Id: "options", Source: core.LocalSource("config/options.json")}
		_, err := CheckUpdate(registry, &instance, &component)
		assert.Error(t, err)
	})
}

func TestApplyUpdate(t *testing.T) {
	component := installedComponent("old")
	newer := modVersion("new", time.Now())

	require.NoError(t, ApplyUpdate(&component, newer))

	remote := component.Source.Remote
	assert.Equal(t, "new", remote.VersionID)
	assert.Equal(t, "new.jar", remote.FileName)
	assert.Equal(t, "https://cdn.example/new.jar", remote.DownloadURL)
	assert.Equal(t, "sha1-new", remote.Hashes.Sha1)
}

func TestApplyUpdateRejectsVersionsWithoutFiles(t *testing.T) {
	component := installedComponent("old")
	broken := modVersion("new", time.Now())
	broken.Files = nil

	assert.Error(t, ApplyUpdate(&component, broken))
}
