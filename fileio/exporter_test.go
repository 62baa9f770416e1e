package fileio

import (
	"archive/zip"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exoumoon/invar/core"
)

func TestExportPack(t *testing.T) {
	repo := newTestRepo(t)

	remote := remoteComponent("sodium", core.CategoryMod)
	require.NoError(t, repo.SaveComponent(&remote))

	require.NoError(t, os.MkdirAll(repo.Path("config"), 0755))
	require.NoError(t, os.WriteFile(repo.Path("config", "options.json"), []byte(`{"fps": 120}`), 0644))
	local := core.LocalComponentEntry{Path: "config/options.json", Category: core.CategoryConfig}
	localComponent := local.Component()
	require.NoError(t, repo.SaveComponent(&localComponent))

	target := repo.Path("test-pack.mrpack")
	require.NoError(t, ExportPack(repo, target))

	archive, err := zip.OpenReader(target)
	require.NoError(t, err)
	defer archive.Close()

	entries := make(map[string][]byte, len(archive.File))
	for _, file := range archive.File {
		reader, err := file.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(reader)
		require.NoError(t, err)
		require.NoError(t, reader.Close())
		entries[file.Name] = data
	}

	// The index sits at the fixed entry name and lists only the
	// remote component.
	require.Contains(t, entries, IndexFileName)
	var index MrpackIndex
	require.NoError(t, json.Unmarshal(entries[IndexFileName], &index))
	require.Len(t, index.Files, 1)
	assert.Equal(t, "mods/sodium.jar", index.Files[0].Path)
	assert.Equal(t, "Test Pack", index.Name)

	// The local component is shipped byte-for-byte as an override.
	require.Contains(t, entries, "overrides/config/options.json")
	assert.Equal(t, `{"fps": 120}`, string(entries["overrides/config/options.json"]))

	assert.Len(t, entries, 2)
}
