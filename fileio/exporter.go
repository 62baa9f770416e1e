package fileio

import (
	"archive/zip"
	"encoding/json"
	"os"
	"path"
	"path/filepath"
)

// ExportPack writes the pack as an .mrpack archive at targetPath:
// the JSON index at the archive root, and every local component
// copied byte-for-byte under its overrides prefix.
func ExportPack(repo *LocalRepository, targetPath string) error {
	components, err := repo.Components()
	if err != nil {
		return err
	}

	index := BuildIndex(repo.Pack, components)
	indexJson, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}

	expFile, err := CreateFile(targetPath)
	if err != nil {
		return err
	}
	defer expFile.Close()

	zipWriter := zip.NewWriter(expFile)

	indexEntry, err := zipWriter.Create(IndexFileName)
	if err != nil {
		return err
	}
	if _, err := indexEntry.Write(indexJson); err != nil {
		return err
	}

	for i := range components {
		component := &components[i]
		if !component.Source.IsLocal() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(repo.RootDirectory, component.Source.Local.Path))
		if err != nil {
			return err
		}
		entryName := path.Join(OverridesDir(component.Environment), component.RuntimePath())
		entry, err := zipWriter.Create(entryName)
		if err != nil {
			return err
		}
		if _, err := entry.Write(data); err != nil {
			return err
		}
	}

	return zipWriter.Close()
}
