package fileio

import (
	"gopkg.in/yaml.v3"

	"github.com/exoumoon/invar/core"
)

// WriteYamlFile marshals value and writes it to targetPath, creating
// parent directories as needed.
func WriteYamlFile(value interface{}, targetPath string) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return err
	}

	f, err := CreateFile(targetPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(data)
	return err
}

// WritePackFile persists the pack manifest.
func WritePackFile(pack *core.Pack, targetPath string) error {
	return WriteYamlFile(pack, targetPath)
}

// WriteComponentFile persists one component metadata record.
func WriteComponentFile(component *core.Component, targetPath string) error {
	return WriteYamlFile(component, targetPath)
}
