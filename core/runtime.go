package core

import (
	"fmt"
	"path"
	"strings"
)

// RuntimeDirectory is a top-level directory of a running game
// instance that components get placed into.
type RuntimeDirectory string

const (
	DirConfig        RuntimeDirectory = "config"
	DirDatapacks     RuntimeDirectory = "datapacks"
	DirMods          RuntimeDirectory = "mods"
	DirResourcepacks RuntimeDirectory = "resourcepacks"
	DirShaderpacks   RuntimeDirectory = "shaderpacks"
)

// RuntimeDirectories lists every runtime directory a repository keeps.
var RuntimeDirectories = []RuntimeDirectory{
	DirConfig,
	DirDatapacks,
	DirMods,
	DirResourcepacks,
	DirShaderpacks,
}

func (d RuntimeDirectory) String() string {
	return string(d)
}

func ParseRuntimeDirectory(raw string) (RuntimeDirectory, error) {
	for _, dir := range RuntimeDirectories {
		if strings.EqualFold(raw, string(dir)) {
			return dir, nil
		}
	}
	return "", fmt.Errorf("unknown runtime directory %q", raw)
}

// CategoryDir maps a component category onto its runtime directory.
func CategoryDir(category Category) RuntimeDirectory {
	switch category {
	case CategoryResourcepack:
		return DirResourcepacks
	case CategoryShader:
		return DirShaderpacks
	case CategoryDatapack:
		return DirDatapacks
	case CategoryConfig:
		return DirConfig
	default:
		return DirMods
	}
}

// DirCategory is the inverse of CategoryDir, used to auto-categorize
// local files by the directory they sit in.
func DirCategory(dir RuntimeDirectory) Category {
	switch dir {
	case DirResourcepacks:
		return CategoryResourcepack
	case DirShaderpacks:
		return CategoryShader
	case DirDatapacks:
		return CategoryDatapack
	case DirConfig:
		return CategoryConfig
	default:
		return CategoryMod
	}
}

// RuntimePath computes where the component's file lands inside a game
// instance, in forward-slash form.
//
// Remote resourcepacks and shaders are renamed to "<id>.<ext>" so the
// in-game pack list shows stable, readable names; every other category
// keeps the file name the registry gave it. Local components ship at
// their repository-relative path, subdirectories included.
func (c *Component) RuntimePath() string {
	if c.Source.IsLocal() {
		return path.Clean(c.Source.Local.Path)
	}

	fileName := c.Source.FileName()
	switch c.Category {
	case CategoryResourcepack, CategoryShader:
		ext := strings.TrimPrefix(path.Ext(fileName), ".")
		if ext == "" {
			ext = "zip"
		}
		fileName = fmt.Sprintf("%s.%s", c.Id, ext)
	}

	return path.Join(CategoryDir(c.Category).String(), fileName)
}
