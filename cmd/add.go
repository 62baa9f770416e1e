package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/dixonwille/wmenu.v4"

	"github.com/exoumoon/invar/core"
	"github.com/exoumoon/invar/fileio"
	"github.com/exoumoon/invar/internal/shared"
	"github.com/exoumoon/invar/sources"
)

// componentAddCmd represents the component add command
var componentAddCmd = &cobra.Command{
	Use:     "add [id]...",
	Short:   "Add components from the registry to the pack",
	Aliases: []string{"install", "get"},
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		repo := openRepo()

		if viper.GetBool("component.add.local") {
			for _, path := range args {
				addLocal(repo, path)
			}
			return
		}

		registry := sources.NewClient()
		for _, rawId := range args {
			err := sources.InstallRemote(repo, registry, rawId, addCategory.value, menuSelector{})
			if err != nil {
				shared.Exitln(err)
			}
		}
	},
}

// categoryFlag lets --category parse straight into a core.Category.
type categoryFlag struct {
	value *core.Category
}

var _ pflag.Value = (*categoryFlag)(nil)

func (f *categoryFlag) String() string {
	if f.value == nil {
		return ""
	}
	return string(*f.value)
}

func (f *categoryFlag) Set(raw string) error {
	category, err := core.ParseCategory(raw)
	if err != nil {
		return err
	}
	f.value = &category
	return nil
}

func (f *categoryFlag) Type() string {
	return "category"
}

var addCategory categoryFlag

// addLocal tracks one file, already inside a runtime directory, as a
// local component. The category follows the directory unless forced.
func addLocal(repo *fileio.LocalRepository, path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		shared.Exitln(err)
	}
	relPath, err := filepath.Rel(repo.RootDirectory, absPath)
	if err != nil {
		shared.Exitln(err)
	}
	relPath = filepath.ToSlash(relPath)
	if _, err := os.Stat(repo.Path(relPath)); err != nil {
		shared.Exitf("Cannot track %s: %s\n", relPath, err)
	}

	category := core.CategoryMod
	if addCategory.value != nil {
		category = *addCategory.value
	} else if dir, err := core.ParseRuntimeDirectory(strings.SplitN(relPath, "/", 2)[0]); err == nil {
		category = core.DirCategory(dir)
	}

	entry := core.LocalComponentEntry{Path: relPath, Category: category}
	component := entry.Component()
	if err := repo.SaveComponent(&component); err != nil {
		shared.Exitln(err)
	}
	fmt.Printf("%s added successfully!\n", component.Id)
}

// menuSelector answers resolution questions with interactive menus.
// In non-interactive mode it takes the newest version and no
// optional dependencies.
type menuSelector struct{}

func (menuSelector) PickVersion(id core.Id, versions []*sources.Version) (*sources.Version, error) {
	if viper.GetBool("non-interactive") {
		return versions[0], nil
	}

	var picked *sources.Version
	menu := wmenu.NewMenu(fmt.Sprintf("Which version of %s should be installed?", id))
	for i, version := range versions {
		menu.Option(version.String(), version, i == 0, nil)
	}
	menu.Action(func(menuRes []wmenu.Opt) error {
		if len(menuRes) != 1 || menuRes[0].Value == nil {
			return errors.New("version selection cancelled")
		}
		var ok bool
		picked, ok = menuRes[0].Value.(*sources.Version)
		if !ok {
			return errors.New("error converting interface from wmenu")
		}
		return nil
	})
	if err := menu.Run(); err != nil {
		return nil, err
	}
	return picked, nil
}

func (menuSelector) PickOptionalDependencies(id core.Id, optional []sources.Dependency) ([]sources.Dependency, error) {
	if viper.GetBool("non-interactive") {
		return nil, nil
	}

	var chosen []sources.Dependency
	menu := wmenu.NewMenu(fmt.Sprintf("%s has optional dependencies, pick the ones to install:", id))
	menu.AllowMultiple()
	menu.Option("None of them", nil, true, nil)
	for _, dependency := range optional {
		menu.Option(dependency.String(), dependency, false, nil)
	}
	menu.Action(func(menuRes []wmenu.Opt) error {
		for _, option := range menuRes {
			if dependency, ok := option.Value.(sources.Dependency); ok {
				chosen = append(chosen, dependency)
			}
		}
		return nil
	})
	if err := menu.Run(); err != nil {
		return nil, err
	}
	return chosen, nil
}

func init() {
	componentCmd.AddCommand(componentAddCmd)

	componentAddCmd.Flags().Var(&addCategory, "category", "Force a category instead of the registry's project type")
	componentAddCmd.Flags().BoolP("local", "l", false, "Treat arguments as repository-relative file paths to track")
	_ = viper.BindPFlag("component.add.local", componentAddCmd.Flags().Lookup("local"))
}
