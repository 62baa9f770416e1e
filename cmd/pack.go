package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/igorsobreira/titlecase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/exoumoon/invar/core"
	"github.com/exoumoon/invar/fileio"
	"github.com/exoumoon/invar/internal/shared"
)

// packCmd represents the pack command
var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Manage the pack manifest",
}

var packSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create a new pack in the current directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			shared.Exitln(err)
		}
		if _, err := os.Stat(filepath.Join(cwd, fileio.PackFileName)); err == nil {
			shared.Exitln("A pack manifest already exists in this directory")
		}

		name := shared.ReadValue(
			fmt.Sprintf("Pack name [%s]: ", defaultPackName(cwd)),
			defaultPackName(cwd),
		)
		version := shared.ReadValue(
			fmt.Sprintf("Pack version [%s]: ", core.DefaultPackVersion),
			core.DefaultPackVersion,
		)
		mcVersion := shared.ReadValue("Minecraft version [1.20.1]: ", "1.20.1")
		loader := shared.ReadValue("Loader (forge/neoforge/fabric/quilt/minecraft) [neoforge]: ", "neoforge")
		loaderVersion := shared.ReadValue("Loader version: ", "")

		instance := core.NewInstance(
			core.ParseMinecraftVersion(mcVersion),
			core.ParseLoader(loader),
			loaderVersion,
		)
		pack := core.NewPack(name, version, instance)
		if _, err := pack.SemVersion(); err != nil {
			shared.Exitf("Invalid pack version %q: %s\n", version, err)
		}

		repo := &fileio.LocalRepository{RootDirectory: cwd, Pack: pack}
		if err := repo.WritePack(); err != nil {
			shared.Exitln(err)
		}
		if err := repo.Setup(); err != nil {
			shared.Exitln(err)
		}

		fmt.Printf("%s v%s created successfully!\n", pack.Name, pack.Version)
	},
}

var packShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the pack manifest and its components",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repo := openRepo()
		instance := repo.Instance()

		fmt.Printf("%s v%s\n", repo.Pack.Name, repo.Pack.Version)
		fmt.Printf("  Minecraft %s, %s %s\n",
			instance.MinecraftVersion.String(), instance.Loader, instance.LoaderVersion)
		if len(instance.AllowedForeignLoaders) > 0 {
			loaders := make([]string, len(instance.AllowedForeignLoaders))
			for i, loader := range instance.AllowedForeignLoaders {
				loaders[i] = loader.String()
			}
			fmt.Printf("  Allowed foreign loaders: %s\n", strings.Join(loaders, ", "))
		}

		components, err := repo.Components()
		if err != nil {
			shared.Exitln(err)
		}
		fmt.Printf("  %d components\n", len(components))
	},
}

var packExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the pack as a .mrpack archive",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repo := openRepo()

		fileName := viper.GetString("pack.export.output")
		if fileName == "" {
			var err error
			fileName, err = repo.ModpackFileName()
			if err != nil {
				shared.Exitln(err)
			}
		}

		if err := fileio.ExportPack(repo, repo.Path(fileName)); err != nil {
			shared.Exitln(err)
		}
		fmt.Printf("Exported to %s\n", fileName)
	},
}

// defaultPackName derives a human-looking name from the directory,
// so "my-coolPack" becomes "My Cool Pack".
func defaultPackName(cwd string) string {
	base := filepath.Base(cwd)
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	var words []string
	for _, field := range strings.Fields(base) {
		words = append(words, camelcase.Split(field)...)
	}
	return titlecase.Title(strings.Join(words, " "))
}

func init() {
	rootCmd.AddCommand(packCmd)
	packCmd.AddCommand(packSetupCmd)
	packCmd.AddCommand(packShowCmd)
	packCmd.AddCommand(packExportCmd)

	packExportCmd.Flags().StringP("output", "o", "", "Name of the exported archive")
	_ = viper.BindPFlag("pack.export.output", packExportCmd.Flags().Lookup("output"))
}
