package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/exoumoon/invar/core"
	"github.com/exoumoon/invar/internal/shared"
	"github.com/exoumoon/invar/sources"
)

// componentUpdateCmd represents the component update command
var componentUpdateCmd = &cobra.Command{
	Use:   "update [id]...",
	Short: "Update components to their newest compatible versions",
	Run: func(cmd *cobra.Command, args []string) {
		repo := openRepo()
		registry := sources.NewClient()

		components, err := repo.Components()
		if err != nil {
			shared.Exitln(err)
		}

		if !viper.GetBool("component.update.all") {
			if len(args) < 1 {
				shared.Exitln("Must specify at least one component, or use the --all flag!")
			}
			requested := make(map[core.Id]bool, len(args))
			for _, rawId := range args {
				requested[core.NewId(rawId)] = true
			}
			i := 0
			for _, component := range components {
				if requested[component.Id] {
					components[i] = component
					i++
				}
			}
			components = components[:i]
			if len(components) == 0 {
				shared.Exitln("None of the given components are part of this pack")
			}
		}

		fmt.Println("Checking for updates...")
		updatesFound := false
		var updatable []core.Component
		var newVersions []*sources.Version
		for _, component := range components {
			if !component.Source.IsRemote() {
				continue
			}
			check, err := sources.CheckUpdate(registry, repo.Instance(), &component)
			if err != nil {
				fmt.Printf("Failed to check updates for %s: %s\n", component.Id, err.Error())
				continue
			}
			if check.UpdateAvailable {
				if !updatesFound {
					fmt.Println("Updates found:")
					updatesFound = true
				}
				fmt.Printf("%s: %s\n", component.Id, check.UpdateString)
				updatable = append(updatable, component)
				newVersions = append(newVersions, check.NewVersion)
			}
		}

		if !updatesFound {
			fmt.Println("All components are up to date!")
			return
		}

		if !shared.PromptYesNo("Do you want to update? [Y/n]: ") {
			fmt.Println("Cancelled!")
			return
		}

		for i := range updatable {
			component := updatable[i]
			if err := sources.ApplyUpdate(&component, newVersions[i]); err != nil {
				fmt.Println(err.Error())
				continue
			}
			if err := repo.SaveComponent(&component); err != nil {
				fmt.Println(err.Error())
			}
		}
	},
}

func init() {
	componentCmd.AddCommand(componentUpdateCmd)

	componentUpdateCmd.Flags().BoolP("all", "a", false, "Update every remote component")
	_ = viper.BindPFlag("component.update.all", componentUpdateCmd.Flags().Lookup("all"))
}
