package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exoumoon/invar/internal/shared"
)

// repoCmd represents the repo command
var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Inspect the local repository",
}

var repoShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print where every component record lives on disk",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repo := openRepo()
		fmt.Printf("Repository root: %s\n", repo.RootDirectory)

		components, err := repo.Components()
		if err != nil {
			shared.Exitln(err)
		}
		for i := range components {
			component := &components[i]
			if component.Source.IsLocal() {
				fmt.Printf("%s -> %s (local)\n", component.Id, component.Source.Local.Path)
			} else {
				fmt.Printf("%s -> %s\n", component.Id, repo.ComponentPath(component))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(repoCmd)
	repoCmd.AddCommand(repoShowCmd)
}
