package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exoumoon/invar/fileio"
	"github.com/exoumoon/invar/internal/shared"
)

// componentImportCmd represents the component import command
var componentImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Track loose files in the runtime directories as local components",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repo := openRepo()

		candidates, err := fileio.ScanLocalCandidates(repo)
		if err != nil {
			shared.Exitln(err)
		}
		if len(candidates) == 0 {
			fmt.Println("No untracked files found.")
			return
		}

		fmt.Println("Found untracked files:")
		for _, candidate := range candidates {
			fmt.Printf("- %s (%s)\n", candidate.Path, candidate.Category)
		}
		if !shared.PromptYesNo("Would you like to track them? [Y/n]: ") {
			fmt.Println("Cancelled!")
			return
		}

		for _, candidate := range candidates {
			component := candidate.Component()
			if err := repo.SaveComponent(&component); err != nil {
				shared.Exitln(err)
			}
			fmt.Printf("%s imported successfully!\n", component.Id)
		}
	},
}

func init() {
	componentCmd.AddCommand(componentImportCmd)
}
