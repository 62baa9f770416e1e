package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exoumoon/invar/core"
	"github.com/exoumoon/invar/fileio"
	"github.com/exoumoon/invar/internal/shared"
)

// componentRemoveCmd represents the component remove command
var componentRemoveCmd = &cobra.Command{
	Use:     "remove [id]...",
	Short:   "Remove components from the pack",
	Aliases: []string{"delete", "uninstall", "rm"},
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		repo := openRepo()

		for _, rawId := range args {
			id := core.NewId(rawId)
			if err := repo.RemoveComponents(id); err != nil {
				if errors.Is(err, fileio.ErrComponentNotFound) {
					shared.Exitf("%s is not part of this pack\n", id)
				}
				shared.Exitln(err)
			}
			fmt.Printf("%s removed successfully!\n", id)
		}
	},
}

func init() {
	componentCmd.AddCommand(componentRemoveCmd)
}
