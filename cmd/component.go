package cmd

import (
	"github.com/spf13/cobra"
)

// componentCmd represents the component command
var componentCmd = &cobra.Command{
	Use:     "component",
	Short:   "Manage the pack's components",
	Aliases: []string{"mod", "c"},
}

func init() {
	rootCmd.AddCommand(componentCmd)
}
