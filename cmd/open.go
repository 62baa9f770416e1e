package cmd

import (
	"fmt"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"

	"github.com/exoumoon/invar/internal/shared"
	"github.com/exoumoon/invar/sources"
)

// componentOpenCmd represents the component open command
var componentOpenCmd = &cobra.Command{
	Use:   "open [id]",
	Short: "Open a component's registry page in the browser",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := sources.ProjectURL(args[0])
		fmt.Printf("Opening %s...\n", url)
		if err := open.Start(url); err != nil {
			shared.Exitln(err)
		}
	},
}

func init() {
	componentCmd.AddCommand(componentOpenCmd)
}
