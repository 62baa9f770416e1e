package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exoumoon/invar/internal/shared"
	"github.com/exoumoon/invar/server"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Host the pack on a local containerized server",
}

var serverSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Export the pack and generate the server's compose manifest",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repo := openRepo()
		if err := server.Setup(repo, server.DefaultComposeOptions()); err != nil {
			shared.Exitln(err)
		}
		fmt.Printf("Server manifest written to %s, tweak it and run `invar server start`\n", server.ComposeFileName)
	},
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the server in the background",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := server.Start(openRepo()); err != nil {
			shared.Exitln(err)
		}
	},
}

var serverStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the server",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := server.Stop(openRepo()); err != nil {
			shared.Exitln(err)
		}
	},
}

var serverStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the state of the server's containers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := server.Status(openRepo()); err != nil {
			shared.Exitln(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.AddCommand(serverSetupCmd)
	serverCmd.AddCommand(serverStartCmd)
	serverCmd.AddCommand(serverStopCmd)
	serverCmd.AddCommand(serverStatusCmd)
}
