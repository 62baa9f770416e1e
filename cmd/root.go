package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/exoumoon/invar/config"
	"github.com/exoumoon/invar/fileio"
	"github.com/exoumoon/invar/internal/shared"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "invar",
	Short: "A declarative manager for modded game instances",
	Long: `A declarative manager for modded game instances.

The pack manifest and per-component metadata records live in a git
repository; every subcommand works from any directory inside it.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	rootCmd.Version = config.Version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("non-interactive", "y", false, "Run without prompting, accepting defaults")
	_ = viper.BindPFlag("non-interactive", rootCmd.PersistentFlags().Lookup("non-interactive"))
}

// openRepo locates the enclosing pack repository or exits.
func openRepo() *fileio.LocalRepository {
	repo, err := fileio.OpenAtGitRoot()
	if err != nil {
		shared.Exitln(err)
	}
	return repo
}
