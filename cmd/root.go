// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "candidate-search",
	Short: "Browse GitHub users one at a time and keep the ones you like.",
	Long: `candidate-search loads a handful of GitHub users and shows them one card
at a time. Accept a candidate to save it, reject it to move on. Accepted
candidates are kept in a local file (or Redis) and can be listed with "saved".`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file (default is $XDG_CONFIG_HOME/candidate-search/config.toml)")
}
