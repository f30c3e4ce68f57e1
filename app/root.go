// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zonevi",
	Short: "zonevi is an interactive editor for live DNS zones",
	Long: `zonevi pulls a zone from its authoritative server, opens it as a
flat text file in your editor, and submits the minimal set of record
additions and deletions needed to make the live zone match what you saved.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
