package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "isitfoo",
	Short: "Isitfoo is a tool for checking whether words are foo",
	Long: `A command-line tool for classifying words and managing the record
of past checks.

A word is either foo (it is exactly "foo"), bar (checking it is an
error), or other (anything else).`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: "records", Title: "Record store commands:"})

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(recheckCmd)
	rootCmd.AddCommand(forgetCmd)
}
