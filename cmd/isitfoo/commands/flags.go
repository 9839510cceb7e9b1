package commands

import (
	"fmt"
	"strings"

	"github.com/jmcvetta/isitfoo/internal/wordclass"
	"github.com/spf13/cobra"
)

// PersistenceFlags holds the flags that choose where check records are stored
type PersistenceFlags struct {
	FilePath       string
	DynamoTable    string
	DynamoEndpoint string
	DryRun         bool
}

// addPersistenceFlags adds the shared record store flags to a command
func addPersistenceFlags(cmd *cobra.Command, flags *PersistenceFlags) {
	cmd.Flags().StringVarP(&flags.FilePath, "file", "f", "", "Path to JSON file holding check records")
	cmd.Flags().StringVarP(&flags.DynamoTable, "dynamodb-table", "t", "", "DynamoDB table holding check records")
	cmd.Flags().StringVarP(&flags.DynamoEndpoint, "dynamodb-endpoint", "e", "", "DynamoDB endpoint URL (optional, uses AWS SDK default if not specified)")
	cmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "r", false, "Show what would be changed without making changes")
}

// classCodeFromFlag accepts a class flag value as either a name or a code
// and returns the code. Shared by every command with a --class flag.
func classCodeFromFlag(class string) (string, error) {
	name := strings.ToLower(class)
	if code, ok := wordclass.ClassNameToCode[name]; ok {
		return code, nil
	}
	if _, ok := wordclass.ClassCodeToName[name]; ok {
		return name, nil
	}
	return "", fmt.Errorf("invalid class: %s\n%s", class, wordclass.ValidClassesText())
}
