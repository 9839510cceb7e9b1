package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmcvetta/isitfoo/internal/model"
	"github.com/jmcvetta/isitfoo/internal/repository"
	"github.com/spf13/cobra"
)

var forgetFlags PersistenceFlags

var forgetCmd = &cobra.Command{
	Use:           "forget <word> <check-time>",
	Short:         "Remove one check record from the data store",
	GroupID:       "records",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Forget removes a single check record, identified by its word and check time.

The check time must be given in RFC 3339 form, exactly as stored
(use 'show' to find it).

Examples:
  isitfoo forget --file ./checks.json foo 2026-08-29T12:00:00.123456789Z`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		word := args[0]
		checkTime, err := time.Parse(time.RFC3339Nano, args[1])
		if err != nil {
			cmd.SilenceUsage = false
			return UsageError{fmt.Errorf("invalid check time %q: %w", args[1], err)}
		}

		// Create repository based on persistence flags
		repo, err := repository.NewRepository(ctx, repository.RepositoryConfig{
			FilePath:       forgetFlags.FilePath,
			DynamoTable:    forgetFlags.DynamoTable,
			DynamoEndpoint: forgetFlags.DynamoEndpoint,
		})
		if err != nil {
			return err
		}

		// Normalize through the record's own key form so the argument doesn't
		// have to match the stored formatting byte for byte
		key := (&model.CheckRecord{CheckTime: checkTime}).CheckKey()

		if forgetFlags.DryRun {
			if _, err := repo.Get(ctx, word, key); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return ExitWithCode(1, fmt.Errorf("no record for word %q at %s", word, key))
				}
				return fmt.Errorf("failed to look up record: %w", err)
			}
			fmt.Printf("Dry run: would remove record for %q at %s\n", word, key)
			return nil
		}

		if err := repo.Delete(ctx, word, key); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return ExitWithCode(1, fmt.Errorf("no record for word %q at %s", word, key))
			}
			return fmt.Errorf("failed to delete record: %w", err)
		}

		fmt.Printf("Removed record for %q at %s\n", word, key)
		return nil
	},
}

func init() {
	addPersistenceFlags(forgetCmd, &forgetFlags)
}
