package commands

import (
	"context"
	"fmt"

	"github.com/jmcvetta/isitfoo/internal/presenter"
	"github.com/jmcvetta/isitfoo/internal/repository"
	"github.com/jmcvetta/isitfoo/internal/usecase/recheck"
	"github.com/spf13/cobra"
)

var recheckFlags struct {
	PersistenceFlags
	Words   []string
	Classes []string
	Drop    bool
}

var recheckCmd = &cobra.Command{
	Use:           "recheck",
	Short:         "Recheck stored records against the classifier",
	GroupID:       "records",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Recheck runs the classifier again over records in the data store.

Each stored record carries the class and message the classifier produced
at check time. Recheck compares those against the classifier's current
answer for the word and reports records that no longer match, which
catches hand-edited data files and records written by older versions.

You can limit which records are checked:
  --word, -w   : Filter by word(s)
  --class, -c  : Filter by class(es), as name or code

By default, drifted records are only reported. Pass --drop to remove
them from the data store.

Examples:
  # Report drifted records without changing anything
  isitfoo recheck --file ./checks.json

  # Recheck all records and drop drifted ones
  isitfoo recheck --file ./checks.json --drop

  # Recheck specific words
  isitfoo recheck --file ./checks.json -w foo -w bar

  # Recheck only records stored as foo
  isitfoo recheck --file ./checks.json --class foo`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		// Create repository based on persistence flags
		repo, err := repository.NewRepository(ctx, repository.RepositoryConfig{
			FilePath:       recheckFlags.FilePath,
			DynamoTable:    recheckFlags.DynamoTable,
			DynamoEndpoint: recheckFlags.DynamoEndpoint,
		})
		if err != nil {
			return err
		}

		// Resolve class filters to codes
		classCodes := make([]string, 0, len(recheckFlags.Classes))
		for _, class := range recheckFlags.Classes {
			code, err := classCodeFromFlag(class)
			if err != nil {
				cmd.SilenceUsage = false
				return UsageError{err}
			}
			classCodes = append(classCodes, code)
		}

		recheckUC := recheck.NewRecheckUseCase(repo)
		filters := recheck.FilterOptions{
			Words:   recheckFlags.Words,
			Classes: classCodes,
		}

		// Print filter information
		if len(recheckFlags.Words) > 0 {
			fmt.Printf("Filtering by word(s): %v\n", recheckFlags.Words)
		}
		if len(recheckFlags.Classes) > 0 {
			fmt.Printf("Filtering by class(es): %v\n", recheckFlags.Classes)
		}
		if len(recheckFlags.Words) == 0 && len(recheckFlags.Classes) == 0 {
			fmt.Println("No filters specified - rechecking all records")
		}

		// Perform the recheck. Records are only removed when --drop is
		// given and --dry-run is not.
		dropping := recheckFlags.Drop && !recheckFlags.DryRun

		var driftedRecords []recheck.DriftedRecordInfo

		if dropping {
			driftedRecords, err = recheckUC.FindDriftedAndDrop(ctx, filters)
			if err != nil {
				return fmt.Errorf("recheck failed: %w", err)
			}
		} else {
			if recheckFlags.Drop && recheckFlags.DryRun {
				fmt.Println("\n--- DRY RUN MODE (no changes will be made) ---")
			}
			driftedRecords, err = recheckUC.FindDrifted(ctx, filters)
			if err != nil {
				return fmt.Errorf("recheck failed: %w", err)
			}
		}

		// Print results
		if len(driftedRecords) == 0 {
			fmt.Println("\nAll records are consistent with the classifier.")
			return nil
		}

		fmt.Printf("\nDrifted records (%d):\n", len(driftedRecords))
		for _, info := range driftedRecords {
			record := info.Record
			fmt.Printf("  - %s (stored as %s, rev %d): %s\n",
				record.Word,
				presenter.ClassLabel(record.Class),
				record.Rev,
				info.Reason,
			)
		}

		switch {
		case dropping:
			fmt.Printf("\nRemoved %d drifted record(s).\n", len(driftedRecords))
		case recheckFlags.Drop:
			fmt.Println("\nDry run: no records were removed.")
		default:
			fmt.Println("\nNo records were removed. Run again with --drop to remove them.")
		}

		return nil
	},
}

func init() {
	addPersistenceFlags(recheckCmd, &recheckFlags.PersistenceFlags)
	recheckCmd.Flags().StringSliceVarP(&recheckFlags.Words, "word", "w", nil, "Filter by word (repeatable)")
	recheckCmd.Flags().StringSliceVarP(&recheckFlags.Classes, "class", "c", nil, "Filter by class, as name or code (repeatable)")
	recheckCmd.Flags().BoolVarP(&recheckFlags.Drop, "drop", "d", false, "Remove drifted records from the data store")
}
