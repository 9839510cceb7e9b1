package commands

import (
	"context"
	"fmt"

	"github.com/jmcvetta/isitfoo/internal/model"
	"github.com/jmcvetta/isitfoo/internal/presenter"
	"github.com/jmcvetta/isitfoo/internal/repository"
	"github.com/spf13/cobra"
)

var showFlags struct {
	PersistenceFlags
	Word   string
	Class  string
	Format string
	SortBy string
}

var showCmd = &cobra.Command{
	Use:           "show",
	Short:         "Show check records from the data store",
	GroupID:       "records",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Display check records from the data store filtered by word or class.

If no filters are specified, all records are displayed.

Examples:
  # Show all records
  isitfoo show --file ./checks.json

  # Show records for a specific word
  isitfoo show --file ./checks.json --word foo

  # Show records for a specific class
  isitfoo show --file ./checks.json --class bar

  # Show records sorted by check time
  isitfoo show --file ./checks.json --sort check-time

  # Show records in compact format
  isitfoo show --file ./checks.json --format compact`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		// Create repository based on persistence flags
		repo, err := repository.NewRepository(ctx, repository.RepositoryConfig{
			FilePath:       showFlags.FilePath,
			DynamoTable:    showFlags.DynamoTable,
			DynamoEndpoint: showFlags.DynamoEndpoint,
		})
		if err != nil {
			return err
		}

		// Get all records from repository
		allRecords, err := repo.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}

		// Filter records based on flags
		filter := model.RecordFilter{}
		if showFlags.Word != "" {
			filter.Words = []string{showFlags.Word}
		}
		if showFlags.Class != "" {
			code, err := classCodeFromFlag(showFlags.Class)
			if err != nil {
				cmd.SilenceUsage = false
				return UsageError{err}
			}
			filter.Classes = []string{code}
		}
		filteredRecords := model.FilterRecords(allRecords, filter)

		// Sort records
		model.SortRecords(filteredRecords, showFlags.SortBy)

		// Display results
		if len(filteredRecords) == 0 {
			fmt.Println("\nNo records found matching the specified criteria.")
			return nil
		}

		// Display based on format
		switch showFlags.Format {
		case "compact":
			displayRecordsCompact(filteredRecords)
		default: // "detailed" or empty
			displayRecordsDetailed(filteredRecords)
		}

		// Print summary
		fmt.Printf("\nTotal records: %d\n", len(filteredRecords))

		// If filtering was applied, show filter summary
		if showFlags.Word != "" || showFlags.Class != "" {
			fmt.Printf("Filters applied:\n")
			if showFlags.Word != "" {
				fmt.Printf("  Word: %s\n", showFlags.Word)
			}
			if showFlags.Class != "" {
				fmt.Printf("  Class: %s\n", showFlags.Class)
			}
		}

		return nil
	},
}

// displayRecordsDetailed displays records in detailed format
func displayRecordsDetailed(records []*model.CheckRecord) {
	fmt.Println("\n=== Check Records ===")

	// Group records by word for better display
	grouped := model.GroupByWord(records)

	for word, wordRecords := range grouped {
		fmt.Printf("\nWord: %s\n", word)
		fmt.Printf("Checks (%d):\n", len(wordRecords))

		for _, record := range wordRecords {
			timeStr := presenter.FormatTimeSince(record.CheckTime)
			line := fmt.Sprintf("  - %s (checked: %s, rev: %d)", presenter.ClassLabel(record.Class), timeStr, record.Rev)
			if record.Message != "" {
				line += fmt.Sprintf(" [%s]", record.Message)
			}
			fmt.Println(line)
		}
	}
}

// displayRecordsCompact displays records in a one-line-per-record format
func displayRecordsCompact(records []*model.CheckRecord) {
	fmt.Println()
	for _, record := range records {
		fmt.Printf("%-20s %-8s rev %-4d %s\n",
			record.Word,
			presenter.ClassLabel(record.Class),
			record.Rev,
			presenter.FormatTimeSinceCompact(record.CheckTime),
		)
	}
}

func init() {
	addPersistenceFlags(showCmd, &showFlags.PersistenceFlags)
	showCmd.Flags().StringVarP(&showFlags.Word, "word", "w", "", "Filter by word (case-insensitive)")
	showCmd.Flags().StringVarP(&showFlags.Class, "class", "c", "", "Filter by class (name or code)")
	showCmd.Flags().StringVarP(&showFlags.Format, "format", "o", "detailed", "Output format: detailed or compact")
	showCmd.Flags().StringVarP(&showFlags.SortBy, "sort", "s", "", "Sort by: word, check-time, class, rev")
}
