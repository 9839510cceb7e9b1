package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmcvetta/isitfoo/internal/model"
	"github.com/jmcvetta/isitfoo/internal/presenter"
	"github.com/jmcvetta/isitfoo/internal/repository"
	"github.com/jmcvetta/isitfoo/internal/repository/memrepo"
	"github.com/jmcvetta/isitfoo/internal/usecase/checklog"
	"github.com/spf13/cobra"
)

var checkFlags PersistenceFlags

var checkCmd = &cobra.Command{
	Use:           "check <word1> [word2]...",
	Short:         "Check whether words are foo",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Check classifies each word and prints the verdict.

A word is foo only if it is exactly "foo". Checking "bar" is an error:
the verdict is recorded, the error message is printed, and the command
exits nonzero after all words have been checked. Every other word is
simply not foo. Comparison is case-sensitive.

With a persistence flag, each check is appended to the record store so
that 'show' and 'recheck' can work with the history later. Without one,
checks are kept in memory only and discarded on exit.

Examples:
  # Check a single word
  isitfoo check foo

  # Check several words and record the results
  isitfoo check --file ./checks.json foo bar baz

  # Record results in DynamoDB
  isitfoo check --dynamodb-table isitfoo-checks foo

  # Classify without recording anything
  isitfoo check --dry-run bar`,
	GroupID: "records",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		// Create repository based on persistence flags
		var repo model.CheckRepository
		if checkFlags.DynamoTable != "" || checkFlags.FilePath != "" {
			// Use persistent repository (file or DynamoDB)
			r, err := repository.NewRepository(ctx, repository.RepositoryConfig{
				FilePath:       checkFlags.FilePath,
				DynamoTable:    checkFlags.DynamoTable,
				DynamoEndpoint: checkFlags.DynamoEndpoint,
			})
			if err != nil {
				return err
			}
			repo = r
		} else {
			// Use in-memory only (no persistence)
			repo = memrepo.NewMemoryRepository()
		}

		checkUseCase := checklog.NewCheckLogUseCase(repo)

		barCount := 0
		for _, word := range args {
			var result *checklog.Result
			if checkFlags.DryRun {
				result = checkUseCase.CheckOnly(word)
			} else {
				r, err := checkUseCase.Check(ctx, word)
				if err != nil {
					return ExitWithCode(1, fmt.Errorf("check failed: %w", err))
				}
				result = r
			}

			slog.Debug("word checked",
				slog.String("word", word),
				slog.Bool("is_foo", result.IsFoo),
				slog.Bool("errored", result.CheckErr != nil),
			)

			if result.CheckErr != nil {
				barCount++
				fmt.Printf("%s: error: %v\n", word, result.CheckErr)
				continue
			}
			if result.Record != nil {
				fmt.Printf("%s: foo=%t (%s, rev %d)\n", word, result.IsFoo, presenter.ClassLabel(result.Record.Class), result.Record.Rev)
			} else {
				fmt.Printf("%s: foo=%t\n", word, result.IsFoo)
			}
		}

		if barCount > 0 {
			return ExitWithCode(2, fmt.Errorf("%d of %d word(s) errored", barCount, len(args)))
		}

		return nil
	},
}

func init() {
	addPersistenceFlags(checkCmd, &checkFlags)
}
