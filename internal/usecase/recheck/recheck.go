package recheck

import (
	"context"
	"fmt"

	"github.com/jmcvetta/isitfoo/internal/classify"
	"github.com/jmcvetta/isitfoo/internal/model"
)

// RecheckUseCase handles rechecking of check records in the data store
type RecheckUseCase struct {
	repository model.CheckRepository
}

// NewRecheckUseCase creates a new recheck use case
func NewRecheckUseCase(repo model.CheckRepository) *RecheckUseCase {
	return &RecheckUseCase{
		repository: repo,
	}
}

// FilterOptions contains optional filtering criteria for rechecking
type FilterOptions struct {
	Words   []string
	Classes []string
}

// DriftedRecordInfo contains a drifted record along with the reason it drifted
type DriftedRecordInfo struct {
	Record *model.CheckRecord
	Reason string
}

// FindDrifted re-runs the classifier over stored records and reports every
// record whose stored class or message no longer matches the classifier's
// answer for its word. The classifier is pure, so drift only appears in
// records that were hand-edited or written by an older version of the tool.
//
// If filters are provided:
//   - words: checks records for those words
//   - classes: checks records stored with those class codes
//
// Returns a list of drifted records with the reason each one drifted.
func (uc *RecheckUseCase) FindDrifted(ctx context.Context, filters FilterOptions) ([]DriftedRecordInfo, error) {
	// Get all records from repository
	allRecords, err := uc.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	// If no records, return empty list
	if len(allRecords) == 0 {
		return []DriftedRecordInfo{}, nil
	}

	// Apply filtering to get candidate records
	candidateRecords := model.FilterRecords(allRecords, model.RecordFilter{
		Words:   filters.Words,
		Classes: filters.Classes,
	})

	// Recheck each candidate and collect drifted records with reasons
	var driftedRecords []DriftedRecordInfo

	for _, record := range candidateRecords {
		if reason := recheckRecord(record); reason != "" {
			driftedRecords = append(driftedRecords, DriftedRecordInfo{
				Record: record,
				Reason: reason,
			})
		}
	}

	return driftedRecords, nil
}

// FindDriftedAndDrop finds drifted records and removes them from the repository
func (uc *RecheckUseCase) FindDriftedAndDrop(ctx context.Context, filters FilterOptions) ([]DriftedRecordInfo, error) {
	// Find drifted records
	driftedRecords, err := uc.FindDrifted(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to find drifted records: %w", err)
	}

	// Delete each drifted record
	for _, info := range driftedRecords {
		record := info.Record
		if err := uc.repository.UnconditionalDelete(ctx, record.Word, record.CheckKey()); err != nil {
			// If delete fails, return what we've found so far with an error
			return driftedRecords, fmt.Errorf("failed to delete record %s (checked %s): %w", record.Word, record.CheckKey(), err)
		}
	}

	return driftedRecords, nil
}

// recheckRecord compares a stored record against the classifier's current
// answer for its word. Returns an empty string if the record is consistent,
// or a human-readable reason if it drifted.
func recheckRecord(record *model.CheckRecord) string {
	expectedClass := classify.ClassOf(record.Word)
	if record.Class != expectedClass {
		return fmt.Sprintf("stored class %q but classifier says %q", record.Class, expectedClass)
	}

	_, checkErr := classify.IsItFoo(record.Word)
	expectedMessage := ""
	if checkErr != nil {
		expectedMessage = checkErr.Error()
	}
	if record.Message != expectedMessage {
		return fmt.Sprintf("stored message %q but classifier says %q", record.Message, expectedMessage)
	}

	return ""
}
