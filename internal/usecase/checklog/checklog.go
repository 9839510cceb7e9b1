package checklog

import (
	"context"
	"fmt"
	"time"

	"github.com/jmcvetta/isitfoo/internal/classify"
	"github.com/jmcvetta/isitfoo/internal/model"
)

// CheckLogUseCase classifies words and appends the outcome to the data store
type CheckLogUseCase struct {
	repository model.CheckRepository
}

// NewCheckLogUseCase creates a new check-log use case backed by the given repository
func NewCheckLogUseCase(repo model.CheckRepository) *CheckLogUseCase {
	return &CheckLogUseCase{
		repository: repo,
	}
}

// Result contains the outcome of checking one word
type Result struct {
	// Record is the stored check record (nil in dry-run mode)
	Record *model.CheckRecord

	// IsFoo is the classifier's boolean answer for the word
	IsFoo bool

	// CheckErr is the classifier's error for the word, nil unless the word errored
	CheckErr error
}

// Check classifies a word, records the outcome, and returns the result.
// The classifier's own error (the "bar" case) is part of the result, not the
// returned error; only repository failures are returned as errors.
func (uc *CheckLogUseCase) Check(ctx context.Context, word string) (*Result, error) {
	isFoo, checkErr := classify.IsItFoo(word)

	message := ""
	if checkErr != nil {
		message = checkErr.Error()
	}

	rev, err := uc.nextRev(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("failed to determine next revision for %q: %w", word, err)
	}

	record := &model.CheckRecord{
		Word:      word,
		Class:     classify.ClassOf(word),
		Message:   message,
		CheckTime: time.Now().UTC(),
		Rev:       rev,
	}

	if err := uc.repository.Store(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store check record for %q: %w", word, err)
	}

	return &Result{
		Record:   record,
		IsFoo:    isFoo,
		CheckErr: checkErr,
	}, nil
}

// CheckOnly classifies a word without touching the data store
func (uc *CheckLogUseCase) CheckOnly(word string) *Result {
	isFoo, checkErr := classify.IsItFoo(word)
	return &Result{
		IsFoo:    isFoo,
		CheckErr: checkErr,
	}
}

// nextRev returns one more than the highest revision stored for the word.
// The first check of a word gets revision 1.
func (uc *CheckLogUseCase) nextRev(ctx context.Context, word string) (int64, error) {
	records, err := uc.repository.List(ctx)
	if err != nil {
		return 0, err
	}

	var max int64
	for _, record := range records {
		if record.Word == word && record.Rev > max {
			max = record.Rev
		}
	}

	return max + 1, nil
}
