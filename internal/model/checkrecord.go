package model

import (
	"time"

	"github.com/jmcvetta/isitfoo/internal/wordclass"
)

// CheckRecord represents one classifier check and its outcome
type CheckRecord struct {
	Word      string
	Class     wordclass.Class
	Message   string
	CheckTime time.Time
	Rev       int64
}

// CheckKey returns the check time in the form used as the record's sort key.
// RFC 3339 with nanoseconds keeps keys unique across repeated checks of a word.
func (r *CheckRecord) CheckKey() string {
	return r.CheckTime.UTC().Format(time.RFC3339Nano)
}

// GroupByWord groups check records by their word
func GroupByWord(records []*CheckRecord) map[string][]*CheckRecord {
	grouped := make(map[string][]*CheckRecord)
	for _, record := range records {
		grouped[record.Word] = append(grouped[record.Word], record)
	}
	return grouped
}
