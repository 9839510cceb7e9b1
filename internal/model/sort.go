package model

import "sort"

// SortBy specifies the field and order for sorting check records
type SortBy string

const (
	SortByWord      SortBy = "word"
	SortByCheckTime SortBy = "check-time"
	SortByClass     SortBy = "class"
	SortByRev       SortBy = "rev"
	SortByDefault   SortBy = "" // Default sort: word, then check time
)

// SortRecords sorts a slice of check records in place based on the specified field.
// The sortBy parameter should be one of: "word", "check-time", "class", "rev".
// If sortBy is empty or unrecognized, records are sorted by word, then by check time.
// Check-time and rev sorts are newest/highest first.
func SortRecords(records []*CheckRecord, sortBy string) {
	switch SortBy(sortBy) {
	case SortByWord:
		sort.Slice(records, func(i, j int) bool {
			return records[i].Word < records[j].Word
		})
	case SortByCheckTime:
		sort.Slice(records, func(i, j int) bool {
			return records[i].CheckTime.After(records[j].CheckTime)
		})
	case SortByClass:
		sort.Slice(records, func(i, j int) bool {
			return records[i].Class < records[j].Class
		})
	case SortByRev:
		sort.Slice(records, func(i, j int) bool {
			return records[i].Rev > records[j].Rev
		})
	default:
		// Default sort by word, then by check time (oldest first)
		sort.Slice(records, func(i, j int) bool {
			if records[i].Word != records[j].Word {
				return records[i].Word < records[j].Word
			}
			return records[i].CheckTime.Before(records[j].CheckTime)
		})
	}
}
