package model

import "strings"

// RecordFilter contains criteria for filtering check records with multiple values per field.
// All criteria are optional; only non-empty slices are applied.
// Within each field, values are combined with OR logic (any value matches).
// Between fields, criteria are combined with AND logic (all fields must match).
type RecordFilter struct {
	// Words filters by checked words (case-insensitive, OR within list)
	Words []string

	// Classes filters by class codes (OR within list)
	Classes []string
}

// FilterRecords filters a slice of check records based on the provided criteria.
// Returns a new slice containing only records that match the filter.
// Empty filter slices are ignored (treated as "match all").
func FilterRecords(records []*CheckRecord, filter RecordFilter) []*CheckRecord {
	// If no filters specified, return all records
	if len(filter.Words) == 0 && len(filter.Classes) == 0 {
		return records
	}

	// Create lookup maps for efficient filtering
	wordMap := make(map[string]bool)
	for _, word := range filter.Words {
		wordMap[strings.ToLower(word)] = true
	}

	classMap := make(map[string]bool)
	for _, class := range filter.Classes {
		classMap[class] = true
	}

	var filtered []*CheckRecord

	for _, record := range records {
		// Apply word filter (case-insensitive)
		if len(filter.Words) > 0 && !wordMap[strings.ToLower(record.Word)] {
			continue
		}

		// Apply class filter (exact match on the code)
		if len(filter.Classes) > 0 && !classMap[string(record.Class)] {
			continue
		}

		filtered = append(filtered, record)
	}

	return filtered
}
