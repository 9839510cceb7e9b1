package model

import (
	"testing"
	"time"

	"github.com/jmcvetta/isitfoo/internal/wordclass"
)

func makeUnsortedRecords() []*CheckRecord {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return []*CheckRecord{
		{Word: "baz", Class: wordclass.Other, CheckTime: base.Add(3 * time.Hour), Rev: 1},
		{Word: "foo", Class: wordclass.Foo, CheckTime: base.Add(time.Hour), Rev: 2},
		{Word: "bar", Class: wordclass.Bar, CheckTime: base.Add(2 * time.Hour), Rev: 1},
		{Word: "foo", Class: wordclass.Foo, CheckTime: base, Rev: 1},
	}
}

// Test sorting by word
func TestSortRecords_ByWord(t *testing.T) {
	records := makeUnsortedRecords()
	SortRecords(records, "word")

	expected := []string{"bar", "baz", "foo", "foo"}
	for i, word := range expected {
		if records[i].Word != word {
			t.Errorf("Position %d: expected word %q, got %q", i, word, records[i].Word)
		}
	}
}

// Test sorting by check time puts newest first
func TestSortRecords_ByCheckTime(t *testing.T) {
	records := makeUnsortedRecords()
	SortRecords(records, "check-time")

	for i := 1; i < len(records); i++ {
		if records[i].CheckTime.After(records[i-1].CheckTime) {
			t.Errorf("Position %d is newer than position %d", i, i-1)
		}
	}
}

// Test sorting by rev puts highest first
func TestSortRecords_ByRev(t *testing.T) {
	records := makeUnsortedRecords()
	SortRecords(records, "rev")

	if records[0].Rev != 2 {
		t.Errorf("Expected highest rev first, got rev %d", records[0].Rev)
	}
}

// Test sorting by class
func TestSortRecords_ByClass(t *testing.T) {
	records := makeUnsortedRecords()
	SortRecords(records, "class")

	// Class codes sort as b < f < o
	expected := []wordclass.Class{wordclass.Bar, wordclass.Foo, wordclass.Foo, wordclass.Other}
	for i, class := range expected {
		if records[i].Class != class {
			t.Errorf("Position %d: expected class %q, got %q", i, class, records[i].Class)
		}
	}
}

// Test default sort is word, then check time oldest first
func TestSortRecords_Default(t *testing.T) {
	records := makeUnsortedRecords()
	SortRecords(records, "")

	expected := []struct {
		word string
		rev  int64
	}{
		{"bar", 1},
		{"baz", 1},
		{"foo", 1},
		{"foo", 2},
	}
	for i, e := range expected {
		if records[i].Word != e.word || records[i].Rev != e.rev {
			t.Errorf("Position %d: expected %s rev %d, got %s rev %d",
				i, e.word, e.rev, records[i].Word, records[i].Rev)
		}
	}
}

// Test unrecognized sort field falls back to the default order
func TestSortRecords_Unrecognized(t *testing.T) {
	records := makeUnsortedRecords()
	SortRecords(records, "bogus")

	if records[0].Word != "bar" {
		t.Errorf("Expected default order for unrecognized sort, got %q first", records[0].Word)
	}
}
