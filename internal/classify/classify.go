package classify

import (
	"errors"

	"github.com/jmcvetta/isitfoo/internal/wordclass"
)

// ErrBar is returned when the classifier is asked about "bar".
var ErrBar = errors.New("bar is forbidden")

// IsItFoo reports whether word is exactly "foo".
// Asking about "bar" is an error; every other word simply isn't foo.
// Comparison is case-sensitive, so "FOO" isn't foo either.
func IsItFoo(word string) (bool, error) {
	if word == "foo" {
		return true, nil
	}
	if word == "bar" {
		return false, ErrBar
	}
	return false, nil
}

// ClassOf maps a word onto the classifier branch it takes
func ClassOf(word string) wordclass.Class {
	isFoo, err := IsItFoo(word)
	switch {
	case isFoo:
		return wordclass.Foo
	case err != nil:
		return wordclass.Bar
	default:
		return wordclass.Other
	}
}
