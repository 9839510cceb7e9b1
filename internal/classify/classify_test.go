package classify

import (
	"errors"
	"testing"

	"github.com/jmcvetta/isitfoo/internal/wordclass"
)

// Test IsItFoo three-way behavior with various inputs
func TestIsItFoo(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  bool
		expectErr bool
	}{
		// The one foo
		{"exactly foo", "foo", true, false},

		// The error case
		{"exactly bar", "bar", false, true},

		// Everything else is not foo and not an error
		{"other word", "baz", false, false},
		{"empty string", "", false, false},
		{"uppercase foo", "FOO", false, false},
		{"mixed case foo", "Foo", false, false},
		{"uppercase bar", "BAR", false, false},
		{"foo with whitespace", " foo", false, false},
		{"foo as prefix", "foobar", false, false},
		{"foo as suffix", "barfoo", false, false},
		{"unicode word", "füü", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := IsItFoo(tt.input)
			if result != tt.expected {
				t.Errorf("IsItFoo(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
			if tt.expectErr && err == nil {
				t.Errorf("IsItFoo(%q) expected an error, got nil", tt.input)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("IsItFoo(%q) expected no error, got: %v", tt.input, err)
			}
		})
	}
}

// Test that the bar error is the ErrBar sentinel
func TestIsItFoo_BarSentinel(t *testing.T) {
	_, err := IsItFoo("bar")
	if !errors.Is(err, ErrBar) {
		t.Errorf("IsItFoo(\"bar\") error = %v, expected ErrBar", err)
	}
}

// Test that repeated calls with the same input produce the same output
func TestIsItFoo_Idempotent(t *testing.T) {
	for _, word := range []string{"foo", "bar", "baz", ""} {
		firstResult, firstErr := IsItFoo(word)
		for i := 0; i < 10; i++ {
			result, err := IsItFoo(word)
			if result != firstResult {
				t.Errorf("IsItFoo(%q) call %d = %v, first call was %v", word, i, result, firstResult)
			}
			if (err == nil) != (firstErr == nil) {
				t.Errorf("IsItFoo(%q) call %d error = %v, first call was %v", word, i, err, firstErr)
			}
		}
	}
}

// Test ClassOf maps each branch onto its class
func TestClassOf(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected wordclass.Class
	}{
		{"foo is foo class", "foo", wordclass.Foo},
		{"bar is bar class", "bar", wordclass.Bar},
		{"other word", "baz", wordclass.Other},
		{"empty string", "", wordclass.Other},
		{"uppercase foo", "FOO", wordclass.Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassOf(tt.input)
			if result != tt.expected {
				t.Errorf("ClassOf(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}
