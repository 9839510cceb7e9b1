package wordclass

import "strings"

// Class identifies which branch of the classifier a word took
type Class string

const (
	Foo   Class = "f"
	Bar   Class = "b"
	Other Class = "o"
)

// ClassNameToCode maps human-readable class names to their single-character codes
var ClassNameToCode = map[string]string{
	"foo":   "f",
	"bar":   "b",
	"other": "o",
}

// ClassCodeToName maps single-character codes to their human-readable names
var ClassCodeToName = map[string]string{
	"f": "foo",
	"b": "bar",
	"o": "other",
}

func ValidClassesText() string {
	validClasses := make([]string, 0, len(ClassNameToCode))
	for name := range ClassNameToCode {
		validClasses = append(validClasses, name)
	}
	return "Valid classes: " + strings.Join(validClasses, ", ")
}
