package trmorph

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// turkishLower is a cases.Caser configured for Turkish, so that "I" maps
// to "ı" and "İ" maps to "i" instead of the default (non-dotted-I-aware)
// folding strings.ToLower would apply. Out of scope here: sentence
// casing, locale-sensitive collation.
var turkishLower = cases.Lower(language.Turkish)

// Tokenize splits text into words, dropping punctuation and whitespace.
// Tokenization and formatting are explicitly out of the core's scope
// (spec.md §1); this is the minimal word splitter the REST/REPL front
// ends need to turn free text into AnalyzeWord calls.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r))
	})
}

// NormalizeForLookup lowercases word using Turkish casing rules, the form
// the lexicon and stem-transition index expect analysis input in.
func NormalizeForLookup(word string) string {
	return turkishLower.String(word)
}
