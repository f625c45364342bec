// Package naming derives Rust enum variant names from item identifiers.
package naming

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NamespacePrefix is the only namespace stripped from identifiers. Other
// namespaces are kept verbatim, colon included.
const NamespacePrefix = "minecraft:"

// VariantName converts a raw item identifier such as "minecraft:oak_log"
// into a PascalCase variant name ("OakLog").
func VariantName(raw string) string {
	name := strings.ReplaceAll(raw, NamespacePrefix, "")
	name = strings.ReplaceAll(name, "_", " ")

	words := strings.Split(name, " ")
	var result strings.Builder
	for _, word := range words {
		result.WriteString(titleWord(word))
	}
	return result.String()
}

// titleWord upper-cases the first rune of word and lower-cases the rest.
// Only spaces separate words: "a-b" stays one word and becomes "A-b".
func titleWord(word string) string {
	if word == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(word)
	// Casers are stateful, so fresh ones per call.
	return cases.Upper(language.Und).String(string(r)) + cases.Lower(language.Und).String(word[size:])
}

// VariantNames maps VariantName over ids, preserving order and duplicates.
func VariantNames(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = VariantName(id)
	}
	return out
}

// Duplicates returns the variant names that occur more than once, in order of
// their second occurrence.
func Duplicates(names []string) []string {
	seen := make(map[string]int, len(names))
	var dups []string
	for _, n := range names {
		seen[n]++
		if seen[n] == 2 {
			dups = append(dups, n)
		}
	}
	return dups
}
