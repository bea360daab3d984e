// Package index builds and queries the in-memory tag index: name tokenization,
// lookup, and output formatting. Pure logic — persistence lives in the bbolt
// adapter and extraction in the kotlin scanner.
package index

import (
	"strings"
	"unicode"
)

// Tokenize splits a tag name or query into normalized subtokens so that
// "maxRetryCount" is findable as "max", "retry", or "count".
// Rules:
//  1. Split on underscore, dot, hyphen, slash, whitespace
//  2. CamelCase split
//  3. Lowercase
//  4. Discard tokens shorter than 2 characters
func Tokenize(input string) []string {
	if len(input) == 0 {
		return nil
	}

	var tokens []string
	for _, part := range strings.FieldsFunc(input, func(r rune) bool {
		return r == '_' || r == '.' || r == '-' || r == '/' || unicode.IsSpace(r)
	}) {
		for _, tok := range splitCamelCase(part) {
			tok = strings.ToLower(tok)
			if len(tok) >= 2 {
				tokens = append(tokens, tok)
			}
		}
	}

	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// splitCamelCase splits on case and letter/digit boundaries:
//
//	"maxRetryCount" -> ["max", "Retry", "Count"]
//	"HTTPClient"    -> ["HTTP", "Client"]
//	"handler404"    -> ["handler", "404"]
func splitCamelCase(s string) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	var parts []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]

		split := false
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(cur):
			split = true
		case unicode.IsLetter(prev) && unicode.IsDigit(cur):
			split = true
		case unicode.IsDigit(prev) && unicode.IsLetter(cur):
			split = true
		case unicode.IsUpper(prev) && unicode.IsUpper(cur):
			// Acronym run ending before a lowercase: "HTTPClient" splits
			// before 'C'.
			if i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				split = true
			}
		}

		if split {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	parts = append(parts, string(runes[start:]))
	return parts
}
