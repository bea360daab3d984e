// Package kotlin extracts declaration tags from Kotlin source text.
//
// It is not a Kotlin parser. A tokenizer classifies the character stream one
// token at a time, and a declaration scanner recognizes the keyword-and-name
// shapes that introduce classes, interfaces, objects, functions (including
// extension functions), typealiases, and compile-time constants. Everything
// else is skipped by delimiter balance or discarded to the end of the line,
// so a single construct the scanner does not understand costs at most one
// declaration.
package kotlin

import "strings"

// Keyword identifies which recognized keyword or modifier an identifier
// matched, or KeywordNone.
type Keyword int

const (
	KeywordNone Keyword = iota

	KeywordPackage
	KeywordImport
	KeywordClass
	KeywordInterface
	KeywordTypealias
	KeywordFun
	KeywordVal
	KeywordVar
	KeywordObject
	KeywordConst

	ModifierPrivate
	ModifierProtected
	ModifierPublic
	ModifierInternal
	ModifierSealed
	ModifierEnum
	ModifierAbstract
	ModifierOpen
	ModifierOverride
	ModifierFinal
	ModifierSuspend
)

// KeywordTable maps keyword spellings to ids. Immutable after construction;
// lookups are case-insensitive.
type KeywordTable struct {
	byName map[string]Keyword
}

// DefaultKeywords is the table of the keyword/modifier subset needed to
// recognize declaration headers. Built once, shared by reference.
var DefaultKeywords = NewKeywordTable()

// NewKeywordTable builds the fixed keyword table.
func NewKeywordTable() *KeywordTable {
	return &KeywordTable{byName: map[string]Keyword{
		"package":   KeywordPackage,
		"import":    KeywordImport,
		"class":     KeywordClass,
		"interface": KeywordInterface,
		"typealias": KeywordTypealias,
		"fun":       KeywordFun,
		"val":       KeywordVal,
		"var":       KeywordVar,
		"object":    KeywordObject,
		"const":     KeywordConst,
		"private":   ModifierPrivate,
		"protected": ModifierProtected,
		"public":    ModifierPublic,
		"internal":  ModifierInternal,
		"sealed":    ModifierSealed,
		"enum":      ModifierEnum,
		"abstract":  ModifierAbstract,
		"open":      ModifierOpen,
		"override":  ModifierOverride,
		"final":     ModifierFinal,
		"suspend":   ModifierSuspend,
	}}
}

// Lookup returns the keyword id for text, or KeywordNone.
func (t *KeywordTable) Lookup(text string) Keyword {
	kw, ok := t.byName[strings.ToLower(text)]
	if !ok {
		return KeywordNone
	}
	return kw
}
