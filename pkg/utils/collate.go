package utils

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NewCollator returns a case-insensitive English collator for ordering
// product names. Collators are not safe for concurrent use; build one per sort.
func NewCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}
