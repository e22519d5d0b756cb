package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// normalizeDay canonicalizes day names to Title case ("monday" -> "Monday")
// so lookups and stored rows agree on one spelling. The first rune is decoded
// as UTF-8, not sliced as a byte.
func normalizeDay(day string) string {
	day = strings.TrimSpace(day)
	if day == "" {
		return day
	}
	first, size := utf8.DecodeRuneInString(day)
	return string(unicode.ToUpper(first)) + strings.ToLower(day[size:])
}

// normalizeCategory lowercases menu categories ("Lunch" -> "lunch").
func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
