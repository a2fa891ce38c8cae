package validator

import (
	"strings"
	"unicode/utf8"
)

// NotBlank returns true if a string is not empty or whitespace only.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MinRunes returns true if a string holds at least n runes.
func MinRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) >= n
}

// MaxRunes returns true if a string holds at most n runes.
func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

// In returns true if a value appears in the list.
func In[T comparable](value T, list ...T) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}

// NoDuplicates returns true if every value in the slice is unique.
func NoDuplicates[T comparable](values []T) bool {
	seen := make(map[T]struct{}, len(values))
	for _, value := range values {
		seen[value] = struct{}{}
	}
	return len(values) == len(seen)
}

// Between returns true if n lies in the inclusive range [low, high].
func Between[T int | int64 | uint64](n, low, high T) bool {
	return n >= low && n <= high
}
