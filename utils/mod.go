package utils

import "strings"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// NormalizeAnswer canonicalizes answer text for duplicate detection:
// lowercase, collapsed whitespace.
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
