package util

import "strings"

// TruncateString truncates a string to maxRunes characters (rune-based, not
// byte-based) without appending an ellipsis; prompt budgets are hard limits.
func TruncateString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}

// Normalize performs basic string normalization (lowercase + trim).
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
