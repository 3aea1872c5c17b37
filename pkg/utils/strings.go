package utils

import "strings"

func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// CollapseWhitespace removes all whitespace runs from s.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
