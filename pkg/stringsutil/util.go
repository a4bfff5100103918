package stringsutil

import "strings"

// SplitList splits a separated list, trimming blanks and dropping empty
// entries: "a, b,," -> ["a" "b"].
func SplitList(s, sep string) []string {
	var result []string

	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}

	return result
}
