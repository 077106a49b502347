package magic

import "strings"

// EnsureScheme prepends "http://" unless raw already starts with http:// or
// https:// (compared case-insensitively).
func EnsureScheme(raw string) string {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	return "http://" + raw
}
