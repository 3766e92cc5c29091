package matcher

import "strings"

// Match reports whether name satisfies pattern using common CLI semantics
// adopted across the project.  A bare "*" matches everything, a trailing "*"
// is equivalent to a prefix match, and any other pattern matches by prefix as
// well, so "int" selects int, int8, int16 and friends.
func Match(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	pattern = strings.TrimSuffix(pattern, "*")
	return strings.HasPrefix(name, pattern)
}
