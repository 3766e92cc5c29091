package matcher

import "testing"

func TestMatch(t *testing.T) {
	var testCases = []struct {
		pattern   string
		candidate string
		matched   bool
	}{
		{"*", "anything", true},
		{"", "anything", false},

		// Exact matches
		{"decimal", "decimal", true},
		{"timezone", "timezone", true},

		// Prefix matches
		{"int", "int64", true},
		{"int", "int8", true},
		{"float", "float32", true},
		{"dec", "decimal", true},
		{"date", "decimal", false},

		// Trailing star behaves like a prefix
		{"int*", "int16", true},
		{"int*", "int", true},
		{"char*", "date", false},
	}

	for i, tc := range testCases {
		if got := Match(tc.pattern, tc.candidate); got != tc.matched {
			t.Fatalf("[%d] Match(%q, %q) = %v; expected %v", i, tc.pattern, tc.candidate, got, tc.matched)
		}
	}
}
