package ollama

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw      string
		expected string
	}{
		"plain response passes through": {
			raw:      "Add retry logic to the fetch helper",
			expected: "Add retry logic to the fetch helper",
		},
		"surrounding quote pair and trailing period": {
			raw:      `"Update the API client."`,
			expected: "Update the API client",
		},
		"single quote pair": {
			raw:      "'Fix config parsing'",
			expected: "Fix config parsing",
		},
		"mismatched quotes are kept": {
			raw:      `"Fix config parsing'`,
			expected: `"Fix config parsing`,
		},
		"boilerplate preamble": {
			raw:      "Here's a commit message: Fix the off-by-one in pagination",
			expected: "Fix the off-by-one in pagination",
		},
		"commit message prefix": {
			raw:      "Commit message: Remove dead code",
			expected: "Remove dead code",
		},
		"sure prefix": {
			raw:      "Sure, update the docs for the new flag",
			expected: "update the docs for the new flag",
		},
		"internal newlines collapse to spaces": {
			raw:      "Fix parser\nso it handles\nempty input",
			expected: "Fix parser so it handles empty input",
		},
		"trailing code fence artifact": {
			raw:      "Fix flaky websocket test```",
			expected: "Fix flaky websocket test",
		},
		"only one trailing period is stripped": {
			raw:      "Bump deps..",
			expected: "Bump deps.",
		},
		"whitespace only": {
			raw:      "   \n\t ",
			expected: "",
		},
		"empty": {
			raw:      "",
			expected: "",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, Sanitize(tc.raw))
		})
	}
}

func TestSanitizeDoesNotEnforceLength(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", maxAcceptedLength+50)
	assert.Equal(t, long, Sanitize(long), "length acceptance is the generator's decision, not the sanitizer's")
}
