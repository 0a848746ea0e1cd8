package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		diff     string
		expected []PatternKind
	}{
		"no matches": {
			diff:     "+const x = 1;\n-const y = 2;\n",
			expected: nil,
		},
		"debug logging added": {
			diff:     "+console.log('here');\n",
			expected: []PatternKind{KindDebugLoggingAdded},
		},
		"debug logging removed": {
			diff:     "-console.log('here');\n",
			expected: []PatternKind{KindDebugLoggingRemoved},
		},
		"error handling": {
			diff:     "+\tif err != nil {\n",
			expected: []PatternKind{KindErrorHandlingAdded},
		},
		"async and http together": {
			diff:     "+async function load() {\n+  return fetch('/x');\n+}\n",
			expected: []PatternKind{KindAsyncAdded, KindHTTPAdded},
		},
		"file header is not a removal": {
			diff:     "--- a/assertions.test.js\n+++ b/assertions.test.js\n",
			expected: nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			matches := Detect(tc.diff)
			kinds := make([]PatternKind, 0, len(matches))
			for _, m := range matches {
				kinds = append(kinds, m.Kind)
			}
			if tc.expected == nil {
				assert.Empty(t, kinds)
				return
			}
			assert.Equal(t, tc.expected, kinds)
		})
	}
}

// The primary pattern is decided by catalogue order, not by where the
// signatures match inside the diff.
func TestDetectTieBreakFollowsCatalogueOrder(t *testing.T) {
	t.Parallel()

	todoFirst := "+// TODO: clean this up\n+console.log('x');\n"
	logFirst := "+console.log('x');\n+// TODO: clean this up\n"

	for name, diff := range map[string]string{"todo first": todoFirst, "log first": logFirst} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			matches := Detect(diff)
			require.NotEmpty(t, matches)
			assert.Equal(t, KindDebugLoggingAdded, matches[0].Kind)
			assert.Equal(t, KindMarkersAdded, matches[1].Kind)
		})
	}
}

func TestDetectSkipsOverlongLines(t *testing.T) {
	t.Parallel()

	long := "+console.log(" + strings.Repeat("x", maxScanLine+10) + ");"
	assert.Empty(t, Detect(long))

	mixed := long + "\n+// TODO: keep this one\n"
	matches := Detect(mixed)
	require.Len(t, matches, 1)
	assert.Equal(t, KindMarkersAdded, matches[0].Kind)
}

func TestDetectAtMostOneMatchPerKind(t *testing.T) {
	t.Parallel()

	diff := "+console.log('a');\n+console.debug('b');\n+fmt.Println(\"c\")\n"
	matches := Detect(diff)
	require.Len(t, matches, 1)
	assert.Equal(t, KindDebugLoggingAdded, matches[0].Kind)
	assert.Equal(t, "Add debug logging", matches[0].ActionPhrase)
}
