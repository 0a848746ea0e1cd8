package ollama

import (
	"regexp"
	"strings"
)

// maxAcceptedLength is the exclusive upper bound on a sanitized response.
// Responses of length 0 or >= this ceiling are rejected.
const maxAcceptedLength = 100

var (
	// boilerplateExprs strip known preambles models like to add.
	boilerplateExprs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^here(?:'s| is)(?: a| the)?(?: suggested| possible| short)? commit message:?\s*`),
		regexp.MustCompile(`(?i)^(?:suggested |proposed )?commit message:?\s*`),
		regexp.MustCompile(`(?i)^sure[,!.]?\s*`),
	}

	// whitespaceExpr collapses newline and whitespace runs to one space.
	whitespaceExpr = regexp.MustCompile(`\s+`)

	// artifactSuffixExpr strips trailing generation artifacts (stray code
	// fences, backticks, dangling quotes).
	artifactSuffixExpr = regexp.MustCompile("(?:```|`|\\\"|')+$")
)

// Sanitize cleans a raw model response into a candidate subject line:
// trims whitespace, strips one surrounding quote pair, strips boilerplate
// preambles, collapses internal newlines to spaces, strips trailing
// artifacts, strips a single trailing period, and keeps only the first
// line. Length acceptance is the caller's decision.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	s = stripQuotePair(s)

	for _, expr := range boilerplateExprs {
		s = expr.ReplaceAllString(s, "")
	}

	s = whitespaceExpr.ReplaceAllString(s, " ")
	s = artifactSuffixExpr.ReplaceAllString(s, "")
	s = strings.TrimSuffix(s, ".")
	s = strings.TrimSpace(s)

	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return s
}

// stripQuotePair removes exactly one pair of matching surrounding quotes.
func stripQuotePair(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first != last {
		return s
	}
	switch first {
	case '"', '\'', '`':
		return s[1 : len(s)-1]
	}
	return s
}
