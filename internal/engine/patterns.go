package engine

import (
	"regexp"
	"strings"
)

// maxScanLine bounds the diff lines the scanners look at. Lines longer
// than this (minified bundles, embedded blobs) are skipped entirely.
const maxScanLine = 1000

// Pattern kinds, one per signature family.
const (
	KindDebugLoggingAdded   PatternKind = "debug-logging-added"
	KindDebugLoggingRemoved PatternKind = "debug-logging-removed"
	KindMarkersAdded        PatternKind = "markers-added"
	KindExportsAdded        PatternKind = "exports-added"
	KindLinterConfigAdded   PatternKind = "linter-config-added"
	KindTestsAdded          PatternKind = "tests-added"
	KindTestsRemoved        PatternKind = "tests-removed"
	KindErrorHandlingAdded  PatternKind = "error-handling-added"
	KindAsyncAdded          PatternKind = "async-added"
	KindHTTPAdded           PatternKind = "http-added"
	KindUIAdded             PatternKind = "ui-added"
	KindRoutingAdded        PatternKind = "routing-added"
	KindPersistenceAdded    PatternKind = "persistence-added"
	KindAuthAdded           PatternKind = "auth-added"
	KindValidationAdded     PatternKind = "validation-added"
)

// signature is one declared entry of the change-signature catalogue.
type signature struct {
	kind   PatternKind
	action string
	expr   *regexp.Regexp
}

// signatureCatalogue is the fixed, ordered signature catalogue. Catalogue
// order is the documented tie-break: earlier entries win as the primary
// pattern regardless of where they match in the diff. Each expression is
// tested once against the bounded diff text.
var signatureCatalogue = []signature{
	{KindDebugLoggingAdded, "Add debug logging",
		regexp.MustCompile(`(?m)^\+.*(console\.(log|debug|warn|error)|fmt\.Print|log\.(Print|Debug|Info)|logger\.(debug|info|warn|error)|println!|puts )`)},
	{KindDebugLoggingRemoved, "Remove debug logging",
		regexp.MustCompile(`(?m)^-[^-].*(console\.(log|debug|warn|error)|fmt\.Print|log\.(Print|Debug|Info)|logger\.(debug|info|warn|error))`)},
	{KindMarkersAdded, "Add TODO markers",
		regexp.MustCompile(`(?m)^\+.*\b(TODO|FIXME|XXX|HACK)\b`)},
	{KindExportsAdded, "Add module exports",
		regexp.MustCompile(`(?m)^\+.*(module\.exports|export\s+(default|const|function|class|interface|type)\b)`)},
	{KindLinterConfigAdded, "Update linter configuration",
		regexp.MustCompile(`(?m)^\+.*(eslint|prettier|golangci|rubocop|flake8|stylelint)`)},
	{KindTestsAdded, "Add tests",
		regexp.MustCompile(`(?m)^\+.*(\bassert|expect\(|\bit\(|\bdescribe\(|t\.Run\()`)},
	{KindTestsRemoved, "Remove tests",
		regexp.MustCompile(`(?m)^-[^-].*(\bassert|expect\(|\bit\(|\bdescribe\(|t\.Run\()`)},
	{KindErrorHandlingAdded, "Improve error handling",
		regexp.MustCompile(`(?m)^\+.*(\btry\s*{|\bcatch\s*[({]|if err != nil|\brescue\b|\bexcept\s)`)},
	{KindAsyncAdded, "Implement async operations",
		regexp.MustCompile(`(?m)^\+.*(\basync\s|\bawait\s|\.then\(|go func\(|\bPromise\b)`)},
	{KindHTTPAdded, "Add HTTP requests",
		regexp.MustCompile(`(?m)^\+.*(\bfetch\(|axios\.|http\.(Get|Post|NewRequest)|XMLHttpRequest|requests\.(get|post))`)},
	{KindUIAdded, "Update UI components",
		regexp.MustCompile(`(?m)^\+.*(useState\(|useEffect\(|useMemo\(|useCallback\(|React\.Component|\brender\()`)},
	{KindRoutingAdded, "Update routing",
		regexp.MustCompile(`(?m)^\+.*(router\.|app\.(get|post|put|delete|patch)\(|\bRoute\b|@(Get|Post|Put|Delete)Mapping)`)},
	{KindPersistenceAdded, "Add database operations",
		regexp.MustCompile(`(?m)^\+.*(SELECT\s|INSERT INTO|UPDATE\s+\w+\s+SET|\.query\(|findOne\(|findAll\(|\.save\(|CREATE TABLE)`)},
	{KindAuthAdded, "Implement authentication",
		regexp.MustCompile(`(?m)^\+.*(\bjwt\b|bcrypt|passport|authenticate|authorization|access[_ ]?token)`)},
	{KindValidationAdded, "Add input validation",
		regexp.MustCompile(`(?m)^\+.*(\bvalidate|\bvalidator\b|\bsanitize|joi\.|zod\.|yup\.)`)},
}

// Detect tests each catalogue signature once against the bounded diff text
// and returns the matches in catalogue declaration order, at most one per
// kind. The first returned match is the primary pattern.
func Detect(diffText string) []PatternMatch {
	scanText := boundedDiff(diffText)

	var matches []PatternMatch
	seen := make(map[PatternKind]bool)
	for _, sig := range signatureCatalogue {
		if seen[sig.kind] {
			continue
		}
		if sig.expr.MatchString(scanText) {
			seen[sig.kind] = true
			matches = append(matches, PatternMatch{Kind: sig.kind, ActionPhrase: sig.action})
		}
	}
	return matches
}

// boundedDiff drops file header lines (+++/---), which would otherwise
// let signatures fire on path names, and lines longer than maxScanLine so
// the expressions never run over pathological input.
func boundedDiff(diffText string) string {
	if len(diffText) == 0 {
		return ""
	}
	lines := strings.Split(diffText, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if len(line) > maxScanLine {
			continue
		}
		if strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
