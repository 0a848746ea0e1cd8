package engine

import "strings"

// Extension sets for the categorization chain. Shared with evidence
// extraction, which gates evidence kinds on the same predicates.
var (
	codeExtensions = map[string]bool{
		".go": true, ".js": true, ".ts": true, ".jsx": true, ".tsx": true,
		".py": true, ".rb": true, ".java": true, ".c": true, ".h": true,
		".cpp": true, ".cc": true, ".hpp": true, ".cs": true, ".rs": true,
		".php": true, ".swift": true, ".kt": true, ".scala": true,
		".ex": true, ".exs": true,
	}

	configExtensions = map[string]bool{
		".json": true, ".yml": true, ".yaml": true, ".toml": true,
		".ini": true, ".env": true, ".conf": true, ".cfg": true,
		".lock": true, ".properties": true,
	}

	docExtensions = map[string]bool{
		".md": true, ".txt": true, ".rst": true, ".adoc": true,
	}

	styleExtensions = map[string]bool{
		".css": true, ".scss": true, ".sass": true, ".less": true,
		".styl": true, ".vue": true, ".svelte": true, ".html": true,
	}

	scriptExtensions = map[string]bool{
		".sh": true, ".bash": true, ".zsh": true, ".fish": true,
		".ps1": true, ".bat": true, ".cmd": true, ".awk": true,
	}
)

// categoryRule is one step of the classification chain.
type categoryRule struct {
	category Category
	matches  func(f StagedFile) bool
}

// categoryChain is the fixed priority chain, evaluated top to bottom per
// file, first match wins. Order is load-bearing: a .test.js file is code
// because the code rule fires before the test rule.
var categoryChain = []categoryRule{
	{CategoryCode, func(f StagedFile) bool {
		return codeExtensions[f.Extension]
	}},
	{CategoryConfig, isConfigFile},
	{CategoryDocs, func(f StagedFile) bool {
		return docExtensions[f.Extension] ||
			strings.Contains(f.Basename, "readme") ||
			strings.Contains(f.Basename, "doc") ||
			strings.Contains(f.Basename, "changelog")
	}},
	{CategoryTest, isTestFile},
	{CategoryStyle, func(f StagedFile) bool {
		return styleExtensions[f.Extension]
	}},
	{CategoryScript, func(f StagedFile) bool {
		return scriptExtensions[f.Extension]
	}},
}

// isConfigFile reports whether a file is configuration by extension or by
// basename (package manifests, config files, version-control markers).
func isConfigFile(f StagedFile) bool {
	return configExtensions[f.Extension] ||
		strings.Contains(f.Basename, "package") ||
		strings.Contains(f.Basename, "config") ||
		strings.HasPrefix(f.Basename, ".git")
}

// isTestFile reports whether a file is test-named. Used both as the test
// category rule and as the gate for test-assertion evidence.
func isTestFile(f StagedFile) bool {
	return strings.Contains(f.Basename, "test") ||
		strings.Contains(f.Basename, "spec") ||
		strings.Contains(f.Basename, ".test.") ||
		strings.Contains(f.Basename, ".spec.")
}

// Categorize partitions the staged files into the seven category buckets.
// Every file lands in exactly one bucket; files matching no rule fall
// through to CategoryOther. Pure and deterministic.
func Categorize(files []StagedFile) map[Category][]StagedFile {
	buckets := make(map[Category][]StagedFile)
	for _, f := range files {
		c := categorize(f)
		buckets[c] = append(buckets[c], f)
	}
	return buckets
}

func categorize(f StagedFile) Category {
	for _, rule := range categoryChain {
		if rule.matches(f) {
			return rule.category
		}
	}
	return CategoryOther
}
