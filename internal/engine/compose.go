package engine

import (
	"fmt"
	"strings"
)

// maxMessageLen caps the composed text before final capitalization.
const maxMessageLen = 200

// fallbackMessage is returned when no files and no patterns were seen.
const fallbackMessage = "Update files"

// categoryPhrase describes how a category bucket is rendered in tier-2
// composition. Mass nouns (configuration, documentation) carry no count.
// The code label is intentionally never pluralized.
type categoryPhrase struct {
	category Category
	singular string
	plural   string
	mass     bool
}

var categoryPhrases = []categoryPhrase{
	{CategoryCode, "source code file", "source code file", false},
	{CategoryConfig, "configuration", "", true},
	{CategoryDocs, "documentation", "", true},
	{CategoryTest, "test file", "test files", false},
	{CategoryStyle, "stylesheet", "stylesheets", false},
	{CategoryScript, "script", "scripts", false},
	{CategoryOther, "file", "files", false},
}

// Compose builds the rule-based message text. Two-tier policy: when the
// analyzer found at least one pattern, the primary pattern's action phrase
// leads, enriched with evidence counts; otherwise a per-category update
// summary is produced. The result is capped at maxMessageLen runes and not
// yet capitalized (the orchestrator capitalizes exactly once).
func Compose(buckets map[Category][]StagedFile, ev Evidence, matches []PatternMatch, verbose bool) string {
	var text string
	if len(matches) > 0 {
		text = composeFromPattern(matches[0], ev)
	} else {
		text = composeFromCategories(buckets, verbose)
	}
	return truncateRunes(text, maxMessageLen)
}

// composeFromPattern renders "<action> with <counts>" from the primary
// pattern and the non-empty evidence counts in fixed order. A generic
// "Add " action prefix is dropped when counts follow, so the clause reads
// as one phrase instead of stuttering.
func composeFromPattern(primary PatternMatch, ev Evidence) string {
	parts := make([]string, 0, 4)
	if n := len(ev.Functions); n > 0 {
		parts = append(parts, countPhrase(n, "function", "functions"))
	}
	if n := len(ev.Tests); n > 0 {
		parts = append(parts, countPhrase(n, "test", "tests"))
	}
	if n := len(ev.Imports); n > 0 {
		parts = append(parts, countPhrase(n, "import", "imports"))
	}
	if n := len(ev.Types); n > 0 {
		parts = append(parts, countPhrase(n, "type", "types"))
	}

	action := primary.ActionPhrase
	if len(parts) == 0 {
		return action
	}
	action = strings.TrimPrefix(action, "Add ")
	return action + " with " + strings.Join(parts, ", ")
}

// composeFromCategories renders "Update <phrase>, <phrase>, ..." over the
// non-empty buckets in fixed category order. Verbose mode appends the
// literal file list to each clause.
func composeFromCategories(buckets map[Category][]StagedFile, verbose bool) string {
	var clauses []string
	for _, cp := range categoryPhrases {
		files := buckets[cp.category]
		if len(files) == 0 {
			continue
		}
		clause := cp.render(len(files))
		if verbose {
			clause += " (" + joinPaths(files) + ")"
		}
		clauses = append(clauses, clause)
	}
	if len(clauses) == 0 {
		return fallbackMessage
	}
	return "Update " + strings.Join(clauses, ", ")
}

// render produces the noun phrase for a bucket of the given size.
// Countable categories always carry the count ("1 stylesheet").
func (cp categoryPhrase) render(count int) string {
	if cp.mass {
		return cp.singular
	}
	if count == 1 {
		return "1 " + cp.singular
	}
	return fmt.Sprintf("%d %s", count, cp.plural)
}

// countPhrase pluralizes an evidence count ("1 function", "2 functions").
func countPhrase(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// joinPaths joins the original (case-preserved) paths of a bucket.
func joinPaths(files []StagedFile) string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return strings.Join(paths, ", ")
}

// truncateRunes caps s at n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// DetailBody renders the commit body used by detailed mode: per-category
// file bullets followed by non-empty evidence bullets. Returns "" when
// there is nothing to report.
func DetailBody(a Analysis) string {
	var lines []string
	for _, c := range CategoryOrder {
		if files := a.Buckets[c]; len(files) > 0 {
			lines = append(lines, fmt.Sprintf("- %s: %s", c, joinPaths(files)))
		}
	}
	if len(a.Evidence.Functions) > 0 {
		lines = append(lines, "- functions: "+strings.Join(a.Evidence.Functions, ", "))
	}
	if len(a.Evidence.Imports) > 0 {
		lines = append(lines, "- imports: "+strings.Join(a.Evidence.Imports, ", "))
	}
	if len(a.Evidence.Types) > 0 {
		lines = append(lines, "- types: "+strings.Join(a.Evidence.Types, ", "))
	}
	if len(a.Evidence.Configs) > 0 {
		lines = append(lines, "- config keys: "+strings.Join(a.Evidence.Configs, ", "))
	}
	return strings.Join(lines, "\n")
}
