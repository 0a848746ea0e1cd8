package engine

import (
	"regexp"
	"strings"
)

// Extraction expressions per evidence kind. Symbol expressions yield the
// declared identifier in the first capture group.
var (
	symbolExprs = []*regexp.Regexp{
		regexp.MustCompile(`^(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s*([A-Za-z_$][\w$]*)`),
		regexp.MustCompile(`^func\s+(?:\([^)]*\)\s+)?([A-Za-z_]\w*)`),
		regexp.MustCompile(`^(?:async\s+)?def\s+([A-Za-z_]\w*)`),
		regexp.MustCompile(`^(?:export\s+)?(?:abstract\s+)?class\s+([A-Za-z_$][\w$]*)`),
		regexp.MustCompile(`^(?:export\s+)?(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s*)?(?:\([^)]*\)|[A-Za-z_$][\w$]*)\s*=>`),
	}

	typeExprs = []*regexp.Regexp{
		regexp.MustCompile(`^type\s+([A-Za-z_]\w*)\s+(?:struct|interface)\b`),
		regexp.MustCompile(`^(?:export\s+)?(?:interface|enum)\s+([A-Za-z_$][\w$]*)`),
		regexp.MustCompile(`^(?:export\s+)?type\s+([A-Za-z_$][\w$]*)\s*=`),
	}

	importExprs = []*regexp.Regexp{
		regexp.MustCompile(`^import\s+(?:[\w{},*\s]+from\s+)?['"]([^'"]+)['"]`),
		regexp.MustCompile(`require\(['"]([^'"]+)['"]\)`),
		regexp.MustCompile(`^from\s+([\w.]+)\s+import\b`),
		regexp.MustCompile(`^import\s+"([^"]+)"`),
	}

	assertionExpr = regexp.MustCompile(`\bassert|expect\(|\bit\(|\bdescribe\(|t\.(Run|Error|Errorf|Fatal|Fatalf)\(|\.to(Be|Equal|Contain)`)

	configKeyExpr = regexp.MustCompile(`^"?([A-Za-z_][\w.-]*)"?\s*[:=]`)
)

// Extract scans the diff per staged file and aggregates evidence. Only
// added lines contribute imports, config keys, and types; symbol names are
// taken from both added and removed lines. Each file contributes only the
// evidence kinds its extension or basename implies. Entries are
// deduplicated in first-seen order.
func Extract(files []StagedFile, diffText string) Evidence {
	var ev Evidence
	seen := map[string]map[string]bool{
		"functions": {}, "tests": {}, "imports": {}, "types": {}, "configs": {},
	}

	for _, sec := range splitSections(diffText) {
		f, ok := matchFile(files, sec.path)
		if !ok {
			continue
		}

		code := codeExtensions[f.Extension]
		test := isTestFile(f)
		conf := isConfigFile(f)

		for _, line := range sec.lines {
			if len(line) > maxScanLine {
				continue
			}
			added, removed, content := classifyLine(line)
			if !added && !removed {
				continue
			}

			if code {
				for _, expr := range symbolExprs {
					if m := expr.FindStringSubmatch(content); m != nil {
						ev.Functions = appendUnique(ev.Functions, m[1], seen["functions"])
						break
					}
				}
			}
			if !added {
				continue
			}
			if code {
				for _, expr := range typeExprs {
					if m := expr.FindStringSubmatch(content); m != nil {
						ev.Types = appendUnique(ev.Types, m[1], seen["types"])
						break
					}
				}
				for _, expr := range importExprs {
					if m := expr.FindStringSubmatch(content); m != nil {
						ev.Imports = appendUnique(ev.Imports, m[1], seen["imports"])
						break
					}
				}
			}
			if test && assertionExpr.MatchString(content) {
				ev.Tests = appendUnique(ev.Tests, content, seen["tests"])
			}
			if conf {
				if m := configKeyExpr.FindStringSubmatch(content); m != nil {
					ev.Configs = appendUnique(ev.Configs, m[1], seen["configs"])
				}
			}
		}
	}
	return ev
}

// section is the diff hunk group belonging to a single file.
type section struct {
	path  string
	lines []string
}

// splitSections groups diff lines by their "+++ b/<path>" file header.
// Lines before the first header (or in sections with no usable header,
// such as binary file notices) are dropped.
func splitSections(diffText string) []section {
	var sections []section
	var current *section

	for _, line := range strings.Split(diffText, "\n") {
		if strings.HasPrefix(line, "+++ ") {
			path := strings.TrimPrefix(strings.TrimPrefix(line, "+++ "), "b/")
			sections = append(sections, section{path: path})
			current = &sections[len(sections)-1]
			continue
		}
		if current != nil {
			current.lines = append(current.lines, line)
		}
	}
	return sections
}

// matchFile resolves a diff section path back to its staged file.
func matchFile(files []StagedFile, path string) (StagedFile, bool) {
	for _, f := range files {
		if f.Path == path {
			return f, true
		}
	}
	return StagedFile{}, false
}

// classifyLine strips the diff marker and reports whether the line was
// added or removed. File headers (+++/---) count as neither.
func classifyLine(line string) (added, removed bool, content string) {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return false, false, ""
	case strings.HasPrefix(line, "+"):
		return true, false, strings.TrimSpace(line[1:])
	case strings.HasPrefix(line, "-"):
		return false, true, strings.TrimSpace(line[1:])
	}
	return false, false, ""
}

// appendUnique appends value unless already seen, preserving first-seen order.
func appendUnique(list []string, value string, seen map[string]bool) []string {
	if value == "" || seen[value] {
		return list
	}
	seen[value] = true
	return append(list, value)
}
