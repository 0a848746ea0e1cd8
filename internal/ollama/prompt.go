package ollama

import (
	"strings"

	"github.com/ariel-frischer/gitmsg/internal/engine"
)

// truncationMarker is appended when the diff excerpt is cut.
const truncationMarker = "\n…[diff truncated]"

// styleGuidelines bias the model toward a usable subject line.
const styleGuidelines = "Respond with only the commit message, nothing else. " +
	"Use present tense and imperative mood. " +
	"Keep it under 72 characters. Do not end with a period."

// buildPrompt embeds the comma-joined file list and either the primary
// pattern action (when the analyzer found one) or a bounded diff excerpt.
func buildPrompt(files []engine.StagedFile, diffText, primaryAction string, maxDiffBytes int) string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	fileList := strings.Join(paths, ", ")

	var b strings.Builder
	b.WriteString("Write a one-line git commit message for staged changes to these files: ")
	b.WriteString(fileList)
	b.WriteString(".\n")

	if primaryAction != "" {
		b.WriteString("The main change is: ")
		b.WriteString(primaryAction)
		b.WriteString(".\n")
	} else {
		b.WriteString("The staged diff:\n")
		b.WriteString(trimTo(diffText, maxDiffBytes))
		b.WriteString("\n")
	}

	b.WriteString(styleGuidelines)
	return b.String()
}

// trimTo limits s to max bytes, cutting on a line boundary where possible
// and marking the truncation.
func trimTo(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	head := s[:max]
	if idx := strings.LastIndex(head, "\n"); idx > 0 {
		head = head[:idx]
	}
	return head + truncationMarker
}
