// Package engine synthesizes a one-line commit message from the staged
// file list and the staged unified diff. It categorizes files, scans the
// diff for change signatures and evidence (declared symbols, imports,
// assertions, types, config keys), and composes a rule-based message.
// A remote generator may be plugged in via the RemoteSource interface;
// when it declines or fails, composition always falls back to the rules.
//
// All analysis is pattern matching over raw diff text, not parsing. Lines
// longer than maxScanLine bytes are skipped so pathological diffs (minified
// bundles, binary noise) stay bounded.
package engine

import (
	"path/filepath"
	"strings"
)

// StagedFile is a staged path with its matching fields derived once.
// Extension and Basename are lower-cased; Path keeps its original casing.
type StagedFile struct {
	Path      string
	Extension string
	Basename  string
}

// NewStagedFile derives a StagedFile from a raw path string.
func NewStagedFile(path string) StagedFile {
	return StagedFile{
		Path:      path,
		Extension: strings.ToLower(filepath.Ext(path)),
		Basename:  strings.ToLower(filepath.Base(path)),
	}
}

// NewStagedFiles converts a path list into StagedFiles, preserving order.
func NewStagedFiles(paths []string) []StagedFile {
	files := make([]StagedFile, len(paths))
	for i, p := range paths {
		files[i] = NewStagedFile(p)
	}
	return files
}

// Category is the single classification bucket assigned to a staged file.
type Category string

const (
	CategoryCode   Category = "code"
	CategoryConfig Category = "config"
	CategoryDocs   Category = "docs"
	CategoryTest   Category = "test"
	CategoryStyle  Category = "style"
	CategoryScript Category = "script"
	CategoryOther  Category = "other"
)

// CategoryOrder is the fixed composition order for category clauses.
var CategoryOrder = []Category{
	CategoryCode,
	CategoryConfig,
	CategoryDocs,
	CategoryTest,
	CategoryStyle,
	CategoryScript,
	CategoryOther,
}

// Evidence aggregates deduplicated findings scanned from the diff,
// one slice per evidence kind, each in first-seen order.
type Evidence struct {
	// Functions holds declared symbol names (functions, methods, classes)
	// found on added or removed lines.
	Functions []string
	// Tests holds assertion lines added in test-named files.
	Tests []string
	// Imports holds import/require targets from added lines.
	Imports []string
	// Types holds type/interface/enum names declared on added lines.
	Types []string
	// Configs holds configuration key fragments from added lines.
	Configs []string
}

// PatternKind identifies a family of diff change signatures. At most one
// PatternMatch per kind survives detection.
type PatternKind string

// PatternMatch is a catalogue signature that tested positive against the
// diff text at least once.
type PatternMatch struct {
	Kind         PatternKind
	ActionPhrase string
}

// Source records which strategy produced the final message.
type Source string

const (
	SourceRule   Source = "rule"
	SourceRemote Source = "remote"
)

// CommitMessage is the single output artifact of a synthesis run.
type CommitMessage struct {
	Text   string
	Source Source
}
