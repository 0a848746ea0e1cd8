package engine

import (
	"context"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Analysis holds the outputs of the three pure analysis stages. It is a
// pure function of the staged file list and the diff text, so it can be
// computed once and fed to both the remote generator and the composer.
type Analysis struct {
	Files    []StagedFile
	Buckets  map[Category][]StagedFile
	Evidence Evidence
	Matches  []PatternMatch
}

// PrimaryAction returns the highest-priority pattern's action phrase, or
// "" when no pattern matched.
func (a Analysis) PrimaryAction() string {
	if len(a.Matches) == 0 {
		return ""
	}
	return a.Matches[0].ActionPhrase
}

// RemoteSource is an optional alternative message source. TryGenerate
// returns ok=false on any unavailability, timeout, or rejected response;
// the caller then falls back to rule-based composition.
type RemoteSource interface {
	TryGenerate(ctx context.Context, files []StagedFile, diffText, primaryAction string) (string, bool)
}

// Options configures a synthesis run.
type Options struct {
	// Verbose appends the literal file list to category clauses.
	Verbose bool
	// Remote, when non-nil, is attempted before rule-based composition.
	Remote RemoteSource
}

// Analyze runs categorization, evidence extraction, and pattern detection
// over one snapshot of the staged changes. The three stages are pure
// functions of the same two inputs with no mutual ordering dependency, so
// they run concurrently.
func Analyze(paths []string, diffText string) Analysis {
	a := Analysis{Files: NewStagedFiles(paths)}

	var g errgroup.Group
	g.Go(func() error {
		a.Buckets = Categorize(a.Files)
		return nil
	})
	g.Go(func() error {
		a.Evidence = Extract(a.Files, diffText)
		return nil
	})
	g.Go(func() error {
		a.Matches = Detect(diffText)
		return nil
	})
	_ = g.Wait() // stages never fail

	return a
}

// Synthesize produces the final CommitMessage for an analysis. When a
// remote source is configured it is attempted first; any failure there is
// recovered locally by composing from the rules, never surfaced as a run
// failure. The first character of the text is capitalized exactly once.
func Synthesize(ctx context.Context, a Analysis, diffText string, opts Options) CommitMessage {
	if opts.Remote != nil {
		if text, ok := opts.Remote.TryGenerate(ctx, a.Files, diffText, a.PrimaryAction()); ok {
			log.Debug().Str("source", string(SourceRemote)).Msg("remote generation accepted")
			return CommitMessage{Text: capitalizeFirst(text), Source: SourceRemote}
		}
		log.Info().Msg("remote generation unavailable, falling back to rule-based composition")
	}

	text := Compose(a.Buckets, a.Evidence, a.Matches, opts.Verbose)
	log.Debug().
		Int("patterns", len(a.Matches)).
		Int("files", len(a.Files)).
		Msg("composed rule-based message")
	return CommitMessage{Text: capitalizeFirst(text), Source: SourceRule}
}

// capitalizeFirst upper-cases the first rune. Idempotent.
func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
