package ollama

import (
	"context"
	"time"

	"github.com/ariel-frischer/gitmsg/internal/engine"
	"github.com/rs/zerolog/log"
)

// state tracks the generator through its single-attempt protocol.
// Unprobed -> {Unavailable | NoCompatibleModel | Ready} -> Requested ->
// {Accepted | Rejected}. There are no retry transitions.
type state int

const (
	stateUnprobed state = iota
	stateUnavailable
	stateNoCompatibleModel
	stateReady
	stateRequested
	stateAccepted
	stateRejected
)

func (s state) String() string {
	switch s {
	case stateUnprobed:
		return "unprobed"
	case stateUnavailable:
		return "unavailable"
	case stateNoCompatibleModel:
		return "no-compatible-model"
	case stateReady:
		return "ready"
	case stateRequested:
		return "requested"
	case stateAccepted:
		return "accepted"
	case stateRejected:
		return "rejected"
	}
	return "unknown"
}

// Config carries the process-wide remote-generation defaults. It is passed
// in explicitly so tests can substitute deterministic values.
type Config struct {
	// Model forces a model name; empty means pick from PreferredModels.
	Model string
	// PreferredModels is tried in order against the probed inventory.
	PreferredModels []string
	// ProbeTimeout bounds the inventory probe.
	ProbeTimeout time.Duration
	// GenerateTimeout bounds the generation request. Longer than the probe.
	GenerateTimeout time.Duration
	// MaxDiffBytes caps the diff excerpt embedded in the prompt.
	MaxDiffBytes int
	// Generation knobs, fixed low to bias toward short, stable output.
	Temperature     float64
	TopP            float64
	MaxOutputTokens int
	Seed            int
}

// DefaultConfig returns the stock remote-generation parameters.
func DefaultConfig() Config {
	return Config{
		PreferredModels: []string{"llama3.2", "llama3.1", "qwen2.5-coder", "codellama", "mistral"},
		ProbeTimeout:    2 * time.Second,
		GenerateTimeout: 30 * time.Second,
		MaxDiffBytes:    1500,
		Temperature:     0.2,
		TopP:            0.9,
		MaxOutputTokens: 60,
		Seed:            42,
	}
}

// Generator implements engine.RemoteSource against an Ollama endpoint.
type Generator struct {
	client *Client
	cfg    Config
	state  state
}

// NewGenerator builds a Generator in the unprobed state.
func NewGenerator(client *Client, cfg Config) *Generator {
	return &Generator{client: client, cfg: cfg, state: stateUnprobed}
}

// State returns the protocol state reached by the last TryGenerate call.
func (g *Generator) State() string {
	return g.state.String()
}

// TryGenerate runs the probe -> select -> generate -> sanitize sequence
// once. Every failure or rejection returns ok=false; nothing is retried
// and nothing is surfaced as an error.
func (g *Generator) TryGenerate(ctx context.Context, files []engine.StagedFile, diffText, primaryAction string) (string, bool) {
	models, err := g.client.ListModels(ctx, g.cfg.ProbeTimeout)
	if err != nil {
		g.state = stateUnavailable
		log.Info().Err(err).Msg("ollama endpoint unavailable")
		return "", false
	}

	model := g.selectModel(models)
	if model == "" {
		g.state = stateNoCompatibleModel
		log.Info().Msg("ollama inventory is empty")
		return "", false
	}
	g.state = stateReady

	prompt := buildPrompt(files, diffText, primaryAction, g.cfg.MaxDiffBytes)
	opts := generateOptions{
		Temperature:     g.cfg.Temperature,
		TopP:            g.cfg.TopP,
		MaxOutputTokens: g.cfg.MaxOutputTokens,
		Seed:            g.cfg.Seed,
	}

	g.state = stateRequested
	raw, err := g.client.Generate(ctx, model, prompt, opts, g.cfg.GenerateTimeout)
	if err != nil {
		g.state = stateRejected
		log.Info().Err(err).Str("model", model).Msg("ollama generation failed")
		return "", false
	}

	text := Sanitize(raw)
	if len(text) == 0 || len(text) >= maxAcceptedLength {
		g.state = stateRejected
		log.Info().Int("length", len(text)).Msg("ollama response rejected by sanitizer")
		return "", false
	}

	g.state = stateAccepted
	log.Debug().Str("model", model).Msg("ollama response accepted")
	return text, true
}

// selectModel picks the model name: explicit override first, then the
// first preferred name present in the inventory, then the first inventory
// entry. Returns "" on an empty inventory.
func (g *Generator) selectModel(models []Model) string {
	if len(models) == 0 {
		return ""
	}
	if g.cfg.Model != "" {
		return g.cfg.Model
	}
	available := make(map[string]bool, len(models))
	for _, m := range models {
		available[m.Name] = true
	}
	for _, preferred := range g.cfg.PreferredModels {
		if available[preferred] {
			return preferred
		}
	}
	return models[0].Name
}
