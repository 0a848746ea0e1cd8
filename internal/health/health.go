// Package health provides environment checks for gitmsg, returning
// structured reports used by the 'gitmsg doctor' command. The checks mirror
// the run preconditions (repository, staged changes) plus the optional
// collaborators (Ollama endpoint, $EDITOR).
package health

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/ariel-frischer/gitmsg/internal/git"
	"github.com/ariel-frischer/gitmsg/internal/ollama"
	"github.com/ariel-frischer/gitmsg/internal/prompt"
)

// CheckResult represents the result of a single health check.
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// Report contains all health check results.
type Report struct {
	Checks []CheckResult
	Passed bool
}

// ProbeFunc probes the remote endpoint's model inventory. Injectable so
// tests can avoid the network.
type ProbeFunc func(ctx context.Context, timeout time.Duration) ([]ollama.Model, error)

// RunChecks runs all health checks and returns a report. A nil probe skips
// the endpoint check.
func RunChecks(ctx context.Context, probe ProbeFunc, probeTimeout time.Duration) *Report {
	report := &Report{Passed: true}

	add := func(c CheckResult) {
		report.Checks = append(report.Checks, c)
		if !c.Passed {
			report.Passed = false
		}
	}

	add(CheckRepository())
	add(CheckStagedChanges())
	if probe != nil {
		add(CheckEndpoint(ctx, probe, probeTimeout))
	}
	add(CheckEditor())

	return report
}

// CheckRepository verifies the working directory is inside a git repository.
func CheckRepository() CheckResult {
	if !git.IsRepository("") {
		return CheckResult{
			Name:    "Git repository",
			Passed:  false,
			Message: "not inside a git repository",
		}
	}
	return CheckResult{
		Name:    "Git repository",
		Passed:  true,
		Message: "repository detected",
	}
}

// CheckStagedChanges verifies there is something staged to describe.
func CheckStagedChanges() CheckResult {
	paths, err := git.StagedFiles("")
	if err != nil {
		return CheckResult{
			Name:    "Staged changes",
			Passed:  false,
			Message: err.Error(),
		}
	}
	return CheckResult{
		Name:    "Staged changes",
		Passed:  true,
		Message: fmt.Sprintf("%d file(s) staged", len(paths)),
	}
}

// CheckEndpoint probes the Ollama endpoint and reports the model count.
func CheckEndpoint(ctx context.Context, probe ProbeFunc, timeout time.Duration) CheckResult {
	models, err := probe(ctx, timeout)
	if err != nil {
		return CheckResult{
			Name:    "Ollama endpoint",
			Passed:  false,
			Message: fmt.Sprintf("unreachable: %v", err),
		}
	}
	return CheckResult{
		Name:    "Ollama endpoint",
		Passed:  true,
		Message: fmt.Sprintf("reachable, %d model(s) available", len(models)),
	}
}

// CheckEditor verifies $EDITOR (or the vi default) parses and resolves.
func CheckEditor() CheckResult {
	argv, err := prompt.EditorCommand()
	if err != nil {
		return CheckResult{
			Name:    "Editor",
			Passed:  false,
			Message: err.Error(),
		}
	}
	if _, err := exec.LookPath(argv[0]); err != nil {
		return CheckResult{
			Name:    "Editor",
			Passed:  false,
			Message: fmt.Sprintf("%s not found in PATH", argv[0]),
		}
	}
	name := argv[0]
	if os.Getenv("EDITOR") == "" {
		name += " (default)"
	}
	return CheckResult{
		Name:    "Editor",
		Passed:  true,
		Message: name,
	}
}

// FormatReport formats the health report for console output.
func FormatReport(report *Report) string {
	var output string
	for _, check := range report.Checks {
		if check.Passed {
			output += fmt.Sprintf("✓ %s: %s\n", check.Name, check.Message)
		} else {
			output += fmt.Sprintf("✗ %s: %s\n", check.Name, check.Message)
		}
	}
	return output
}
