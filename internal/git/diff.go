package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// The staged unified diff and the final commit go through the git CLI:
// go-git cannot render an index-vs-HEAD patch, and the CLI commit path
// honors the user's hooks and signing configuration.

// StagedDiff returns the unified diff of the index against HEAD, with
// rename detection enabled.
func StagedDiff(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--staged", "-M")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("reading staged diff: %v\n%s", err, out.String())
	}
	return out.String(), nil
}

// Commit creates a commit with the given subject and optional body.
func Commit(ctx context.Context, subject, body string) error {
	if strings.TrimSpace(subject) == "" {
		return fmt.Errorf("empty commit subject")
	}

	args := []string{"commit", "-m", subject}
	if strings.TrimSpace(body) != "" {
		args = append(args, "-m", body)
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("creating commit: %w", err)
	}
	return nil
}

// WriteHook writes the message into a prepare-commit-msg style hook file.
func WriteHook(path, message string) error {
	if err := os.WriteFile(path, []byte(message+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing hook file %s: %w", path, err)
	}
	return nil
}
