// Package prompt implements the interactive confirm/edit step between
// message synthesis and commit execution.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/google/shlex"
	"github.com/peterh/liner"
)

// Decision is the user's answer to the confirmation prompt.
type Decision int

const (
	// DecisionCommit accepts the message (possibly after editing).
	DecisionCommit Decision = iota
	// DecisionAbort declines the commit.
	DecisionAbort
)

// ErrEmptyMessage is returned when an edit leaves the message empty.
var ErrEmptyMessage = errors.New("message is empty after editing")

// Confirm asks the user to accept, reject, or edit the message. Returns
// the (possibly edited) message together with the decision. Ctrl+C and
// EOF count as abort.
func Confirm(message string) (string, Decision, error) {
	line := liner.NewLiner()
	defer func() { _ = line.Close() }()
	line.SetCtrlCAborts(true)

	for {
		answer, err := line.Prompt(color.CyanString("Commit with this message? [y]es / [n]o / [e]dit: "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return message, DecisionAbort, nil
			}
			return message, DecisionAbort, fmt.Errorf("reading confirmation: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes", "":
			return message, DecisionCommit, nil
		case "n", "no":
			return message, DecisionAbort, nil
		case "e", "edit":
			edited, err := EditMessage(message)
			if err != nil {
				return message, DecisionAbort, err
			}
			return edited, DecisionCommit, nil
		}
		// Anything else: ask again.
	}
}

// EditMessage opens $EDITOR on a temp file seeded with the message and
// returns the trimmed result. An empty result aborts with ErrEmptyMessage.
func EditMessage(message string) (string, error) {
	argv, err := EditorCommand()
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp("", "gitmsg-*.txt")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(message + "\n"); err != nil {
		tmp.Close()
		return "", fmt.Errorf("seeding temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	cmd := exec.Command(argv[0], append(argv[1:], tmp.Name())...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running editor: %w", err)
	}

	edited, err := os.ReadFile(tmp.Name())
	if err != nil {
		return "", fmt.Errorf("reading edited message: %w", err)
	}

	result := strings.TrimSpace(string(edited))
	if result == "" {
		return "", ErrEmptyMessage
	}
	return result, nil
}

// EditorCommand resolves $EDITOR (default vi) into an argv via shlex, so
// values like "code --wait" work.
func EditorCommand() ([]string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	argv, err := shlex.Split(editor)
	if err != nil {
		return nil, fmt.Errorf("parsing $EDITOR %q: %w", editor, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("$EDITOR %q resolves to an empty command", editor)
	}
	return argv, nil
}
