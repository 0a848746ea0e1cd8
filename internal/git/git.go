// Package git provides the repository collaborators for gitmsg: repository
// detection, the staged path list, and branch detection via the go-git
// library, with a git CLI fallback for the operations go-git cannot serve
// (rendering the staged unified diff, creating the commit).
package git

import (
	"errors"
	"fmt"
	"os"
	"sort"

	gogit "github.com/go-git/go-git/v5"
)

// Sentinel precondition errors. Both are fatal to a synthesis run.
var (
	ErrNotRepository   = errors.New("not a git repository")
	ErrNoStagedChanges = errors.New("no staged changes")
)

// openRepo opens the repository containing path (or the current working
// directory when path is empty), traversing up to find the .git directory.
func openRepo(path string) (*gogit.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotRepository, path)
	}
	return repo, nil
}

// IsRepository reports whether path (or the current directory) is inside a
// git repository.
func IsRepository(path string) bool {
	_, err := openRepo(path)
	return err == nil
}

// CurrentBranch returns the current branch name, or "" in detached HEAD.
func CurrentBranch(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}

// StagedFiles returns the sorted paths staged for commit. Deletions are
// excluded: a removed file carries no diff content for the synthesizer to
// describe. Returns ErrNoStagedChanges when nothing is staged.
func StagedFiles(path string) ([]string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return nil, err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("reading worktree status: %w", err)
	}

	var paths []string
	for p, fs := range status {
		switch fs.Staging {
		case gogit.Added, gogit.Modified, gogit.Renamed, gogit.Copied:
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return nil, ErrNoStagedChanges
	}

	sort.Strings(paths)
	return paths, nil
}
