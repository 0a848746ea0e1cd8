package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a real git repository in a temp dir. Tests that need
// one skip when the git binary is not installed.
func initRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")
	return dir
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func writeAndStage(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	runGit(t, dir, "add", name)
}

func TestIsRepository(t *testing.T) {
	repo := initRepo(t)
	assert.True(t, IsRepository(repo))

	nested := filepath.Join(repo, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	assert.True(t, IsRepository(nested), "detection walks up to the .git directory")

	assert.False(t, IsRepository(t.TempDir()))
}

func TestStagedFiles(t *testing.T) {
	repo := initRepo(t)

	writeAndStage(t, repo, "b.txt", "beta\n")
	writeAndStage(t, repo, "a.txt", "alpha\n")

	paths, err := StagedFiles(repo)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, paths, "paths come back sorted")
}

func TestStagedFilesNoneStaged(t *testing.T) {
	repo := initRepo(t)

	_, err := StagedFiles(repo)
	assert.ErrorIs(t, err, ErrNoStagedChanges)
}

func TestStagedFilesExcludesDeletions(t *testing.T) {
	repo := initRepo(t)

	writeAndStage(t, repo, "doomed.txt", "x\n")
	writeAndStage(t, repo, "kept.txt", "y\n")
	runGit(t, repo, "commit", "-m", "seed")

	runGit(t, repo, "rm", "doomed.txt")
	writeAndStage(t, repo, "kept.txt", "y changed\n")

	paths, err := StagedFiles(repo)
	require.NoError(t, err)
	assert.Equal(t, []string{"kept.txt"}, paths)
}

func TestStagedFilesNotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	_, err := StagedFiles(t.TempDir())
	assert.ErrorIs(t, err, ErrNotRepository)
}

func TestCurrentBranch(t *testing.T) {
	repo := initRepo(t)

	writeAndStage(t, repo, "f.txt", "x\n")
	runGit(t, repo, "commit", "-m", "seed")
	runGit(t, repo, "branch", "-M", "main")

	branch, err := CurrentBranch(repo)
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestStagedDiff(t *testing.T) {
	repo := initRepo(t)
	t.Chdir(repo)

	writeAndStage(t, repo, "app.js", "console.log('hi');\n")

	diff, err := StagedDiff(context.Background())
	require.NoError(t, err)
	assert.Contains(t, diff, "+++ b/app.js")
	assert.Contains(t, diff, "+console.log('hi');")
}

func TestCommit(t *testing.T) {
	repo := initRepo(t)
	t.Chdir(repo)

	writeAndStage(t, repo, "a.txt", "alpha\n")
	require.NoError(t, Commit(context.Background(), "Add alpha file", "- a.txt"))

	cmd := exec.Command("git", "log", "-1", "--pretty=%s")
	cmd.Dir = repo
	out, err := cmd.Output()
	require.NoError(t, err)
	assert.Equal(t, "Add alpha file\n", string(out))
}

func TestCommitRejectsEmptySubject(t *testing.T) {
	t.Parallel()
	assert.Error(t, Commit(context.Background(), "   ", ""))
}

func TestWriteHook(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	require.NoError(t, WriteHook(path, "Update docs"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Update docs\n", string(data))
}
