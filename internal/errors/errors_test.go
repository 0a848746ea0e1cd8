package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Argument Error", Argument.String())
	assert.Equal(t, "Configuration Error", Configuration.String())
	assert.Equal(t, "Precondition Error", Precondition.String())
	assert.Equal(t, "Runtime Error", Runtime.String())
}

func TestWrapWithMessage(t *testing.T) {
	t.Parallel()

	err := WrapWithMessage(stderrors.New("connection refused"), Runtime,
		"endpoint unreachable", "Start Ollama with: ollama serve")
	require.NotNil(t, err)
	assert.Equal(t, Runtime, err.Category)
	assert.Equal(t, "endpoint unreachable: connection refused", err.Error())
	assert.Equal(t, []string{"Start Ollama with: ollama serve"}, err.Remediation)

	assert.Nil(t, WrapWithMessage(nil, Runtime, "ignored"))
}

func TestAsCLIError(t *testing.T) {
	t.Parallel()

	cliErr := NewPreconditionError("no staged changes", "Stage files with: git add <paths>")
	assert.Equal(t, cliErr, AsCLIError(cliErr))
	assert.Nil(t, AsCLIError(stderrors.New("plain")))
}

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	err := NewArgumentError("unknown flag --foo", "Run 'gitmsg --help' to see valid flags")
	err.Usage = "gitmsg [flags]"

	out := FormatErrorPlain(err)
	assert.Contains(t, out, "Error [Argument Error]: unknown flag --foo")
	assert.Contains(t, out, "Usage: gitmsg [flags]")
	assert.Contains(t, out, "To fix this:")
	assert.Contains(t, out, "• Run 'gitmsg --help' to see valid flags")

	assert.Empty(t, FormatErrorPlain(nil))
}
