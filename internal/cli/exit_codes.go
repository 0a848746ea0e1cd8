package cli

// Exit codes for the gitmsg CLI
const (
	// ExitSuccess indicates successful execution, help, or list display.
	ExitSuccess = 0

	// ExitFailure indicates a failed run: no repository, no staged
	// changes, or a commit/configuration error.
	ExitFailure = 1
)
