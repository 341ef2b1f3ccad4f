package interfaces

import (
	"context"
	"time"
)

// CommandResult holds the captured output of an executed command. Stderr is
// kept even on success so callers can surface diagnostics from tools that
// write to stderr on their normal path.
type CommandResult struct {
	Stdout string
	Stderr string
}

// CommandExecutor runs system commands
type CommandExecutor interface {
	// Execute runs a command and returns its captured output. A non-zero
	// exit or launch failure is returned as a COMMAND-typed DomainError.
	Execute(ctx context.Context, command string, args ...string) (*CommandResult, error)

	// ExecuteWithTimeout runs a command with a deadline applied
	ExecuteWithTimeout(ctx context.Context, timeout time.Duration, command string, args ...string) (*CommandResult, error)
}

// FileSystem abstracts file system access
type FileSystem interface {
	// ReadFile reads a file
	ReadFile(path string) ([]byte, error)

	// Exists reports whether a file or directory exists
	Exists(path string) bool

	// ListFiles returns the file names in a directory
	ListFiles(path string) ([]string, error)
}

// Clock abstracts time access
type Clock interface {
	// Now returns the current time
	Now() time.Time
}
