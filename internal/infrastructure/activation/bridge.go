package activation

import (
	"context"
	"strings"
	"time"

	"netup-agent/internal/domain/errors"
	"netup-agent/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Callable is an arbitrary operation the bridge can run in place of a
// literal command, e.g. a netops link change.
type Callable func() (*interfaces.CommandResult, error)

// Bridge runs external commands for the activators and standardizes logging
// and the response to failure. An expected command failure becomes a boolean
// false, never an error; anything the executor does not classify as a
// command failure is handed back to the caller unchanged.
type Bridge struct {
	executor interfaces.CommandExecutor
	timeout  time.Duration
	logger   *logrus.Logger
}

// NewBridge creates a new Bridge. A non-positive timeout disables the
// per-command deadline.
func NewBridge(executor interfaces.CommandExecutor, timeout time.Duration, logger *logrus.Logger) *Bridge {
	return &Bridge{
		executor: executor,
		timeout:  timeout,
		logger:   logger,
	}
}

// RunCommand runs cmd once. When warnOnStderr is false the command is known
// to write to stderr on its normal successful path, so diagnostics are
// logged at debug instead of warning.
func (b *Bridge) RunCommand(ctx context.Context, cmd []string, warnOnStderr bool) (bool, error) {
	return b.run(func() (*interfaces.CommandResult, error) {
		if b.timeout > 0 {
			return b.executor.ExecuteWithTimeout(ctx, b.timeout, cmd[0], cmd[1:]...)
		}
		return b.executor.Execute(ctx, cmd[0], cmd[1:]...)
	}, strings.Join(cmd, " "), warnOnStderr)
}

// RunCallable runs an arbitrary operation with the same outcome
// classification as RunCommand
func (b *Bridge) RunCallable(op Callable, description string, warnOnStderr bool) (bool, error) {
	return b.run(op, description, warnOnStderr)
}

func (b *Bridge) run(op Callable, description string, warnOnStderr bool) (bool, error) {
	result, err := op()
	if err != nil {
		if errors.IsCommandError(err) {
			b.logger.WithError(err).WithField("command", description).
				Warn("running interface command failed")
			return false, nil
		}
		return false, err
	}

	if result != nil && len(result.Stderr) > 0 {
		entry := b.logger.WithFields(logrus.Fields{
			"command": description,
			"stderr":  result.Stderr,
		})
		if warnOnStderr {
			entry.Warn("received stderr output")
		} else {
			entry.Debug("received stderr output")
		}
	}

	return true, nil
}
