package gitcfg

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const defaultGit = "git"

// ToolError is returned when the git executable is missing or exits non-zero.
type ToolError struct {
	Key    string
	Status int
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	if e.Status < 0 {
		return fmt.Sprintf("git config %s: %v", e.Key, e.Err)
	}
	if e.Stderr == "" {
		return fmt.Sprintf("git config %s: exited with status %d", e.Key, e.Status)
	}
	return fmt.Sprintf("git config %s: exited with status %d: %s", e.Key, e.Status, e.Stderr)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// Exec runs `git config --global`.
type Exec struct {
	Path   string
	logger *slog.Logger
}

func NewExec(path string) *Exec {
	if path == "" {
		path = defaultGit
	}
	return &Exec{Path: path}
}

func (e *Exec) SetLogger(logger *slog.Logger) {
	e.logger = logger
}

func (e *Exec) Get(ctx context.Context, key string) string {
	out, err := e.run(ctx, key)
	if err != nil {
		e.debug("git config read failed", "key", key, "err", err)
		return NotSet
	}

	return strings.TrimSpace(out)
}

func (e *Exec) Set(ctx context.Context, key, value string) error {
	if _, err := e.run(ctx, key, value); err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}

	return nil
}

func (e *Exec) run(ctx context.Context, args ...string) (string, error) {
	argv := append([]string{"config", "--global"}, args...)

	cmd := exec.CommandContext(ctx, e.Path, argv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.debug("running command", "cmd", e.Path+" "+strings.Join(argv, " "))

	if err := cmd.Run(); err != nil {
		toolErr := &ToolError{
			Key:    args[0],
			Status: -1,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			toolErr.Status = exitErr.ExitCode()
		}

		return "", toolErr
	}

	return stdout.String(), nil
}

func (e *Exec) debug(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}
