package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	apperrors "github.com/mikanfactory/changed/internal/errors"
	"github.com/mikanfactory/changed/internal/log"
)

// CommandRunner abstracts git command execution for testability.
type CommandRunner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// OSCommandRunner executes real git commands via os/exec.
// A zero Timeout runs without a deadline.
type OSCommandRunner struct {
	Timeout time.Duration
}

var logger = log.Logger("[git] ")

// lookPath is a testable function variable for exec.LookPath.
var lookPath = exec.LookPath

func (r OSCommandRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	bin, err := lookPath("git")
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrToolNotFound, err)
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	logger.Printf("git %v in %s took %s (err=%v)", args, dir, time.Since(start), err)

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: git %v timed out after %s", apperrors.ErrToolInvocationFailed, args, r.Timeout)
		}
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %v", apperrors.ErrToolNotFound, err)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExitError{Args: args, Code: exitErr.ExitCode(), Stderr: strings.TrimSpace(string(exitErr.Stderr))}
		}
		return "", fmt.Errorf("%w: git %v: %w", apperrors.ErrToolInvocationFailed, args, err)
	}
	return string(out), nil
}

// ExitError reports a git process that ran and exited non-zero.
type ExitError struct {
	Args   []string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("git %v exited with status %d", e.Args, e.Code)
	}
	return fmt.Sprintf("git %v failed: %s", e.Args, e.Stderr)
}

// Unwrap lets errors.Is match ErrToolInvocationFailed.
func (e *ExitError) Unwrap() error {
	return apperrors.ErrToolInvocationFailed
}

// FakeCommandRunner is a test double that returns preset output.
type FakeCommandRunner struct {
	Outputs map[string]string
	Errors  map[string]error
	Calls   *[]string
}

func (r FakeCommandRunner) key(dir string, args ...string) string {
	return fmt.Sprintf("%s:%v", dir, args)
}

func (r FakeCommandRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	key := r.key(dir, args...)
	if r.Calls != nil {
		*r.Calls = append(*r.Calls, key)
	}
	if err, ok := r.Errors[key]; ok {
		return "", err
	}
	if out, ok := r.Outputs[key]; ok {
		return out, nil
	}
	return "", fmt.Errorf("FakeCommandRunner: no output for key %q", key)
}
