package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"

	apperrors "github.com/mikanfactory/changed/internal/errors"
)

func TestOSCommandRunner_GitVersion(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	runner := OSCommandRunner{}
	out, err := runner.Run(context.Background(), ".", "--version")
	if err != nil {
		t.Fatalf("git --version failed: %v", err)
	}
	if out == "" {
		t.Error("expected non-empty output from git --version")
	}
}

func TestOSCommandRunner_ExitErrorIsInvocationFailure(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	runner := OSCommandRunner{}
	_, err := runner.Run(context.Background(), t.TempDir(), "definitely-not-a-subcommand")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T: %v", err, err)
	}
	if !errors.Is(err, apperrors.ErrToolInvocationFailed) {
		t.Errorf("expected ErrToolInvocationFailed, got %v", err)
	}
}

func TestOSCommandRunner_MissingGit(t *testing.T) {
	orig := lookPath
	lookPath = func(string) (string, error) { return "", exec.ErrNotFound }
	t.Cleanup(func() { lookPath = orig })

	_, err := OSCommandRunner{}.Run(context.Background(), ".", "status")
	if !errors.Is(err, apperrors.ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
}

func TestExitError_Message(t *testing.T) {
	withStderr := &ExitError{Args: []string{"status"}, Code: 128, Stderr: "fatal: bad"}
	if got := withStderr.Error(); got != "git [status] failed: fatal: bad" {
		t.Errorf("Error() = %q", got)
	}

	bare := &ExitError{Args: []string{"status"}, Code: 1}
	if got := bare.Error(); got != "git [status] exited with status 1" {
		t.Errorf("Error() = %q", got)
	}
}

func TestFakeCommandRunner_ReturnsOutput(t *testing.T) {
	runner := FakeCommandRunner{
		Outputs: map[string]string{
			"/repo:[rev-parse --show-toplevel]": "/repo\n",
		},
	}

	out, err := runner.Run(context.Background(), "/repo", "rev-parse", "--show-toplevel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "/repo\n" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestFakeCommandRunner_ReturnsError(t *testing.T) {
	runner := FakeCommandRunner{
		Errors: map[string]error{
			"/repo:[status --porcelain]": fmt.Errorf("git failed"),
		},
	}

	_, err := runner.Run(context.Background(), "/repo", "status", "--porcelain")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestFakeCommandRunner_RecordsCalls(t *testing.T) {
	var calls []string
	runner := FakeCommandRunner{
		Outputs: map[string]string{"/repo:[status]": ""},
		Calls:   &calls,
	}

	_, _ = runner.Run(context.Background(), "/repo", "status")
	_, _ = runner.Run(context.Background(), "/repo", "unknown")

	if len(calls) != 2 || calls[0] != "/repo:[status]" {
		t.Errorf("calls = %v", calls)
	}
}
