package tmux

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner abstracts tmux command execution for testability.
type Runner interface {
	Run(args ...string) (string, error)
}

// OSRunner executes real tmux commands via os/exec.
type OSRunner struct{}

func (r OSRunner) Run(args ...string) (string, error) {
	cmd := exec.Command("tmux", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("tmux %v failed: %s", args, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("tmux %v failed: %w", args, err)
	}
	return string(out), nil
}

// FakeRunner is a test double that records calls and returns preset output.
type FakeRunner struct {
	Outputs map[string]string
	Errors  map[string]error
	Calls   [][]string
}

func (r *FakeRunner) Run(args ...string) (string, error) {
	r.Calls = append(r.Calls, args)
	key := fmt.Sprintf("%v", args)
	if err, ok := r.Errors[key]; ok {
		return "", err
	}
	return r.Outputs[key], nil
}

// IsInsideTmux checks whether the current process is running inside a tmux session.
var IsInsideTmux = func() bool {
	return os.Getenv("TMUX") != ""
}

// pathOption is the window user option holding the absolute path a window was opened for.
const pathOption = "@changed_path"

// FindWindow returns the index of the window opened for filePath, or "" if none is.
// Windows are matched on pathOption, so two files sharing a base name never collide.
func FindWindow(runner Runner, filePath string) (string, error) {
	out, err := runner.Run("list-windows", "-F", "#{"+pathOption+"}\t#{window_index}")
	if err != nil {
		return "", err
	}
	return parseWindowList(out, filePath), nil
}

// SwitchToWindow switches to an existing tmux window by index.
func SwitchToWindow(runner Runner, windowIndex string) error {
	_, err := runner.Run("select-window", "-t", windowIndex)
	return err
}

// CreateWindow creates a new tmux window running command in startDir and
// returns its index.
func CreateWindow(runner Runner, windowName, startDir, command string) (string, error) {
	out, err := runner.Run("new-window", "-P", "-F", "#{window_index}", "-n", windowName, "-c", startDir, command)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// tagWindow records filePath on the window so FindWindow can find it again.
// An empty index tags the current window, which new-window has just selected.
func tagWindow(runner Runner, windowIndex, filePath string) error {
	args := []string{"set-option", "-w"}
	if windowIndex != "" {
		args = append(args, "-t", windowIndex)
	}
	_, err := runner.Run(append(args, pathOption, filePath)...)
	return err
}

// SelectFileWindow switches to the window already showing filePath, or opens
// a new one running command next to the file. The window is named after the
// file's base name.
func SelectFileWindow(runner Runner, filePath, command string) error {
	target, err := FindWindow(runner, filePath)
	if err != nil {
		return fmt.Errorf("listing tmux windows: %w", err)
	}

	if target != "" {
		return SwitchToWindow(runner, target)
	}

	index, err := CreateWindow(runner, filepath.Base(filePath), filepath.Dir(filePath), command)
	if err != nil {
		return err
	}
	if err := tagWindow(runner, index, filePath); err != nil {
		return fmt.Errorf("tagging tmux window: %w", err)
	}
	return nil
}

// parseWindowList parses `tmux list-windows` output of "<path>\t<index>" lines
// and returns the index of the window tagged with filePath, or "" if not found.
// Untagged windows have an empty path and never match.
func parseWindowList(output string, filePath string) string {
	if filePath == "" {
		return ""
	}
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) == 2 && parts[0] == filePath {
			return parts[1]
		}
	}
	return ""
}
