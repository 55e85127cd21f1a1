// Package opener opens a chosen file in the user's editor.
package opener

import (
	"os"
	"os/exec"
	"strings"

	"github.com/mikanfactory/changed/internal/model"
	"github.com/mikanfactory/changed/internal/tmux"
)

const fallbackEditor = "vi"

// getenv is a testable function variable for os.Getenv.
var getenv = os.Getenv

// Opener launches the configured editor, either in a tmux window or in the
// current terminal.
type Opener struct {
	editor     []string
	tmuxRunner tmux.Runner // nil when tmux should not be used
}

// New builds an Opener from config. tmuxRunner may be nil when running outside tmux.
func New(cfg model.Config, tmuxRunner tmux.Runner) Opener {
	o := Opener{editor: editorArgv(cfg.OpenCommand)}
	if cfg.UseTmux() && tmuxRunner != nil {
		o.tmuxRunner = tmuxRunner
	}
	return o
}

// editorArgv picks open_command, then $VISUAL, then $EDITOR, then vi.
func editorArgv(configured string) []string {
	for _, candidate := range []string{configured, getenv("VISUAL"), getenv("EDITOR")} {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields
		}
	}
	return []string{fallbackEditor}
}

// Argv returns the editor command line for path.
func (o Opener) Argv(path string) []string {
	argv := make([]string, 0, len(o.editor)+1)
	argv = append(argv, o.editor...)
	return append(argv, path)
}

// Command returns the editor process for path, to be run in the foreground.
func (o Opener) Command(path string) *exec.Cmd {
	argv := o.Argv(path)
	return exec.Command(argv[0], argv[1:]...)
}

// InTmux reports whether OpenInTmux should be used instead of Command.
func (o Opener) InTmux() bool {
	return o.tmuxRunner != nil
}

// OpenInTmux opens path in its own tmux window, reusing one that already shows it.
func (o Opener) OpenInTmux(path string) error {
	quoted := make([]string, 0, len(o.editor)+1)
	for _, arg := range o.Argv(path) {
		quoted = append(quoted, shellEscape(arg))
	}
	return tmux.SelectFileWindow(o.tmuxRunner, path, strings.Join(quoted, " "))
}

// shellEscape wraps a string in single quotes for safe shell usage.
func shellEscape(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}
