// Package workdir picks the directory a changed-files lookup starts from.
package workdir

import (
	"os"
	"path/filepath"
)

// Workspace describes what the host knows about the user's current context.
type Workspace interface {
	// ActiveFile is the path of the focused document, or "" if there is none
	// or it has never been saved.
	ActiveFile() string
	// Folders are the configured workspace root folders, in priority order.
	Folders() []string
}

// homeDir is a testable function variable for os.UserHomeDir.
var homeDir = os.UserHomeDir

// Resolve returns, in priority order: the directory of the active file, the
// first workspace folder, or the user's home directory.
func Resolve(ws Workspace) string {
	if ws != nil {
		if file := ws.ActiveFile(); file != "" {
			return filepath.Dir(file)
		}
		if folders := ws.Folders(); len(folders) > 0 {
			return folders[0]
		}
	}

	home, err := homeDir()
	if err != nil {
		return "."
	}
	return home
}

// Static is a Workspace with fixed values.
type Static struct {
	File string
	Dirs []string
}

func (s Static) ActiveFile() string { return s.File }

func (s Static) Folders() []string { return s.Dirs }

// FromCLI builds a Workspace from a command line: activeFile is made absolute
// against cwd, and cwd is appended after the configured folders.
func FromCLI(activeFile string, folders []string, cwd string) Static {
	if activeFile != "" && !filepath.IsAbs(activeFile) && cwd != "" {
		activeFile = filepath.Join(cwd, activeFile)
	}

	dirs := make([]string, 0, len(folders)+1)
	for _, f := range folders {
		if f != "" {
			dirs = append(dirs, f)
		}
	}
	if cwd != "" {
		dirs = append(dirs, cwd)
	}
	return Static{File: activeFile, Dirs: dirs}
}
