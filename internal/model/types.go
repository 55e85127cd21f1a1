package model

import "time"

// Config represents the application configuration loaded from YAML.
type Config struct {
	GitTimeout       *time.Duration `yaml:"git_timeout"`
	UntrackedFiles   string         `yaml:"untracked_files"`
	OpenCommand      string         `yaml:"open_command"`
	OpenInTmux       *bool          `yaml:"open_in_tmux"`
	WorkspaceFolders []string       `yaml:"workspace_folders"`
	Icons            bool           `yaml:"icons"`
	DebugLog         string         `yaml:"debug_log"`
}

// DefaultGitTimeout bounds each git invocation unless configured otherwise.
const DefaultGitTimeout = 10 * time.Second

// Timeout returns the configured git timeout. Zero means no timeout.
func (c Config) Timeout() time.Duration {
	if c.GitTimeout == nil {
		return DefaultGitTimeout
	}
	return *c.GitTimeout
}

// UseTmux reports whether files should be opened in a tmux window when possible.
func (c Config) UseTmux() bool {
	return c.OpenInTmux == nil || *c.OpenInTmux
}

// ChangeRecord is one entry of `git status --porcelain` output.
type ChangeRecord struct {
	Path           string
	OrigPath       string // set for renames and copies
	IndexStatus    byte
	WorktreeStatus byte
}

// Code returns the two-character status field, e.g. "M " or "??".
func (r ChangeRecord) Code() string {
	return string([]byte{r.IndexStatus, r.WorktreeStatus})
}

// FilterKind selects which classification set is shown.
type FilterKind int

const (
	FilterAll FilterKind = iota
	FilterStaged
	FilterUnstaged
)

// FilterKinds lists the filters in menu order.
var FilterKinds = []FilterKind{FilterAll, FilterStaged, FilterUnstaged}

func (k FilterKind) String() string {
	switch k {
	case FilterAll:
		return "all"
	case FilterStaged:
		return "staged"
	case FilterUnstaged:
		return "unstaged"
	}
	return "unknown"
}

// Title is the human-readable filter name used in menus and notices.
func (k FilterKind) Title() string {
	switch k {
	case FilterStaged:
		return "Staged Only"
	case FilterUnstaged:
		return "Unstaged Only"
	}
	return "All Changes"
}

// Description is the detail line shown under the filter in the menu.
func (k FilterKind) Description() string {
	switch k {
	case FilterStaged:
		return "Show only files in the staging area"
	case FilterUnstaged:
		return "Show only unstaged changes and untracked files"
	}
	return "Show all staged and unstaged files"
}
