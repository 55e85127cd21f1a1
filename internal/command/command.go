// Package command implements the changed-files action on top of a host Shell.
package command

import (
	"context"
	"errors"

	"github.com/mikanfactory/changed/internal/changeset"
	apperrors "github.com/mikanfactory/changed/internal/errors"
	"github.com/mikanfactory/changed/internal/git"
	"github.com/mikanfactory/changed/internal/log"
	"github.com/mikanfactory/changed/internal/model"
	"github.com/mikanfactory/changed/internal/session"
	"github.com/mikanfactory/changed/internal/workdir"
)

// Shell is the host UI. PresentChoiceMenu shows items and later calls
// onChoose exactly once with the chosen index or session.Cancel.
type Shell interface {
	PresentChoiceMenu(items []session.MenuItem, onChoose func(choice int), placeholder string)
	PresentNotice(message string)
	OpenFile(path string)
}

// Command is the changed-files action. It holds no per-invocation state, so
// one Command can serve any number of independent sessions.
type Command struct {
	runner        git.CommandRunner
	workspace     workdir.Workspace
	untrackedMode string
}

var logger = log.Logger("[command] ")

// New creates the action. untrackedMode is passed to `git status --untracked-files`.
func New(runner git.CommandRunner, ws workdir.Workspace, untrackedMode string) *Command {
	return &Command{runner: runner, workspace: ws, untrackedMode: untrackedMode}
}

// IsEnabled always reports true; problems are shown as notices when the action runs.
func (c *Command) IsEnabled() bool {
	return true
}

// Prepare collects and classifies the working tree changes and returns a
// session positioned at the filter menu.
func (c *Command) Prepare(ctx context.Context) (session.Session, error) {
	start := workdir.Resolve(c.workspace)

	root, err := git.ResolveRoot(ctx, c.runner, start)
	if err != nil {
		return session.Session{}, err
	}

	lines, err := git.StatusLines(ctx, c.runner, root, c.untrackedMode)
	if err != nil {
		return session.Session{}, err
	}

	set := changeset.Classify(changeset.Parse(lines))
	if set.Empty() {
		return session.Session{}, apperrors.ErrNoChangedFiles
	}

	logger.Printf("root=%s all=%d staged=%d unstaged=%d", root,
		set.Count(model.FilterAll), set.Count(model.FilterStaged), set.Count(model.FilterUnstaged))
	return session.New(root, set), nil
}

// Present shows the menu for s and keeps driving the session from the
// shell's callbacks until it ends.
func (c *Command) Present(shell Shell, s session.Session) {
	menu := s.Menu()
	shell.PresentChoiceMenu(menu.Items, func(choice int) {
		next, out := s.Choose(choice)
		switch out.Kind {
		case session.OutcomeMenu:
			c.Present(shell, next)
		case session.OutcomeNotice:
			c.notify(shell, out.Err)
		case session.OutcomeOpen:
			shell.OpenFile(out.Path)
		}
	}, menu.Placeholder)
}

// Run prepares a session and presents it, reporting failures as a notice.
func (c *Command) Run(ctx context.Context, shell Shell) {
	s, err := c.Prepare(ctx)
	if err != nil {
		c.notify(shell, err)
		return
	}
	c.Present(shell, s)
}

func (c *Command) notify(shell Shell, err error) {
	logger.Printf("notice: %v", err)
	shell.PresentNotice(NoticeFor(err))
}

// NoticeFor turns an error into the one-line message shown to the user.
func NoticeFor(err error) string {
	var empty *session.EmptyCategoryError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &empty):
		return empty.Error()
	case errors.Is(err, apperrors.ErrNotARepository):
		return "Not in a git repository"
	case errors.Is(err, apperrors.ErrToolNotFound):
		return "Git not found in PATH"
	case errors.Is(err, apperrors.ErrNoChangedFiles):
		return "No changed files"
	case errors.Is(err, apperrors.ErrEmptyCategory):
		return "No files in this category"
	}
	return "Error running git: " + err.Error()
}
