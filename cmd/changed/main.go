// Package main is the entry point for changed, a picker over the files git
// reports as modified.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	urfavecli "github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/mikanfactory/changed/internal/command"
	"github.com/mikanfactory/changed/internal/config"
	"github.com/mikanfactory/changed/internal/git"
	"github.com/mikanfactory/changed/internal/log"
	"github.com/mikanfactory/changed/internal/model"
	"github.com/mikanfactory/changed/internal/opener"
	"github.com/mikanfactory/changed/internal/tmux"
	"github.com/mikanfactory/changed/internal/tui"
	"github.com/mikanfactory/changed/internal/workdir"
)

var version = "dev"

var errNotATerminal = errors.New("changed needs an interactive terminal")

func main() {
	cliApp := &urfavecli.App{
		Name:    "changed",
		Usage:   "Pick a changed file from git status and open it",
		Version: version,
		Flags:   globalFlags(),
		Action:  run,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *urfavecli.Context) error {
	defer func() { _ = log.Close() }()

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	setupDebugLog(c.String("debug-log"), cfg)

	if c.IsSet("icons") {
		cfg.Icons = c.Bool("icons")
	}

	printOnly := c.Bool("print")

	// With --print stdout carries the result, so the UI draws on stderr.
	output := os.Stdout
	if printOnly {
		output = os.Stderr
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(output.Fd())) {
		return errNotATerminal
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	var tmuxRunner tmux.Runner
	if tmux.IsInsideTmux() {
		tmuxRunner = tmux.OSRunner{}
	}

	ws := workdir.FromCLI(c.String("file"), cfg.WorkspaceFolders, cwd)
	cmd := command.New(git.OSCommandRunner{Timeout: cfg.Timeout()}, ws, cfg.UntrackedFiles)
	op := opener.New(cfg, tmuxRunner)

	zone.NewGlobal()
	m := tui.NewModel(context.Background(), cmd, op, tui.Options{
		Icons:     cfg.Icons,
		PrintOnly: printOnly,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithOutput(output))
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("running ui: %w", err)
	}

	final, ok := result.(tui.Model)
	if !ok {
		return nil
	}
	if final.Err() != nil {
		fmt.Fprintf(os.Stderr, "error opening %s: %v\n", final.Selected(), final.Err())
		return nil
	}
	if printOnly && final.Selected() != "" {
		fmt.Println(final.Selected())
	}
	return nil
}

// setupDebugLog points the debug log at the flag value, then the config value.
// With neither set, buffered lines are discarded.
func setupDebugLog(flagPath string, cfg model.Config) {
	path := cfg.DebugLog
	if flagPath != "" {
		expanded, err := config.ExpandHome(flagPath)
		if err != nil {
			expanded = flagPath
		}
		path = expanded
	}
	if err := log.SetFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}
