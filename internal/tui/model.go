package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/mikanfactory/changed/internal/command"
	"github.com/mikanfactory/changed/internal/opener"
	"github.com/mikanfactory/changed/internal/session"
)

// PreparedMsg is sent when the working tree status has been collected.
type PreparedMsg struct {
	Session session.Session
}

// PrepareErrMsg is sent when collecting the status fails.
type PrepareErrMsg struct {
	Err error
}

// EditorFinishedMsg is sent when the foreground editor exits.
type EditorFinishedMsg struct {
	Err error
}

// OpenedInTmuxMsg is sent after asking tmux to show the file.
type OpenedInTmuxMsg struct {
	Err error
}

// Options tune presentation and what happens to the chosen file.
type Options struct {
	// Icons prefixes file items with a file-type glyph.
	Icons bool
	// PrintOnly records the chosen path instead of opening it.
	PrintOnly bool
}

// Model is the BubbleTea model hosting one changed-files session.
type Model struct {
	ctx     context.Context
	command *command.Command
	opener  opener.Opener
	opts    Options

	shell *Shell
	keys  keyMap
	help  help.Model

	width    int
	height   int
	loading  bool
	quitting bool
	selected string
	err      error
}

// NewModel creates a new TUI model.
func NewModel(ctx context.Context, cmd *command.Command, op opener.Opener, opts Options) Model {
	return Model{
		ctx:     ctx,
		command: cmd,
		opener:  op,
		opts:    opts,
		shell:   &Shell{},
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   80,
		height:  24,
		loading: true,
	}
}

// Selected returns the absolute path of the chosen file, if any.
func (m Model) Selected() string {
	return m.selected
}

// Err returns the error from opening the chosen file, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return prepareCmd(m.ctx, m.command)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case PreparedMsg:
		m.loading = false
		m.command.Present(m.shell, msg.Session)
		return m, nil

	case PrepareErrMsg:
		m.loading = false
		m.shell.PresentNotice(command.NoticeFor(msg.Err))
		return m, nil

	case EditorFinishedMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit

	case OpenedInTmuxMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit

	case tea.MouseMsg:
		if m.shell.panel == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for vi, idx := range m.shell.panel.visible {
			if zone.Get(ZoneID(idx)).InBounds(msg) {
				m.shell.panel.cursor = vi
				return m.choose(idx)
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	p := m.shell.panel
	if p == nil {
		// the notice is dismissed by any key
		if m.shell.notice != "" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		return m.choose(session.Cancel)

	case key.Matches(msg, m.keys.Choose):
		if idx := p.selected(); idx >= 0 {
			return m.choose(idx)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		p.moveUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		p.moveDown()
		return m, nil
	}

	var cmd tea.Cmd
	before := p.query.Value()
	p.query, cmd = p.query.Update(msg)
	if p.query.Value() != before {
		p.refilter()
	}
	return m, cmd
}

// choose forwards a choice to the session and reacts to whatever the session
// asked the shell to do next.
func (m Model) choose(choice int) (tea.Model, tea.Cmd) {
	m.shell.choose(choice)

	switch {
	case m.shell.openPath != "":
		m.selected = m.shell.openPath
		m.shell.openPath = ""
		if m.opts.PrintOnly {
			m.quitting = true
			return m, tea.Quit
		}
		if m.opener.InTmux() {
			return m, openInTmuxCmd(m.opener, m.selected)
		}
		return m, tea.ExecProcess(m.opener.Command(m.selected), func(err error) tea.Msg {
			return EditorFinishedMsg{Err: err}
		})

	case m.shell.panel != nil, m.shell.notice != "":
		return m, nil
	}

	m.quitting = true
	return m, tea.Quit
}

// ZoneID returns the bubblezone ID for the menu item at the given index.
func ZoneID(index int) string {
	return fmt.Sprintf("item-%d", index)
}

func prepareCmd(ctx context.Context, cmd *command.Command) tea.Cmd {
	return func() tea.Msg {
		s, err := cmd.Prepare(ctx)
		if err != nil {
			return PrepareErrMsg{Err: err}
		}
		return PreparedMsg{Session: s}
	}
}

func openInTmuxCmd(op opener.Opener, path string) tea.Cmd {
	return func() tea.Msg {
		return OpenedInTmuxMsg{Err: op.OpenInTmux(path)}
	}
}
