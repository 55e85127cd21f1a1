package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mikanfactory/changed/internal/session"
)

// Shell implements command.Shell for the terminal UI. The command calls it
// from inside Update, so it only records what to show next.
type Shell struct {
	panel    *panel
	notice   string
	openPath string
}

func (s *Shell) PresentChoiceMenu(items []session.MenuItem, onChoose func(int), placeholder string) {
	s.panel = newPanel(items, onChoose, placeholder)
	s.notice = ""
}

func (s *Shell) PresentNotice(message string) {
	s.panel = nil
	s.notice = message
}

func (s *Shell) OpenFile(path string) {
	s.panel = nil
	s.openPath = path
}

// choose hands choice to the waiting menu's callback.
func (s *Shell) choose(choice int) {
	p := s.panel
	if p == nil {
		return
	}
	s.panel = nil
	p.onChoose(choice)
}

// panel is one quick-panel menu: the items, a query line that narrows them,
// and a cursor over the narrowed list.
type panel struct {
	items       []session.MenuItem
	onChoose    func(int)
	placeholder string
	query       textinput.Model
	visible     []int // indexes into items
	cursor      int   // index into visible
	scrollOff   int
}

func newPanel(items []session.MenuItem, onChoose func(int), placeholder string) *panel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type to filter"
	ti.CharLimit = 256
	ti.Focus()

	p := &panel{
		items:       items,
		onChoose:    onChoose,
		placeholder: placeholder,
		query:       ti,
	}
	p.refilter()
	return p
}

// refilter recomputes visible from the query, keeping the cursor on the same
// item when it is still shown.
func (p *panel) refilter() {
	current := p.selected()

	p.visible = p.visible[:0]
	for i, item := range p.items {
		if fuzzyMatch(p.query.Value(), item.Label) {
			p.visible = append(p.visible, i)
		}
	}

	p.cursor = 0
	for vi, idx := range p.visible {
		if idx == current {
			p.cursor = vi
			break
		}
	}
	p.scrollOff = 0
}

// selected returns the item index under the cursor, or -1 if nothing is shown.
func (p *panel) selected() int {
	if p.cursor < 0 || p.cursor >= len(p.visible) {
		return -1
	}
	return p.visible[p.cursor]
}

func (p *panel) moveUp() {
	p.cursor = prevIndex(len(p.visible), p.cursor)
}

func (p *panel) moveDown() {
	p.cursor = nextIndex(len(p.visible), p.cursor)
}
