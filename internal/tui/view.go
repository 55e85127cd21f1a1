package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
)

const (
	title = "Changed Filter |"
	// border, header, help line and its padding
	chromeHeight = 6
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	inner := m.width - frameStyle.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}
	boxWidth := inner + frameStyle.GetHorizontalPadding()

	var body string
	switch {
	case m.loading:
		body = placeholderStyle.Render(title) + "\n" + emptyStyle.Render("Loading changes...")

	case m.shell.panel != nil:
		body = m.renderPanel(inner)

	case m.shell.notice != "":
		body = placeholderStyle.Render(title) + "\n" +
			noticeStyle.Render(truncate.StringWithTail(m.shell.notice, uint(inner-2), "…")) + "\n" +
			helpStyle.Render("press any key to close")
	}

	return zone.Scan(frameStyle.Width(boxWidth).Render(body))
}

func (m Model) renderPanel(width int) string {
	p := m.shell.panel

	var b strings.Builder
	b.WriteString(placeholderStyle.Render(p.placeholder))
	b.WriteString(" ")
	b.WriteString(queryStyle.Render(p.query.View()))
	b.WriteString("\n")

	if len(p.visible) == 0 {
		b.WriteString(emptyStyle.Render("No matches"))
		b.WriteString("\n")
	}

	rows := 1
	if hasDetailRows(p) {
		rows = 2
	}
	capacity := (m.height - chromeHeight) / rows
	if capacity < 1 {
		capacity = 1
	}
	p.scrollOff = adjustScroll(p.cursor, p.scrollOff, capacity, len(p.visible))

	end := p.scrollOff + capacity
	if end > len(p.visible) {
		end = len(p.visible)
	}

	for vi := p.scrollOff; vi < end; vi++ {
		idx := p.visible[vi]
		b.WriteString(zone.Mark(ZoneID(idx), m.renderItem(idx, vi == p.cursor, width)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// hasDetailRows reports whether items show their detail on a second line.
func hasDetailRows(p *panel) bool {
	for _, item := range p.items {
		if !item.File && item.Detail != "" {
			return true
		}
	}
	return false
}

func (m Model) renderItem(idx int, selected bool, width int) string {
	item := m.shell.panel.items[idx]

	label := item.Label
	if item.File && m.opts.Icons {
		label = fileIcon(item.Label) + label
	}

	prefix := "  "
	style := itemStyle
	if selected {
		prefix = "> "
		style = itemSelectedStyle
	}

	if item.File {
		code := renderCode(item.Detail)
		room := width - lipgloss.Width(prefix) - lipgloss.Width(code) - 1
		if room < 1 {
			room = 1
		}
		label = truncate.StringWithTail(label, uint(room), "…")
		gap := width - lipgloss.Width(prefix) - lipgloss.Width(label) - lipgloss.Width(code)
		if gap < 1 {
			gap = 1
		}
		return style.Render(prefix+label) + strings.Repeat(" ", gap) + code
	}

	line := style.Render(prefix + truncate.StringWithTail(label, uint(width-2), "…"))
	if item.Detail == "" {
		return line
	}
	return line + "\n" + detailStyle.Render(truncate.StringWithTail(item.Detail, uint(width-2), "…"))
}
