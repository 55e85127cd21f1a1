package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorFg     = lipgloss.Color("#cdd6f4")
	colorFgDim  = lipgloss.Color("#6c7086")
	colorAccent = lipgloss.Color("#89b4fa")
	colorGreen  = lipgloss.Color("#a6e3a1")
	colorRed    = lipgloss.Color("#f38ba8")
	colorYellow = lipgloss.Color("#f9e2af")
	colorBorder = lipgloss.Color("#45475a")

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(colorFgDim).
				Bold(true)

	queryStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	itemStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(colorFgDim).
			PaddingLeft(2)

	stagedCodeStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	unstagedCodeStyle = lipgloss.NewStyle().Foreground(colorRed)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			PaddingLeft(2)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorFgDim).
			PaddingLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorFgDim).
			PaddingTop(1)
)

// renderCode colors the index column green and the worktree column red, as
// `git status` does.
func renderCode(code string) string {
	if len(code) != 2 {
		return code
	}
	if code == "??" {
		return unstagedCodeStyle.Render(code)
	}
	return stagedCodeStyle.Render(code[:1]) + unstagedCodeStyle.Render(code[1:])
}
