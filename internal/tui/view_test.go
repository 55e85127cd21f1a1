package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mikanfactory/changed/internal/opener"
)

func TestView_Loading(t *testing.T) {
	m := NewModel(context.Background(), testCommand(mixedStatus), opener.Opener{}, Options{})

	if !strings.Contains(m.View(), "Loading changes...") {
		t.Errorf("view = %q", m.View())
	}
}

func TestView_FilterMenu(t *testing.T) {
	m := testModel(t, mixedStatus, Options{})
	view := m.View()

	for _, want := range []string{
		"Changed Filter |",
		"> All Changes (4 files)",
		"Staged Only (2 files)",
		"Unstaged Only (2 files)",
		"Show only files in the staging area",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestView_FileMenuShowsCodes(t *testing.T) {
	m := testModel(t, mixedStatus, Options{})
	m, _ = press(t, m, keyEnter)
	view := m.View()

	for _, want := range []string{"Changed Filter | All Changes |", "> file_a.txt", "file_c.txt", "??"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestView_TruncatesLongPaths(t *testing.T) {
	long := strings.Repeat("deep/", 30) + "file.go"
	m := testModel(t, " M "+long+"\n", Options{})
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 40, Height: 20}, keyEnter)

	view := m.View()
	if strings.Contains(view, long) {
		t.Error("long path should be truncated")
	}
	if !strings.Contains(view, "…") {
		t.Error("truncated path should end with an ellipsis")
	}
}

func TestView_ScrollsToCursor(t *testing.T) {
	var b strings.Builder
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		b.WriteString(" M " + name + ".go\n")
	}
	m := testModel(t, b.String(), Options{})
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 60, Height: 10}, keyEnter)

	for i := 0; i < 9; i++ {
		m, _ = press(t, m, keyDown)
	}
	view := m.View()

	if !strings.Contains(view, "> j.go") {
		t.Errorf("cursor row should be visible:\n%s", view)
	}
	if strings.Contains(view, "a.go") {
		t.Errorf("first row should have scrolled away:\n%s", view)
	}
}

func TestView_QuittingIsEmpty(t *testing.T) {
	m := testModel(t, mixedStatus, Options{})
	m, _ = press(t, m, keyEsc)

	if m.View() != "" {
		t.Errorf("view = %q, want empty", m.View())
	}
}

func TestRenderCode(t *testing.T) {
	for _, code := range []string{"M ", " M", "??", "MM"} {
		if got := renderCode(code); lipgloss.Width(got) != 2 {
			t.Errorf("renderCode(%q) width = %d, want 2", code, lipgloss.Width(got))
		}
	}
	if got := renderCode("x"); got != "x" {
		t.Errorf("renderCode(\"x\") = %q", got)
	}
}

func TestFileIcon(t *testing.T) {
	if got := fileIcon("cmd/main.go"); got != "" && !strings.HasSuffix(got, " ") {
		t.Errorf("fileIcon should end with a space, got %q", got)
	}
	if got := fileIcon(""); got != "" {
		t.Errorf("fileIcon(\"\") = %q, want empty", got)
	}
}
