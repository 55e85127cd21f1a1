package session

import (
	"fmt"

	"github.com/mikanfactory/changed/internal/model"
)

const placeholderPrefix = "Changed Filter |"

// MenuItem is one selectable row: a label and an optional detail line.
// File is set when Label is a repository-relative path.
type MenuItem struct {
	Label  string
	Detail string
	File   bool
}

// Menu is what the shell should display for the current state.
type Menu struct {
	Items       []MenuItem
	Placeholder string
}

// Menu returns the menu for the current state; it is empty once the session is done.
func (s Session) Menu() Menu {
	switch s.state {
	case StateFilterSelect:
		items := make([]MenuItem, 0, len(model.FilterKinds))
		for _, kind := range model.FilterKinds {
			items = append(items, MenuItem{
				Label:  fmt.Sprintf("%s (%d files)", kind.Title(), s.set.Count(kind)),
				Detail: kind.Description(),
			})
		}
		return Menu{Items: items, Placeholder: placeholderPrefix}

	case StateFileSelect:
		files := s.set.Paths(s.filter)
		items := make([]MenuItem, 0, len(files))
		for _, path := range files {
			items = append(items, MenuItem{Label: path, Detail: s.set.Code(path), File: true})
		}
		return Menu{
			Items:       items,
			Placeholder: fmt.Sprintf("%s %s |", placeholderPrefix, s.filter.Title()),
		}
	}

	return Menu{}
}
