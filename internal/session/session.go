// Package session implements the two-level selection flow: pick a filter,
// then pick a file from it. Cancelling the file menu returns to the filter
// menu; cancelling the filter menu ends the session.
package session

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mikanfactory/changed/internal/changeset"
	apperrors "github.com/mikanfactory/changed/internal/errors"
	"github.com/mikanfactory/changed/internal/log"
	"github.com/mikanfactory/changed/internal/model"
)

// Cancel is the choice reported when the user dismisses a menu.
const Cancel = -1

// State is a step of the selection flow.
type State int

const (
	StateFilterSelect State = iota
	StateFileSelect
	StateDone
)

func (s State) String() string {
	switch s {
	case StateFilterSelect:
		return "filter-select"
	case StateFileSelect:
		return "file-select"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// OutcomeKind tells the caller what to do after a transition.
type OutcomeKind int

const (
	// OutcomeMenu means the next state's menu should be shown.
	OutcomeMenu OutcomeKind = iota
	// OutcomeClose ends the session silently.
	OutcomeClose
	// OutcomeNotice ends the session with Outcome.Err shown to the user.
	OutcomeNotice
	// OutcomeOpen ends the session by opening Outcome.Path.
	OutcomeOpen
)

// Outcome is the side effect requested by a transition.
type Outcome struct {
	Kind OutcomeKind
	Path string
	Err  error
}

// EmptyCategoryError is reported when a filter with no files is chosen.
type EmptyCategoryError struct {
	Filter model.FilterKind
}

func (e *EmptyCategoryError) Error() string {
	return "No " + strings.ToLower(e.Filter.Title())
}

func (e *EmptyCategoryError) Unwrap() error {
	return apperrors.ErrEmptyCategory
}

var logger = log.Logger("[session] ")

// Session is one invocation's selection state. Transitions return a new
// value; a Session is never modified in place.
type Session struct {
	root   string
	set    changeset.Set
	filter model.FilterKind
	state  State
}

// New starts a session at the filter menu.
func New(root string, set changeset.Set) Session {
	return Session{root: root, set: set, state: StateFilterSelect}
}

// Root is the absolute repository root.
func (s Session) Root() string { return s.root }

// State is the current step.
func (s Session) State() State { return s.state }

// Changes is the classified snapshot the session was built from.
func (s Session) Changes() changeset.Set { return s.set }

// Filter returns the active filter; ok is false outside the file menu.
func (s Session) Filter() (model.FilterKind, bool) {
	return s.filter, s.state == StateFileSelect
}

// Files returns the paths offered by the file menu, or nil in other states.
func (s Session) Files() []string {
	if s.state != StateFileSelect {
		return nil
	}
	return s.set.Paths(s.filter)
}

// Choose applies the user's choice (an item index or Cancel) to the current
// state. Out-of-range indexes leave the session unchanged.
func (s Session) Choose(choice int) (Session, Outcome) {
	next, out := s.choose(choice)
	if next.state != s.state {
		logger.Printf("%s -> %s (choice=%d outcome=%d)", s.state, next.state, choice, out.Kind)
	}
	return next, out
}

func (s Session) choose(choice int) (Session, Outcome) {
	switch s.state {
	case StateFilterSelect:
		if choice == Cancel {
			s.state = StateDone
			return s, Outcome{Kind: OutcomeClose}
		}
		if choice < 0 || choice >= len(model.FilterKinds) {
			return s, Outcome{Kind: OutcomeMenu}
		}
		kind := model.FilterKinds[choice]
		if s.set.Count(kind) == 0 {
			s.state = StateDone
			return s, Outcome{Kind: OutcomeNotice, Err: &EmptyCategoryError{Filter: kind}}
		}
		s.filter = kind
		s.state = StateFileSelect
		return s, Outcome{Kind: OutcomeMenu}

	case StateFileSelect:
		if choice == Cancel {
			s.filter = model.FilterAll
			s.state = StateFilterSelect
			return s, Outcome{Kind: OutcomeMenu}
		}
		files := s.set.Paths(s.filter)
		if choice < 0 || choice >= len(files) {
			return s, Outcome{Kind: OutcomeMenu}
		}
		s.state = StateDone
		return s, Outcome{Kind: OutcomeOpen, Path: filepath.Join(s.root, files[choice])}
	}

	return s, Outcome{Kind: OutcomeClose}
}
