package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikanfactory/changed/internal/changeset"
	apperrors "github.com/mikanfactory/changed/internal/errors"
	"github.com/mikanfactory/changed/internal/model"
)

const root = "/code/app"

func newSession(lines ...string) Session {
	return New(root, changeset.Classify(changeset.Parse(lines)))
}

func exampleSession() Session {
	return newSession("M  file_a.txt", " M file_b.txt", "?? file_c.txt", "A  file_d.txt")
}

func TestNew_StartsAtFilterSelect(t *testing.T) {
	s := exampleSession()

	assert.Equal(t, StateFilterSelect, s.State())
	assert.Equal(t, root, s.Root())
	_, ok := s.Filter()
	assert.False(t, ok)
	assert.Nil(t, s.Files())
}

func TestMenu_FilterLabelsCarryCounts(t *testing.T) {
	s := newSession("MM both.go", "?? new.go", "A  added.go")

	menu := s.Menu()

	require.Len(t, menu.Items, 3)
	assert.Equal(t, "All Changes (3 files)", menu.Items[0].Label)
	assert.Equal(t, "Staged Only (2 files)", menu.Items[1].Label)
	assert.Equal(t, "Unstaged Only (2 files)", menu.Items[2].Label)
	assert.Equal(t, "Show only unstaged changes and untracked files", menu.Items[2].Detail)
	assert.Equal(t, "Changed Filter |", menu.Placeholder)
}

func TestChoose_FilterThenFile(t *testing.T) {
	s := exampleSession()

	s, out := s.Choose(2) // unstaged
	require.Equal(t, OutcomeMenu, out.Kind)
	require.Equal(t, StateFileSelect, s.State())
	kind, ok := s.Filter()
	require.True(t, ok)
	assert.Equal(t, model.FilterUnstaged, kind)

	menu := s.Menu()
	assert.Equal(t, "Changed Filter | Unstaged Only |", menu.Placeholder)
	require.Len(t, menu.Items, 2)
	assert.Equal(t, MenuItem{Label: "file_b.txt", Detail: " M", File: true}, menu.Items[0])
	assert.Equal(t, MenuItem{Label: "file_c.txt", Detail: "??", File: true}, menu.Items[1])

	s, out = s.Choose(1)
	assert.Equal(t, StateDone, s.State())
	assert.Equal(t, OutcomeOpen, out.Kind)
	assert.Equal(t, "/code/app/file_c.txt", out.Path)
}

func TestChoose_CancelAtFileSelectReturnsToFilters(t *testing.T) {
	s := exampleSession()

	s, _ = s.Choose(1)
	require.Equal(t, StateFileSelect, s.State())

	s, out := s.Choose(Cancel)
	assert.Equal(t, OutcomeMenu, out.Kind)
	assert.Equal(t, StateFilterSelect, s.State())
	assert.Len(t, s.Menu().Items, 3)
}

func TestChoose_CancelAtFilterSelectEnds(t *testing.T) {
	s, out := exampleSession().Choose(Cancel)

	assert.Equal(t, StateDone, s.State())
	assert.Equal(t, OutcomeClose, out.Kind)
	assert.NoError(t, out.Err)
	assert.Empty(t, out.Path)
	assert.Empty(t, s.Menu().Items)
}

func TestChoose_EmptyCategoryIsNotice(t *testing.T) {
	s := newSession(" M only_unstaged.go")

	s, out := s.Choose(1) // staged
	assert.Equal(t, StateDone, s.State())
	assert.Equal(t, OutcomeNotice, out.Kind)
	assert.True(t, errors.Is(out.Err, apperrors.ErrEmptyCategory))
	assert.Equal(t, "No staged only", out.Err.Error())
}

func TestChoose_OutOfRangeKeepsState(t *testing.T) {
	s := exampleSession()

	next, out := s.Choose(7)
	assert.Equal(t, StateFilterSelect, next.State())
	assert.Equal(t, OutcomeMenu, out.Kind)

	next, _ = s.Choose(0)
	after, out := next.Choose(42)
	assert.Equal(t, StateFileSelect, after.State())
	assert.Equal(t, OutcomeMenu, out.Kind)
}

func TestChoose_DoesNotMutateReceiver(t *testing.T) {
	s := exampleSession()

	_, _ = s.Choose(0)

	assert.Equal(t, StateFilterSelect, s.State())
}

func TestChoose_AllFilterListsEachPathOnce(t *testing.T) {
	s := newSession("MM both.go", "M  staged.go")

	s, _ = s.Choose(0)
	assert.Equal(t, []string{"both.go", "staged.go"}, s.Files())

	_, out := s.Choose(0)
	assert.Equal(t, "/code/app/both.go", out.Path)
}

func TestChoose_DoneIgnoresInput(t *testing.T) {
	s, _ := exampleSession().Choose(Cancel)

	next, out := s.Choose(0)
	assert.Equal(t, StateDone, next.State())
	assert.Equal(t, OutcomeClose, out.Kind)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "filter-select", StateFilterSelect.String())
	assert.Equal(t, "file-select", StateFileSelect.String())
	assert.Equal(t, "done", StateDone.String())
}
