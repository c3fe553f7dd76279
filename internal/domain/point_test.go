package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotdrill/internal/domain"
)

// checkInvariants asserts the two structural invariants every operation must
// preserve: contiguous indices and at most one selected row.
func checkInvariants(t *testing.T, s *domain.PointStore) {
	t.Helper()
	selected := 0
	for i, p := range s.Points() {
		require.Equal(t, i, p.Index, "indices must be contiguous")
		if p.Selected {
			selected++
			require.Equal(t, i, s.SelectedIndex())
		}
	}
	require.LessOrEqual(t, selected, 1, "at most one row selected")
	if selected == 0 {
		require.Equal(t, domain.NoSelection, s.SelectedIndex())
	}
}

func TestAppend_SelectsNewRow(t *testing.T) {
	s := domain.NewPointStore()
	require.Equal(t, domain.NoSelection, s.SelectedIndex())

	assert.Equal(t, 0, s.Append("1", "2"))
	assert.Equal(t, 1, s.Append("3", "4"))
	assert.Equal(t, 1, s.SelectedIndex())
	checkInvariants(t, s)
}

func TestInsert_ShiftsAndSelects(t *testing.T) {
	s := domain.NewPointStore()
	s.Append("1", "1")
	s.Append("2", "2")
	s.Append("3", "3")

	require.True(t, s.InsertBefore(1, "9", "9"))
	pts := s.Points()
	assert.Equal(t, "9", pts[1].XExpr)
	assert.Equal(t, "2", pts[2].XExpr)
	assert.Equal(t, 1, s.SelectedIndex())
	checkInvariants(t, s)

	require.True(t, s.InsertAfter(3, "8", "8"))
	pts = s.Points()
	assert.Equal(t, "8", pts[4].XExpr)
	assert.Equal(t, 4, s.SelectedIndex())
	checkInvariants(t, s)

	assert.False(t, s.InsertBefore(99, "x", "y"))
	assert.Equal(t, 5, s.Len())
}

func TestDelete_RequiresSelectionAndClearsIt(t *testing.T) {
	s := domain.NewPointStore()
	s.Append("1", "1")
	s.Append("2", "2")
	s.Append("3", "3")

	// Nothing selected: delete is a no-op.
	s.Deselect(s.SelectedIndex())
	assert.False(t, s.Delete(1))
	assert.Equal(t, 3, s.Len())

	require.True(t, s.Select(0))
	assert.True(t, s.Delete(0))
	assert.Equal(t, 2, s.Len())
	// Deletion never auto-selects another row.
	assert.Equal(t, domain.NoSelection, s.SelectedIndex())
	assert.Equal(t, "2", s.Points()[0].XExpr)
	checkInvariants(t, s)

	// Selected but out-of-range index: no-op.
	s.Select(1)
	assert.False(t, s.Delete(5))
	checkInvariants(t, s)
}

func TestDelete_SelectedAfterDeletedIndex(t *testing.T) {
	s := domain.NewPointStore()
	s.Append("1", "1")
	s.Append("2", "2")
	s.Append("3", "3") // selected

	assert.True(t, s.Delete(0))
	assert.Equal(t, domain.NoSelection, s.SelectedIndex())
	checkInvariants(t, s)
}

func TestMoveUp_SelectionFollowsContent(t *testing.T) {
	s := domain.NewPointStore()
	s.Append("1", "1")
	s.Append("2", "2")
	s.Append("3", "3")
	moved, _ := s.At(2)

	require.True(t, s.MoveUp(2))

	pts := s.Points()
	assert.Equal(t, "1", pts[0].XExpr)
	assert.Equal(t, "3", pts[1].XExpr)
	assert.Equal(t, "2", pts[2].XExpr)
	assert.Equal(t, 1, s.SelectedIndex())
	// Identity travels with the moved content.
	assert.Equal(t, moved.ID, pts[1].ID)
	checkInvariants(t, s)
}

func TestMoveUpThenDown_RestoresOrder(t *testing.T) {
	s := domain.NewPointStore()
	s.Append("a1", "b1")
	s.Append("a2", "b2")
	s.Append("a3", "b3")
	before := s.Points()

	require.True(t, s.MoveUp(1))
	require.True(t, s.MoveDown(0))

	after := s.Points()
	for i := range before {
		assert.Equal(t, before[i].XExpr, after[i].XExpr)
		assert.Equal(t, before[i].ID, after[i].ID)
	}
	checkInvariants(t, s)
}

func TestMove_BoundaryNoOps(t *testing.T) {
	s := domain.NewPointStore()
	s.Append("1", "1")
	s.Append("2", "2")

	assert.False(t, s.MoveUp(0))
	assert.False(t, s.MoveDown(1))
	assert.False(t, s.MoveUp(5))
	checkInvariants(t, s)
}

func TestSelectDeselect(t *testing.T) {
	s := domain.NewPointStore()
	s.Append("1", "1")
	s.Append("2", "2")

	require.True(t, s.Select(0))
	assert.Equal(t, 0, s.SelectedIndex())
	checkInvariants(t, s)

	// Stale deselect for a different row must not disturb state.
	s.Deselect(1)
	assert.Equal(t, 0, s.SelectedIndex())

	s.Deselect(0)
	assert.Equal(t, domain.NoSelection, s.SelectedIndex())
	checkInvariants(t, s)

	assert.False(t, s.Select(7))
	assert.Equal(t, domain.NoSelection, s.SelectedIndex())
}

func TestIndices_StayContiguousUnderMixedOps(t *testing.T) {
	s := domain.NewPointStore()
	s.Append("0", "0")
	checkInvariants(t, s)
	s.InsertAfter(0, "1", "1")
	checkInvariants(t, s)
	s.InsertBefore(0, "2", "2")
	checkInvariants(t, s)
	s.Select(1)
	s.Delete(1)
	checkInvariants(t, s)
	s.Append("3", "3")
	checkInvariants(t, s)
	s.MoveDown(0)
	checkInvariants(t, s)
	s.Clear()
	checkInvariants(t, s)
	assert.Equal(t, 0, s.Len())
}

func TestReplace_ResetsSelectionAndRenumbers(t *testing.T) {
	s := domain.NewPointStore()
	s.Append("old", "old")

	s.Replace([]domain.Point{
		{XExpr: "1", YExpr: "2"},
		{XExpr: "3", YExpr: "4"},
	})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, domain.NoSelection, s.SelectedIndex())
	for i, p := range s.Points() {
		assert.Equal(t, i, p.Index)
		assert.NotZero(t, p.ID)
	}
}

func TestSetExprs(t *testing.T) {
	s := domain.NewPointStore()
	s.Append("1", "1")
	id := s.Points()[0].ID

	require.True(t, s.SetExprs(0, "5+5", "6*2"))
	p, _ := s.At(0)
	assert.Equal(t, "5+5", p.XExpr)
	assert.Equal(t, "6*2", p.YExpr)
	assert.Equal(t, id, p.ID)

	assert.False(t, s.SetExprs(3, "x", "y"))
}
