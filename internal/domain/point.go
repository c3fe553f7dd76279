package domain

import "github.com/google/uuid"

// NoSelection is the PointStore selection sentinel.
const NoSelection = -1

// Point is one row of the drill list. The coordinates are the expression
// strings the user typed, not evaluated numbers. ID is a stable identity so a
// presentation layer can key weak references to a row without co-owning it;
// identity travels with the row's content when rows are moved.
type Point struct {
	ID       uuid.UUID
	XExpr    string
	YExpr    string
	Index    int
	Selected bool
}

// PointStore owns the ordered point list and the single-selection invariant.
// Indices are always exactly 0..Len()-1 in list order, and at most one point
// is selected at any time.
type PointStore struct {
	points   []Point
	selected int
}

func NewPointStore() *PointStore {
	return &PointStore{selected: NoSelection}
}

func (s *PointStore) Len() int { return len(s.points) }

// SelectedIndex returns the selected row, or NoSelection.
func (s *PointStore) SelectedIndex() int { return s.selected }

// At returns a copy of the point at index.
func (s *PointStore) At(index int) (Point, bool) {
	if index < 0 || index >= len(s.points) {
		return Point{}, false
	}
	return s.points[index], true
}

// Points returns a copy of the list in display order.
func (s *PointStore) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Append adds a point at the end and selects it, so the new row can be
// reordered immediately. Returns the new point's index.
func (s *PointStore) Append(xExpr, yExpr string) int {
	s.clearSelected()
	s.points = append(s.points, Point{
		ID:       uuid.New(),
		XExpr:    xExpr,
		YExpr:    yExpr,
		Index:    len(s.points),
		Selected: true,
	})
	s.selected = len(s.points) - 1
	return s.selected
}

// InsertBefore adds a point just above target. Rows at or after the insertion
// point shift down by one; the new row takes the vacated index and becomes
// the selection. Returns false if target is out of range.
func (s *PointStore) InsertBefore(target int, xExpr, yExpr string) bool {
	return s.insert(target, xExpr, yExpr)
}

// InsertAfter adds a point just below target; otherwise as InsertBefore.
func (s *PointStore) InsertAfter(target int, xExpr, yExpr string) bool {
	return s.insert(target+1, xExpr, yExpr)
}

func (s *PointStore) insert(at int, xExpr, yExpr string) bool {
	if at < 0 || at > len(s.points) {
		return false
	}
	s.clearSelected()
	p := Point{ID: uuid.New(), XExpr: xExpr, YExpr: yExpr, Selected: true}
	s.points = append(s.points, Point{})
	copy(s.points[at+1:], s.points[at:])
	s.points[at] = p
	s.renumber()
	s.selected = at
	return true
}

// Delete removes the point at index and clears the selection. Deletion never
// auto-selects another row. No-op when nothing is selected or index is out of
// range; returns whether a point was removed.
func (s *PointStore) Delete(index int) bool {
	if s.selected == NoSelection || index < 0 || index >= len(s.points) {
		return false
	}
	s.clearSelected()
	s.selected = NoSelection
	s.points = append(s.points[:index], s.points[index+1:]...)
	s.renumber()
	return true
}

// MoveUp swaps the content of the row at index with the row above it. The
// identity holding the selected state follows the moved content, so the row
// now displaying the moved values stays selected. No-op at the top.
func (s *PointStore) MoveUp(index int) bool {
	if index <= 0 || index >= len(s.points) {
		return false
	}
	s.swapContent(index, index-1)
	return true
}

// MoveDown is MoveUp's mirror; no-op at the bottom.
func (s *PointStore) MoveDown(index int) bool {
	if index < 0 || index >= len(s.points)-1 {
		return false
	}
	s.swapContent(index, index+1)
	return true
}

// swapContent exchanges everything but the slot index between two rows.
func (s *PointStore) swapContent(a, b int) {
	pa, pb := s.points[a], s.points[b]
	pa.Index, pb.Index = pb.Index, pa.Index
	s.points[a], s.points[b] = pb, pa
	if s.points[a].Selected {
		s.selected = a
	} else if s.points[b].Selected {
		s.selected = b
	}
}

// Select marks index as the single selected row. No-op if out of range.
func (s *PointStore) Select(index int) bool {
	if index < 0 || index >= len(s.points) {
		return false
	}
	s.clearSelected()
	s.points[index].Selected = true
	s.selected = index
	return true
}

// Deselect clears the selection only if index is the selected row. Stale or
// duplicate deselect events for other rows must not disturb state.
func (s *PointStore) Deselect(index int) {
	if index != s.selected || index == NoSelection {
		return
	}
	s.points[index].Selected = false
	s.selected = NoSelection
}

// SetExprs replaces the expressions of the row at index, keeping identity and
// selection. This is the field-commit path for edits to an existing row.
func (s *PointStore) SetExprs(index int, xExpr, yExpr string) bool {
	if index < 0 || index >= len(s.points) {
		return false
	}
	s.points[index].XExpr = xExpr
	s.points[index].YExpr = yExpr
	return true
}

// Replace swaps in a whole new point list, as on project load or a bulk
// conversion write-back. Selection resets to none; rows missing an identity
// get a fresh one.
func (s *PointStore) Replace(points []Point) {
	s.points = make([]Point, len(points))
	copy(s.points, points)
	for i := range s.points {
		if s.points[i].ID == uuid.Nil {
			s.points[i].ID = uuid.New()
		}
		s.points[i].Selected = false
	}
	s.selected = NoSelection
	s.renumber()
}

// Clear empties the store and resets selection.
func (s *PointStore) Clear() {
	s.points = nil
	s.selected = NoSelection
}

func (s *PointStore) clearSelected() {
	if s.selected != NoSelection {
		s.points[s.selected].Selected = false
	}
}

func (s *PointStore) renumber() {
	for i := range s.points {
		s.points[i].Index = i
	}
}
