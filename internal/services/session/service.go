package session

import (
	"errors"
	"fmt"

	"spotdrill/internal/convert"
	"spotdrill/internal/domain"
	"spotdrill/internal/expr"
)

// ErrUnsaved means Save was called on a project with no remembered location.
var ErrUnsaved = errors.New("project has no file location; use save-as")

// Service owns the current project and mediates all load/save traffic
// through the project store.
type Service struct {
	store   domain.ProjectStore
	current *domain.Project
}

func New(store domain.ProjectStore) *Service {
	return &Service{store: store, current: domain.NewProject()}
}

// Current returns the open project. Never nil.
func (s *Service) Current() *domain.Project { return s.current }

// New discards the open project and starts an empty unsaved one.
func (s *Service) New() *domain.Project {
	s.current = domain.NewProject()
	return s.current
}

// Open replaces the open project with the one at path. A failed load leaves
// the current project untouched.
func (s *Service) Open(path string) error {
	p, err := s.store.Load(path)
	if err != nil {
		return err
	}
	s.current = p
	return nil
}

// Save writes the project back to its remembered location. An unsaved
// project has nowhere to go; that is the save-as case.
func (s *Service) Save() error {
	if s.current.Path == "" {
		return ErrUnsaved
	}
	return s.store.Save(s.current, s.current.Path)
}

// SaveAs writes the project to path; on success the project remembers it.
func (s *Service) SaveAs(path string) error {
	return s.store.Save(s.current, path)
}

// ChangeUnits switches the project's unit system, converting every existing
// value: point coordinates, depth and plunge rate. Each non-blank expression
// is evaluated, converted and written back as a plain number, which is what
// the unit selector does in the form. Blank fields stay blank. Any invalid
// expression refuses the switch and leaves the project untouched.
func (s *Service) ChangeUnits(to domain.Unit) error {
	p := s.current
	from := p.Settings.Units
	if from == to {
		return nil
	}

	depth, err := convertExpr(p.Settings.DepthExpr, from, to)
	if err != nil {
		return fmt.Errorf("depth: %w", err)
	}
	rate, err := convertExpr(p.Settings.PlungeExpr, from, to)
	if err != nil {
		return fmt.Errorf("plunge rate: %w", err)
	}

	points := p.Points.Points()
	for i := range points {
		x, err := convertExpr(points[i].XExpr, from, to)
		if err != nil {
			return fmt.Errorf("point %d x: %w", i, err)
		}
		y, err := convertExpr(points[i].YExpr, from, to)
		if err != nil {
			return fmt.Errorf("point %d y: %w", i, err)
		}
		points[i].XExpr = x
		points[i].YExpr = y
	}

	p.Settings.DepthExpr = depth
	p.Settings.PlungeExpr = rate
	p.Points.Replace(points)
	p.Settings.Units = to
	return nil
}

// ChangeMode switches between absolute and relative interpretation,
// rewriting existing points through the mode transform. Fields whose value
// the transform does not change keep their typed text, so blank fields stay
// blank. Stores with fewer than two points only flip the setting; there is
// no displacement to compute. Any invalid expression refuses the switch.
func (s *Service) ChangeMode(to domain.CoordMode) error {
	p := s.current
	if p.Settings.Mode == to {
		return nil
	}
	if p.Points.Len() < 2 {
		p.Settings.Mode = to
		return nil
	}

	points := p.Points.Points()
	orig := make([]domain.XY, len(points))
	for i, pt := range points {
		x, err := expr.Evaluate(pt.XExpr)
		if err != nil {
			return fmt.Errorf("point %d x: %w", i, err)
		}
		y, err := expr.Evaluate(pt.YExpr)
		if err != nil {
			return fmt.Errorf("point %d y: %w", i, err)
		}
		orig[i] = domain.XY{X: x, Y: y}
	}

	var vals []domain.XY
	if to == domain.Absolute {
		vals = convert.ToAbsolute(orig)
	} else {
		vals = convert.ToRelative(orig)
	}

	// Only fields whose value actually changed are rewritten; point 0 and
	// blanks with no displacement keep the text the user typed.
	for i := range points {
		if vals[i].X != orig[i].X {
			points[i].XExpr = convert.FormatNumber(vals[i].X)
		}
		if vals[i].Y != orig[i].Y {
			points[i].YExpr = convert.FormatNumber(vals[i].Y)
		}
	}
	p.Points.Replace(points)
	p.Settings.Mode = to
	return nil
}

// convertExpr evaluates one expression and renders the converted value.
// Blank stays blank rather than becoming "0".
func convertExpr(text string, from, to domain.Unit) (string, error) {
	if expr.IsBlank(text) {
		return "", nil
	}
	v, err := expr.Evaluate(text)
	if err != nil {
		return "", err
	}
	return convert.FormatNumber(convert.Length(v, from, to)), nil
}
