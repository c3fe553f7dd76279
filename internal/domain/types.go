package domain

import "fmt"

// Unit is the linear unit system a project is expressed in.
type Unit int

const (
	Inch Unit = iota
	Millimeter
)

func (u Unit) String() string {
	switch u {
	case Inch:
		return "inch"
	case Millimeter:
		return "mm"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit maps the stored form back to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "inch":
		return Inch, nil
	case "mm":
		return Millimeter, nil
	}
	return 0, fmt.Errorf("unknown unit %q", s)
}

// CoordMode says whether stored point values are measured from the origin or
// as displacements from the previous point.
type CoordMode int

const (
	Absolute CoordMode = iota
	Relative
)

func (m CoordMode) String() string {
	switch m {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	}
	return fmt.Sprintf("CoordMode(%d)", int(m))
}

// ParseCoordMode maps the stored form back to a CoordMode.
func ParseCoordMode(s string) (CoordMode, error) {
	switch s {
	case "absolute":
		return Absolute, nil
	case "relative":
		return Relative, nil
	}
	return 0, fmt.Errorf("unknown coordinate mode %q", s)
}

// XY is an evaluated coordinate pair.
type XY struct {
	X, Y float64
}

// Settings holds the per-project drilling parameters. Depth and plunge rate
// are kept as the expression text the user typed, not evaluated values.
type Settings struct {
	Units      Unit
	Mode       CoordMode
	DepthExpr  string
	PlungeExpr string
}

// Project is the unit of load/save: settings plus the ordered point list plus
// the remembered file location. A Project with an empty Path is unsaved.
type Project struct {
	Settings Settings
	Points   *PointStore
	Path     string
}

// NewProject returns an empty unsaved project with default settings.
func NewProject() *Project {
	return &Project{
		Settings: Settings{Units: Inch, Mode: Absolute},
		Points:   NewPointStore(),
	}
}
