package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"spotdrill/internal/domain"
)

var (
	// ErrNotFound means the project file does not exist.
	ErrNotFound = errors.New("project file not found")
	// ErrParse means the project file is not a well-formed project document.
	ErrParse = errors.New("project file is not well formed")
	// ErrPermission means the destination refused the write.
	ErrPermission = errors.New("destination is not writable")
)

// projectDoc is the on-disk shape: five fields, expressions stored as the
// text the user typed. A blank expression is stored as a single space so it
// cannot be confused with an absent field; load restores it to "".
type projectDoc struct {
	Units      string     `json:"units"`
	Mode       string     `json:"mode"`
	Depth      string     `json:"depth"`
	PlungeRate string     `json:"plunge_rate"`
	Points     []pointDoc `json:"points"`
}

type pointDoc struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// ProjectStore reads and writes project documents on disk.
type ProjectStore struct{}

func NewProjectStore() *ProjectStore { return &ProjectStore{} }

// Load reads the project at path. The returned project remembers path as its
// location. Fails with ErrNotFound or ErrParse; it never returns a partially
// populated project.
func (s *ProjectStore) Load(path string) (*domain.Project, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, err
	}

	var doc projectDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	units, err := domain.ParseUnit(doc.Units)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	mode, err := domain.ParseCoordMode(doc.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	p := domain.NewProject()
	p.Settings.Units = units
	p.Settings.Mode = mode
	p.Settings.DepthExpr = unpad(doc.Depth)
	p.Settings.PlungeExpr = unpad(doc.PlungeRate)
	p.Path = path

	points := make([]domain.Point, len(doc.Points))
	for i, pt := range doc.Points {
		points[i] = domain.Point{XExpr: unpad(pt.X), YExpr: unpad(pt.Y)}
	}
	p.Points.Replace(points)
	return p, nil
}

// Save writes the project to path and, only on success, updates the
// project's remembered location so a later plain save reuses it.
func (s *ProjectStore) Save(p *domain.Project, path string) error {
	doc := projectDoc{
		Units:      p.Settings.Units.String(),
		Mode:       p.Settings.Mode.String(),
		Depth:      pad(p.Settings.DepthExpr),
		PlungeRate: pad(p.Settings.PlungeExpr),
		Points:     make([]pointDoc, 0, p.Points.Len()),
	}
	for _, pt := range p.Points.Points() {
		doc.Points = append(doc.Points, pointDoc{X: pad(pt.XExpr), Y: pad(pt.YExpr)})
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := writeFile(path, b, 0o644); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %s", ErrPermission, path)
		}
		return err
	}
	p.Path = path
	return nil
}

// pad encodes a blank expression as a single space for storage.
func pad(expr string) string {
	if expr == "" {
		return " "
	}
	return expr
}

// unpad restores a lone-space field to the empty expression.
func unpad(field string) string {
	if field == " " {
		return ""
	}
	return field
}
