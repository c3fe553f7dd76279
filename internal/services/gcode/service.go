package gcode

import (
	"errors"
	"fmt"
	"strings"

	"spotdrill/internal/convert"
	"spotdrill/internal/domain"
	"spotdrill/internal/expr"
)

// SettingsField marks an InvalidExpressionError that refers to the depth or
// plunge-rate field rather than a point.
const SettingsField = -1

var errBlank = errors.New("field is blank")

// InvalidExpressionError reports which field stopped generation.
type InvalidExpressionError struct {
	Field string // "x", "y", "depth" or "plunge rate"
	Index int    // point index, or SettingsField
	Err   error
}

func (e *InvalidExpressionError) Error() string {
	if e.Index == SettingsField {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("point %d %s: %v", e.Index, e.Field, e.Err)
}

func (e *InvalidExpressionError) Unwrap() error { return e.Err }

// Generator emits one spot-drill cycle per point, in list order. Points are
// never reordered, deduplicated or spatially sorted.
type Generator struct{}

func New() *Generator { return &Generator{} }

// Generate evaluates every expression in the project and renders the
// instruction stream. Relative projects are resolved to absolute positions
// first; the emitted program always runs in absolute mode (G90). Writing the
// result anywhere is the caller's business.
func (g *Generator) Generate(p *domain.Project) (string, error) {
	depth, err := settingsValue("depth", p.Settings.DepthExpr)
	if err != nil {
		return "", err
	}
	rate, err := settingsValue("plunge rate", p.Settings.PlungeExpr)
	if err != nil {
		return "", err
	}

	// Blank coordinates evaluate to 0; that is a legal drill position.
	pts := make([]domain.XY, 0, p.Points.Len())
	for _, pt := range p.Points.Points() {
		x, err := expr.Evaluate(pt.XExpr)
		if err != nil {
			return "", &InvalidExpressionError{Field: "x", Index: pt.Index, Err: err}
		}
		y, err := expr.Evaluate(pt.YExpr)
		if err != nil {
			return "", &InvalidExpressionError{Field: "y", Index: pt.Index, Err: err}
		}
		pts = append(pts, domain.XY{X: x, Y: y})
	}

	if p.Settings.Mode == domain.Relative {
		pts = convert.ToAbsolute(pts)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "(spot drill: %d points, depth %s, plunge %s)\n",
		len(pts), convert.FormatNumber(depth), convert.FormatNumber(rate))
	b.WriteString("G17 G90 ")
	if p.Settings.Units == domain.Inch {
		b.WriteString("G20\n")
	} else {
		b.WriteString("G21\n")
	}
	b.WriteString("G0 Z0\n")

	// Depth is measured into the material from Z0, so the plunge target is
	// the negated depth.
	for _, pt := range pts {
		fmt.Fprintf(&b, "G0 X%s Y%s\n", convert.FormatNumber(pt.X), convert.FormatNumber(pt.Y))
		fmt.Fprintf(&b, "G1 Z%s F%s\n", convert.FormatNumber(-depth), convert.FormatNumber(rate))
		b.WriteString("G0 Z0\n")
	}
	b.WriteString("M2\n")
	return b.String(), nil
}

// settingsValue evaluates a required settings expression. Unlike point
// coordinates, a blank depth or plunge rate has no usable default.
func settingsValue(field, text string) (float64, error) {
	if expr.IsBlank(text) {
		return 0, &InvalidExpressionError{Field: field, Index: SettingsField, Err: errBlank}
	}
	v, err := expr.Evaluate(text)
	if err != nil {
		return 0, &InvalidExpressionError{Field: field, Index: SettingsField, Err: err}
	}
	return v, nil
}
