// Package convert holds the pure value transforms: linear unit conversion,
// absolute/relative coordinate mode conversion, and the numeric formatting
// shared by conversion write-back and G-code emission.
package convert

import (
	"strconv"
	"strings"

	"spotdrill/internal/domain"
)

const mmPerInch = 25.4

// Length converts a single linear value between unit systems. Same-unit
// conversion is the identity; no arithmetic is applied at all.
func Length(v float64, from, to domain.Unit) float64 {
	switch {
	case from == to:
		return v
	case from == domain.Inch:
		return v * mmPerInch
	default:
		return v / mmPerInch
	}
}

// Lengths converts a batch of linear values. Point coordinates, depth and
// plunge rate all convert with the same factor; a plunge rate is
// length/minute, so the time component is unaffected.
func Lengths(values []float64, from, to domain.Unit) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = Length(v, from, to)
	}
	return out
}

// ToAbsolute resolves a predecessor-relative point list to absolute
// coordinates in a single forward pass. Point 0 is already absolute; lists
// of length 0 or 1 come back unchanged.
func ToAbsolute(points []domain.XY) []domain.XY {
	out := make([]domain.XY, len(points))
	copy(out, points)
	for i := 1; i < len(out); i++ {
		out[i].X += out[i-1].X
		out[i].Y += out[i-1].Y
	}
	return out
}

// ToRelative is ToAbsolute's inverse: each point i >= 1 becomes the
// displacement from point i-1's absolute position.
func ToRelative(points []domain.XY) []domain.XY {
	out := make([]domain.XY, len(points))
	copy(out, points)
	for i := len(out) - 1; i >= 1; i-- {
		out[i].X -= out[i-1].X
		out[i].Y -= out[i-1].Y
	}
	return out
}

// FormatNumber renders a value the way it appears in coordinate fields and
// G-code words: at most four decimals, trailing zeros trimmed.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" || s == "-0" {
		return "0"
	}
	return s
}
