package calculation

import (
	"sort"

	"github.com/mgrubisic/femap695/internal/domain"
)

// InterpolateLinear performs 1-D piecewise-linear interpolation of ys over
// the strictly increasing coordinates xs. Queries outside [xs[0], xs[n-1]]
// fail with OutOfRangeError; there is no extrapolation. Callers that want a
// different edge policy (clamping, plateau rows) apply it before calling.
func InterpolateLinear(xs, ys []float64, x float64) (float64, error) {
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0, &domain.InvalidArgumentError{
			Argument: "interpolation table",
			Value:    len(xs),
			Valid:    "at least two coordinates with matching values",
		}
	}
	if x < xs[0] || x > xs[len(xs)-1] {
		return 0, &domain.OutOfRangeError{
			Name:  "interpolation query",
			Value: x,
			Min:   xs[0],
			Max:   xs[len(xs)-1],
		}
	}

	i := sort.SearchFloat64s(xs, x)
	if i < len(xs) && xs[i] == x {
		return ys[i], nil
	}
	// x lies strictly between xs[i-1] and xs[i].
	t := (x - xs[i-1]) / (xs[i] - xs[i-1])
	return ys[i-1] + t*(ys[i]-ys[i-1]), nil
}

// InterpolateBilinear performs bilinear interpolation of the grid z over the
// strictly increasing row coordinates xs and column coordinates ys, where
// z[i][j] is the value at (xs[i], ys[j]). Both query coordinates must lie
// inside their spans; callers clamp beforehand when a boundary policy
// applies.
func InterpolateBilinear(xs, ys []float64, z [][]float64, x, y float64) (float64, error) {
	if len(xs) < 2 || len(ys) < 2 || len(z) != len(xs) {
		return 0, &domain.InvalidArgumentError{
			Argument: "interpolation grid",
			Value:    len(z),
			Valid:    "a len(xs) x len(ys) grid with at least two coordinates per axis",
		}
	}
	if x < xs[0] || x > xs[len(xs)-1] {
		return 0, &domain.OutOfRangeError{
			Name:  "interpolation row query",
			Value: x,
			Min:   xs[0],
			Max:   xs[len(xs)-1],
		}
	}
	if y < ys[0] || y > ys[len(ys)-1] {
		return 0, &domain.OutOfRangeError{
			Name:  "interpolation column query",
			Value: y,
			Min:   ys[0],
			Max:   ys[len(ys)-1],
		}
	}

	i := bracket(xs, x)
	j := bracket(ys, y)

	tx := (x - xs[i]) / (xs[i+1] - xs[i])
	ty := (y - ys[j]) / (ys[j+1] - ys[j])

	z00 := z[i][j]
	z01 := z[i][j+1]
	z10 := z[i+1][j]
	z11 := z[i+1][j+1]

	lower := z00 + ty*(z01-z00)
	upper := z10 + ty*(z11-z10)
	return lower + tx*(upper-lower), nil
}

// bracket returns the index i such that xs[i] <= x <= xs[i+1], assuming x is
// already known to be inside the span.
func bracket(xs []float64, x float64) int {
	i := sort.SearchFloat64s(xs, x)
	if i >= len(xs)-1 {
		return len(xs) - 2
	}
	if xs[i] == x {
		return i
	}
	return i - 1
}
