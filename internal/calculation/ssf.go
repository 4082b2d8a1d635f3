package calculation

import "github.com/mgrubisic/femap695/internal/domain"

// Spectral shape factor coefficient grids, tabulated over period (rows,
// 0.5 s to 1.5 s) and period-based ductility (columns, 1.0 to 8). One grid
// applies to SDC Dmax archetypes, the other to every lower category.
var (
	ssfPeriods     = []float64{0.5, 0.6, 0.7, 0.8, 0.9, 1.0, 1.1, 1.2, 1.3, 1.4, 1.5}
	ssfDuctilities = []float64{1.0, 1.1, 1.5, 2, 3, 4, 6, 8}

	ssfGridDmax = [][]float64{
		{1.00, 1.05, 1.10, 1.13, 1.18, 1.22, 1.28, 1.33},
		{1.00, 1.05, 1.11, 1.14, 1.20, 1.24, 1.30, 1.36},
		{1.00, 1.06, 1.11, 1.15, 1.21, 1.25, 1.32, 1.38},
		{1.00, 1.06, 1.12, 1.16, 1.22, 1.27, 1.35, 1.41},
		{1.00, 1.06, 1.13, 1.17, 1.24, 1.29, 1.37, 1.44},
		{1.00, 1.07, 1.13, 1.18, 1.25, 1.31, 1.39, 1.46},
		{1.00, 1.07, 1.14, 1.19, 1.27, 1.32, 1.41, 1.49},
		{1.00, 1.07, 1.15, 1.20, 1.28, 1.34, 1.44, 1.52},
		{1.00, 1.08, 1.16, 1.21, 1.29, 1.36, 1.46, 1.55},
		{1.00, 1.08, 1.16, 1.22, 1.31, 1.38, 1.49, 1.58},
		{1.00, 1.08, 1.17, 1.23, 1.32, 1.40, 1.51, 1.61},
	}

	ssfGridOther = [][]float64{
		{1.00, 1.02, 1.04, 1.06, 1.08, 1.09, 1.12, 1.14},
		{1.00, 1.02, 1.05, 1.07, 1.09, 1.11, 1.13, 1.16},
		{1.00, 1.03, 1.06, 1.08, 1.10, 1.12, 1.15, 1.18},
		{1.00, 1.03, 1.06, 1.08, 1.11, 1.14, 1.17, 1.20},
		{1.00, 1.03, 1.07, 1.09, 1.13, 1.15, 1.19, 1.22},
		{1.00, 1.04, 1.08, 1.10, 1.14, 1.17, 1.21, 1.25},
		{1.00, 1.04, 1.08, 1.11, 1.15, 1.18, 1.23, 1.27},
		{1.00, 1.04, 1.09, 1.12, 1.17, 1.20, 1.25, 1.30},
		{1.00, 1.05, 1.10, 1.13, 1.18, 1.22, 1.27, 1.32},
		{1.00, 1.05, 1.10, 1.14, 1.19, 1.23, 1.30, 1.35},
		{1.00, 1.05, 1.11, 1.15, 1.21, 1.25, 1.32, 1.37},
	}
)

// SSF computes the spectral shape factor for an archetype with period T and
// period-based ductility muT. Ductility is never extrapolated beyond 8: at
// or above it the last grid column applies directly, while periods outside
// the 0.5-1.5 s band clamp to the boundary row. Inside the band a full
// bilinear interpolation over (T, muT) is used.
func SSF(T, muT float64, sdc domain.SeismicDesignCategory) (float64, error) {
	if muT < 1 {
		return 0, &domain.InvalidArgumentError{
			Argument: "period-based ductility mu_T",
			Value:    muT,
			Valid:    "a value >= 1",
		}
	}

	var grid [][]float64
	switch sdc {
	case domain.SDCDmax:
		grid = ssfGridDmax
	case domain.SDCDmin, domain.SDCCmax, domain.SDCCmin, domain.SDCBmax, domain.SDCBmin:
		grid = ssfGridOther
	default:
		return 0, &domain.InvalidArgumentError{
			Argument: "seismic design category",
			Value:    string(sdc),
			Valid:    "one of Dmax, Dmin, Cmax, Cmin, Bmax, Bmin",
		}
	}

	lastCol := len(ssfDuctilities) - 1
	maxMu := ssfDuctilities[lastCol]

	// Short- and long-period plateaus use the boundary row alone.
	if T <= ssfPeriods[0] || T >= ssfPeriods[len(ssfPeriods)-1] {
		row := grid[0]
		if T >= ssfPeriods[len(ssfPeriods)-1] {
			row = grid[len(grid)-1]
		}
		if muT >= maxMu {
			return row[lastCol], nil
		}
		return InterpolateLinear(ssfDuctilities, row, muT)
	}

	if muT >= maxMu {
		col := make([]float64, len(grid))
		for i := range grid {
			col[i] = grid[i][lastCol]
		}
		return InterpolateLinear(ssfPeriods, col, T)
	}

	return InterpolateBilinear(ssfPeriods, ssfDuctilities, grid, T, muT)
}
