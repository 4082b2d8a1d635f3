package calculation

import (
	"math"

	"github.com/mgrubisic/femap695/internal/domain"
)

// SolverOptions configures the Newton iteration behind the acceptable
// collapse margin ratio. Exposing the cap and tolerance lets callers retry
// a failed solve with different settings, and lets tests force
// non-convergence deterministically.
type SolverOptions struct {
	MaxIterations int
	Tolerance     float64
	InitialGuess  float64
}

// DefaultSolverOptions returns the solver settings used when the caller has
// no opinion.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIterations: 100,
		Tolerance:     1e-9,
		InitialGuess:  0.622,
	}
}

// CollapseMarginSolver solves for the acceptable collapse margin ratio at a
// target collapse probability under a log-normal collapse fragility.
type CollapseMarginSolver struct {
	Options SolverOptions
}

// NewCollapseMarginSolver creates a solver with the given options, filling
// unset fields from the defaults.
func NewCollapseMarginSolver(options SolverOptions) *CollapseMarginSolver {
	defaults := DefaultSolverOptions()
	if options.MaxIterations == 0 {
		options.MaxIterations = defaults.MaxIterations
	}
	if options.Tolerance == 0 {
		options.Tolerance = defaults.Tolerance
	}
	if options.InitialGuess == 0 {
		options.InitialGuess = defaults.InitialGuess
	}
	return &CollapseMarginSolver{Options: options}
}

// NewDefaultCollapseMarginSolver creates a solver with default options.
func NewDefaultCollapseMarginSolver() *CollapseMarginSolver {
	return &CollapseMarginSolver{Options: DefaultSolverOptions()}
}

// ACMR returns the minimum acceptable ratio of median collapse intensity to
// MCE intensity for the given total uncertainty and target collapse
// probability. The collapse intensity ratio is modelled as log-normal with
// location 0 and scale betaTotal; Newton's method solves
// CDF(x) = collapseProbability for x and the margin is 1/x.
func (s *CollapseMarginSolver) ACMR(betaTotal, collapseProbability float64) (float64, error) {
	if betaTotal <= 0 {
		return 0, &domain.InvalidArgumentError{
			Argument: "total uncertainty beta_total",
			Value:    betaTotal,
			Valid:    "a positive dispersion",
		}
	}
	if collapseProbability <= 0 || collapseProbability >= 1 {
		return 0, &domain.InvalidArgumentError{
			Argument: "collapse probability",
			Value:    collapseProbability,
			Valid:    "a probability strictly between 0 and 1",
		}
	}
	if s.Options.InitialGuess <= 0 {
		return 0, &domain.InvalidArgumentError{
			Argument: "initial guess",
			Value:    s.Options.InitialGuess,
			Valid:    "a positive intensity ratio",
		}
	}

	x := s.Options.InitialGuess
	for i := 0; i < s.Options.MaxIterations; i++ {
		fx := logNormalCDF(x, betaTotal) - collapseProbability
		if math.Abs(fx) <= s.Options.Tolerance {
			return 1 / x, nil
		}

		dfx := logNormalPDF(x, betaTotal)
		if dfx == 0 || math.IsNaN(dfx) || math.IsInf(dfx, 0) {
			return 0, &domain.ComputationError{
				Operation:  "ACMR Newton iteration",
				Message:    "derivative underflow; retry with a different initial guess",
				Iterations: i,
			}
		}

		x -= fx / dfx
		if x <= 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, &domain.ComputationError{
				Operation:  "ACMR Newton iteration",
				Message:    "iterate left the positive domain; retry with a different initial guess",
				Iterations: i + 1,
			}
		}
	}

	return 0, &domain.ComputationError{
		Operation:  "ACMR Newton iteration",
		Message:    "did not converge within the iteration cap",
		Iterations: s.Options.MaxIterations,
	}
}

// ACMR is the package-level convenience using default solver options.
func ACMR(betaTotal, collapseProbability float64) (float64, error) {
	return NewDefaultCollapseMarginSolver().ACMR(betaTotal, collapseProbability)
}

// logNormalCDF evaluates the log-normal CDF with location 0 and scale beta.
func logNormalCDF(x, beta float64) float64 {
	return 0.5 * (1 + math.Erf(math.Log(x)/(beta*math.Sqrt2)))
}

// logNormalPDF evaluates the matching density, the Newton derivative.
func logNormalPDF(x, beta float64) float64 {
	lnx := math.Log(x)
	return math.Exp(-lnx*lnx/(2*beta*beta)) / (x * beta * math.Sqrt(2*math.Pi))
}
