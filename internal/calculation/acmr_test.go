package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrubisic/femap695/internal/domain"
)

func TestNewCollapseMarginSolver_FillsDefaults(t *testing.T) {
	solver := NewCollapseMarginSolver(SolverOptions{MaxIterations: 5})

	defaults := DefaultSolverOptions()
	assert.Equal(t, 5, solver.Options.MaxIterations)
	assert.Equal(t, defaults.Tolerance, solver.Options.Tolerance)
	assert.Equal(t, defaults.InitialGuess, solver.Options.InitialGuess)
}

func TestACMR_MedianProbability(t *testing.T) {
	// At a 50% target the CDF root is exactly 1 regardless of dispersion.
	for _, beta := range []float64{0.3, 0.525, 0.9} {
		v, err := ACMR(beta, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, v, 1e-6, "Median margin should be 1 for beta %g", beta)
	}
}

func TestACMR_ReferenceValues(t *testing.T) {
	// The closed-form root is exp(-beta * probit(p)); for beta = 0.500
	// the methodology tabulates ACMR10 = 1.90 and ACMR20 = 1.52.
	acmr10, err := ACMR(0.500, 0.10)
	require.NoError(t, err)
	assert.InDelta(t, 1.90, acmr10, 0.005)

	acmr20, err := ACMR(0.500, 0.20)
	require.NoError(t, err)
	assert.InDelta(t, 1.52, acmr20, 0.005)
}

func TestACMR_MonotonicDecreasingInProbability(t *testing.T) {
	probs := []float64{0.05, 0.10, 0.20, 0.35, 0.50, 0.80}

	prev := 0.0
	for i, p := range probs {
		v, err := ACMR(0.6, p)
		require.NoError(t, err)
		if i > 0 {
			assert.Less(t, v, prev, "Higher target probability should need a lower margin")
		}
		prev = v
	}
}

func TestACMR_InvalidArguments(t *testing.T) {
	var invalidErr *domain.InvalidArgumentError

	_, err := ACMR(0, 0.1)
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidErr)

	_, err = ACMR(-0.2, 0.1)
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidErr)

	for _, p := range []float64{0, 1, -0.5, 1.5} {
		_, err = ACMR(0.5, p)
		require.Error(t, err, "Probability %g should be rejected", p)
		assert.ErrorAs(t, err, &invalidErr)
	}
}

func TestACMR_NegativeInitialGuess(t *testing.T) {
	solver := CollapseMarginSolver{Options: SolverOptions{
		MaxIterations: 100,
		Tolerance:     1e-9,
		InitialGuess:  -1,
	}}

	_, err := solver.ACMR(0.5, 0.1)
	require.Error(t, err)

	var invalidErr *domain.InvalidArgumentError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestACMR_ForcedNonConvergence(t *testing.T) {
	solver := CollapseMarginSolver{Options: SolverOptions{
		MaxIterations: 1,
		Tolerance:     1e-15,
		InitialGuess:  0.1,
	}}

	_, err := solver.ACMR(0.5, 0.9)
	require.Error(t, err)

	var compErr *domain.ComputationError
	require.ErrorAs(t, err, &compErr)
	assert.Contains(t, compErr.Error(), "iteration")
}

func TestACMR_RetryWithDifferentGuessSucceeds(t *testing.T) {
	tight := CollapseMarginSolver{Options: SolverOptions{
		MaxIterations: 2,
		Tolerance:     1e-12,
		InitialGuess:  0.01,
	}}
	if _, err := tight.ACMR(0.3, 0.1); err == nil {
		t.Skip("tight solve unexpectedly converged")
	}

	retry := NewCollapseMarginSolver(SolverOptions{InitialGuess: 0.7})
	v, err := retry.ACMR(0.3, 0.1)
	require.NoError(t, err)
	assert.Greater(t, v, 1.0)
}
