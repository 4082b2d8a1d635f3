package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrubisic/femap695/internal/domain"
)

func TestInterpolateLinear(t *testing.T) {
	xs := []float64{1, 2, 4}
	ys := []float64{10, 20, 40}

	v, err := InterpolateLinear(xs, ys, 1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v, "Should return exact value at first node")

	v, err = InterpolateLinear(xs, ys, 4)
	require.NoError(t, err)
	assert.Equal(t, 40.0, v, "Should return exact value at last node")

	v, err = InterpolateLinear(xs, ys, 3)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, v, 1e-12, "Should interpolate between nodes")
}

func TestInterpolateLinear_OutOfRange(t *testing.T) {
	xs := []float64{1, 2}
	ys := []float64{10, 20}

	for _, x := range []float64{0.999, 2.001} {
		_, err := InterpolateLinear(xs, ys, x)
		require.Error(t, err, "Query %g should be rejected", x)

		var rangeErr *domain.OutOfRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, x, rangeErr.Value)
	}
}

func TestInterpolateLinear_BadTable(t *testing.T) {
	_, err := InterpolateLinear([]float64{1}, []float64{10}, 1)
	assert.Error(t, err, "Single-point table should be rejected")

	_, err = InterpolateLinear([]float64{1, 2}, []float64{10}, 1.5)
	assert.Error(t, err, "Mismatched lengths should be rejected")
}

func TestInterpolateBilinear(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{0, 1}
	z := [][]float64{
		{0, 10},
		{20, 30},
	}

	v, err := InterpolateBilinear(xs, ys, z, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "Should return corner value")

	v, err = InterpolateBilinear(xs, ys, z, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, v, "Should return opposite corner value")

	v, err = InterpolateBilinear(xs, ys, z, 0.5, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, v, 1e-12, "Center should be the mean of the corners")

	v, err = InterpolateBilinear(xs, ys, z, 0.5, 0)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, v, 1e-12, "Edge query should reduce to 1-D interpolation")
}

func TestInterpolateBilinear_OutOfRange(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{0, 1}
	z := [][]float64{{0, 1}, {2, 3}}

	_, err := InterpolateBilinear(xs, ys, z, -0.1, 0.5)
	var rangeErr *domain.OutOfRangeError
	require.ErrorAs(t, err, &rangeErr)

	_, err = InterpolateBilinear(xs, ys, z, 0.5, 1.1)
	require.ErrorAs(t, err, &rangeErr)
}
