package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrubisic/femap695/internal/domain"
)

func TestSF1_AtTabulatedPeriod(t *testing.T) {
	// At T = 1.0 s the far-field median is tabulated directly, so
	// SF1 = SMT(1.0, Dmax) / median = 0.90 / 0.391.
	v, err := SF1(1.0, domain.SDCDmax, domain.FarField)
	require.NoError(t, err)
	assert.InDelta(t, 0.90/0.391, v, 1e-12)
}

func TestSF1_BetweenTabulatedPeriods(t *testing.T) {
	v, err := SF1(1.1, domain.SDCDmax, domain.FarField)
	require.NoError(t, err)

	// The interpolated reference at 1.1 s lies between the 1.0 s and
	// 1.2 s medians, so the scale factor is bracketed by the nodal ones.
	lo, err := SF1(1.0, domain.SDCDmax, domain.FarField)
	require.NoError(t, err)
	hi, err := SF1(1.2, domain.SDCDmax, domain.FarField)
	require.NoError(t, err)

	assert.Greater(t, v, lo)
	assert.Less(t, v, hi)
}

func TestSF1_RejectsTableEndpoints(t *testing.T) {
	for _, T := range []float64{0.25, 5.0, 0.10, 6.0} {
		_, err := SF1(T, domain.SDCDmax, domain.FarField)
		require.Error(t, err, "Period %g should be rejected", T)

		var rangeErr *domain.OutOfRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.True(t, rangeErr.Exclusive, "Span should be an open interval")
	}
}

func TestSF1_NearFieldNotImplemented(t *testing.T) {
	_, err := SF1(1.0, domain.SDCDmax, domain.NearField)
	require.Error(t, err)

	var niErr *domain.NotImplementedError
	assert.ErrorAs(t, err, &niErr)
}

func TestSF1_UnknownRecordSet(t *testing.T) {
	_, err := SF1(1.0, domain.SDCDmax, domain.RecordSet("pulse"))
	require.Error(t, err)

	var invalidErr *domain.InvalidArgumentError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestSF1_AllCategories(t *testing.T) {
	for _, sdc := range domain.AllSeismicDesignCategories() {
		v, err := SF1(0.8, sdc, domain.FarField)
		require.NoError(t, err)
		assert.Greater(t, v, 0.0, "Scale factor should be positive for %s", sdc)
	}
}
