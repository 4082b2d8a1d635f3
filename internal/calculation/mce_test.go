package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrubisic/femap695/internal/domain"
)

func TestSMT_Plateau(t *testing.T) {
	// Dmax transition period is SM1/SMS = 0.90/1.5 = 0.6 s.
	v, err := SMT(0.3, domain.SDCDmax)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v, "Short-period intensity should sit on the SMS plateau")
}

func TestSMT_DescendingBranch(t *testing.T) {
	v, err := SMT(2.0, domain.SDCDmax)
	require.NoError(t, err)
	assert.InDelta(t, 0.45, v, 1e-12, "Long-period intensity should be SM1/T")
}

func TestSMT_ContinuousAtTransition(t *testing.T) {
	for _, sdc := range domain.AllSeismicDesignCategories() {
		ps, err := CodeParameters(sdc)
		require.NoError(t, err)

		ts := ps.SM1 / ps.SMS
		atTransition, err := SMT(ts, sdc)
		require.NoError(t, err)

		assert.InDelta(t, ps.SMS, atTransition, 1e-12,
			"Plateau value should hold at the transition period for %s", sdc)
		assert.InDelta(t, ps.SM1/ts, atTransition, 1e-12,
			"Descending-branch formula should agree at the transition for %s", sdc)
	}
}

func TestSMT_InvalidPeriod(t *testing.T) {
	for _, T := range []float64{0, -1} {
		_, err := SMT(T, domain.SDCDmax)
		require.Error(t, err)

		var invalidErr *domain.InvalidArgumentError
		assert.ErrorAs(t, err, &invalidErr)
	}
}

func TestSMT_InvalidCategory(t *testing.T) {
	_, err := SMT(1.0, domain.SeismicDesignCategory("nope"))
	assert.Error(t, err)
}
