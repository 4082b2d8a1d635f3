package calculation

import "github.com/mgrubisic/femap695/internal/domain"

// Median spectral acceleration of the normalized far-field record set,
// tabulated against period. SF1 queries are only defined strictly inside
// the tabulated span; the endpoints themselves are rejected.
var (
	farFieldPeriods = []float64{
		0.25, 0.30, 0.35, 0.40, 0.45, 0.50, 0.60, 0.70, 0.80, 0.90, 1.00,
		1.20, 1.40, 1.60, 1.80, 2.00, 2.50, 3.00, 3.50, 4.00, 4.50, 5.00,
	}
	farFieldMedianSa = []float64{
		0.785, 0.784, 0.776, 0.754, 0.727, 0.691, 0.614, 0.548, 0.488, 0.437, 0.391,
		0.318, 0.264, 0.223, 0.191, 0.166, 0.119, 0.091, 0.072, 0.059, 0.049, 0.042,
	}
)

// SF1 computes the ground-motion scale factor at period T for a design
// category: the MCE intensity divided by the median normalized spectral
// value of the record set at that period. Only the far-field set has a
// reference spectrum; the near-field set is recognized but unimplemented.
func SF1(T float64, sdc domain.SeismicDesignCategory, rs domain.RecordSet) (float64, error) {
	switch rs {
	case domain.FarField:
		// resolved below
	case domain.NearField:
		return 0, &domain.NotImplementedError{
			Feature: "record set",
			Value:   string(rs),
		}
	default:
		return 0, &domain.InvalidArgumentError{
			Argument: "record set",
			Value:    string(rs),
			Valid:    "one of farfield, nearfield",
		}
	}

	minT := farFieldPeriods[0]
	maxT := farFieldPeriods[len(farFieldPeriods)-1]
	if T <= minT || T >= maxT {
		return 0, &domain.OutOfRangeError{
			Name:      "period T",
			Value:     T,
			Min:       minT,
			Max:       maxT,
			Exclusive: true,
		}
	}

	ref, err := InterpolateLinear(farFieldPeriods, farFieldMedianSa, T)
	if err != nil {
		return 0, err
	}

	smt, err := SMT(T, sdc)
	if err != nil {
		return 0, err
	}

	return smt / ref, nil
}
