package calculation

import "github.com/mgrubisic/femap695/internal/domain"

// SMT computes the Maximum Considered Earthquake spectral intensity at
// period T for a design category. The spectrum is a constant SMS plateau up
// to the transition period SM1/SMS and the hyperbolic branch SM1/T above it;
// the two branches agree at the transition, so the spectrum is continuous.
func SMT(T float64, sdc domain.SeismicDesignCategory) (float64, error) {
	if T <= 0 {
		return 0, &domain.InvalidArgumentError{
			Argument: "period T",
			Value:    T,
			Valid:    "a positive period in seconds",
		}
	}

	ps, err := CodeParameters(sdc)
	if err != nil {
		return 0, err
	}

	if T <= ps.SM1/ps.SMS {
		return ps.SMS, nil
	}
	return ps.SM1 / T, nil
}
