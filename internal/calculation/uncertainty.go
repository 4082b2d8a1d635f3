package calculation

import (
	"math"

	"github.com/mgrubisic/femap695/internal/domain"
)

// Log-normal dispersion assigned to each quality rating, shared by the
// design-requirements, test-data, and model-quality axes.
var ratingDispersion = map[domain.UncertaintyRating]float64{
	domain.RatingA: 0.10,
	domain.RatingB: 0.20,
	domain.RatingC: 0.35,
	domain.RatingD: 0.50,
}

// BetaRTRCap bounds the record-to-record dispersion regardless of ductility.
const BetaRTRCap = 0.40

// BetaRTR computes the record-to-record collapse uncertainty from the
// period-based ductility, capped at BetaRTRCap.
func BetaRTR(muT float64) float64 {
	return math.Min(0.1+0.1*muT, BetaRTRCap)
}

// BetaTotal combines record-to-record uncertainty with the three quality
// rating dispersions by root-sum-of-squares, then rounds the result to the
// nearest 0.025 with ties away from zero (round(x*40)/40).
func BetaTotal(dr, td, mdl domain.UncertaintyRating, muT float64) (float64, error) {
	if muT < 0 {
		return 0, &domain.InvalidArgumentError{
			Argument: "period-based ductility mu_T",
			Value:    muT,
			Valid:    "a non-negative value",
		}
	}

	betaDR, err := dispersionFor("design requirements", dr)
	if err != nil {
		return 0, err
	}
	betaTD, err := dispersionFor("test data", td)
	if err != nil {
		return 0, err
	}
	betaMDL, err := dispersionFor("model quality", mdl)
	if err != nil {
		return 0, err
	}

	betaRTR := BetaRTR(muT)
	total := math.Sqrt(betaRTR*betaRTR + betaDR*betaDR + betaTD*betaTD + betaMDL*betaMDL)
	return math.Round(total*40) / 40, nil
}

func dispersionFor(axis string, r domain.UncertaintyRating) (float64, error) {
	beta, ok := ratingDispersion[r]
	if !ok {
		return 0, &domain.InvalidArgumentError{
			Argument: axis + " rating",
			Value:    string(r),
			Valid:    "one of A, B, C, D",
		}
	}
	return beta, nil
}
