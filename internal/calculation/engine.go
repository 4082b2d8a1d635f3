package calculation

import (
	"context"

	"github.com/mgrubisic/femap695/internal/domain"
	"github.com/shopspring/decimal"
)

// AssessmentEngine chains the individual calculators into a full archetype
// assessment. Every calculation is a pure function; the engine only holds
// the solver settings and a logger, so a single engine is safe for
// concurrent use.
type AssessmentEngine struct {
	Solver *CollapseMarginSolver
	Logger Logger
}

// NewAssessmentEngine creates an engine with default solver options and a
// no-op logger.
func NewAssessmentEngine() *AssessmentEngine {
	return &AssessmentEngine{
		Solver: NewDefaultCollapseMarginSolver(),
		Logger: NopLogger{},
	}
}

// SetLogger replaces the engine logger; nil restores the no-op logger.
func (ae *AssessmentEngine) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	ae.Logger = logger
}

// RunAssessment computes the full set of performance metrics for one
// archetype: MCE intensity, ground-motion scale factor, spectral shape
// factor, total uncertainty, and the acceptable collapse margin ratio. When
// the request carries a computed collapse margin ratio, the adjusted margin
// SSF*CMR is evaluated against the acceptable value.
func (ae *AssessmentEngine) RunAssessment(ctx context.Context, req *domain.AssessmentRequest) (*domain.AssessmentSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rs := req.RecordSet
	if rs == "" {
		rs = domain.FarField
	}

	ae.Logger.Debugf("assessing archetype %s (SDC %s, T=%.3f s, mu_T=%.2f)",
		req.ArchetypeID, req.Category, req.PeriodT, req.DuctilityMuT)

	smt, err := SMT(req.PeriodT, req.Category)
	if err != nil {
		return nil, err
	}

	sf1, err := SF1(req.PeriodT, req.Category, rs)
	if err != nil {
		return nil, err
	}

	ssf, err := SSF(req.PeriodT, req.DuctilityMuT, req.Category)
	if err != nil {
		return nil, err
	}

	betaTotal, err := BetaTotal(
		req.Ratings.DesignRequirements,
		req.Ratings.TestData,
		req.Ratings.ModelQuality,
		req.DuctilityMuT,
	)
	if err != nil {
		return nil, err
	}

	acmr, err := ae.Solver.ACMR(betaTotal, req.CollapseProbability)
	if err != nil {
		return nil, err
	}

	summary := &domain.AssessmentSummary{
		ArchetypeID:         req.ArchetypeID,
		Category:            req.Category,
		PeriodT:             decimal.NewFromFloat(req.PeriodT),
		DuctilityMuT:        decimal.NewFromFloat(req.DuctilityMuT),
		Ratings:             req.Ratings,
		CollapseProbability: decimal.NewFromFloat(req.CollapseProbability),
		SMT:                 decimal.NewFromFloat(smt),
		SF1:                 decimal.NewFromFloat(sf1),
		SSF:                 decimal.NewFromFloat(ssf),
		BetaTotal:           decimal.NewFromFloat(betaTotal),
		ACMR:                decimal.NewFromFloat(acmr),
	}

	if req.CMR > 0 {
		adjusted := ssf * req.CMR
		summary.CMR = decimal.NewFromFloat(req.CMR)
		summary.AdjustedCMR = decimal.NewFromFloat(adjusted)
		summary.Acceptable = adjusted >= acmr
		ae.Logger.Infof("archetype %s: adjusted CMR %.3f vs acceptable %.3f (acceptable=%t)",
			req.ArchetypeID, adjusted, acmr, summary.Acceptable)
	}

	return summary, nil
}
