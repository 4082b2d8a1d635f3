package calculation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrubisic/femap695/internal/domain"
)

// testLogger records that log output happened without caring about content.
type testLogger struct {
	calls int
}

func (l *testLogger) Debugf(format string, args ...any) { l.calls++ }
func (l *testLogger) Infof(format string, args ...any)  { l.calls++ }
func (l *testLogger) Warnf(format string, args ...any)  { l.calls++ }
func (l *testLogger) Errorf(format string, args ...any) { l.calls++ }

func validRequest() *domain.AssessmentRequest {
	return &domain.AssessmentRequest{
		ArchetypeID:  "RSA-8",
		Category:     domain.SDCDmax,
		PeriodT:      1.0,
		DuctilityMuT: 3.0,
		Ratings: domain.UncertaintyRatings{
			DesignRequirements: domain.RatingB,
			TestData:           domain.RatingB,
			ModelQuality:       domain.RatingC,
		},
		CollapseProbability: 0.10,
	}
}

func TestNewAssessmentEngine(t *testing.T) {
	engine := NewAssessmentEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Solver, "Should initialize collapse margin solver")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
}

func TestAssessmentEngine_SetLogger(t *testing.T) {
	engine := NewAssessmentEngine()

	custom := &testLogger{}
	engine.SetLogger(custom)
	assert.Equal(t, custom, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestAssessmentEngine_RunAssessment(t *testing.T) {
	engine := NewAssessmentEngine()

	summary, err := engine.RunAssessment(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, "RSA-8", summary.ArchetypeID)
	assert.Equal(t, domain.SDCDmax, summary.Category)

	// Cross-check the summary against the underlying calculators.
	smt, err := SMT(1.0, domain.SDCDmax)
	require.NoError(t, err)
	assert.True(t, summary.SMT.Equal(decimal.NewFromFloat(smt)), "Summary SMT should match calculator")

	beta, err := BetaTotal(domain.RatingB, domain.RatingB, domain.RatingC, 3.0)
	require.NoError(t, err)
	assert.True(t, summary.BetaTotal.Equal(decimal.NewFromFloat(beta)))

	assert.True(t, summary.ACMR.GreaterThan(decimal.NewFromInt(1)), "ACMR at 10%% should exceed 1")
	assert.True(t, summary.CMR.IsZero(), "No CMR was supplied")
	assert.False(t, summary.Acceptable)
}

func TestAssessmentEngine_RunAssessment_DefaultsRecordSet(t *testing.T) {
	engine := NewAssessmentEngine()
	req := validRequest()
	req.RecordSet = ""

	summary, err := engine.RunAssessment(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, summary.SF1.GreaterThan(decimal.Zero), "Empty record set should default to far-field")
}

func TestAssessmentEngine_RunAssessment_EvaluatesMargin(t *testing.T) {
	engine := NewAssessmentEngine()

	req := validRequest()
	req.CMR = 3.0
	summary, err := engine.RunAssessment(context.Background(), req)
	require.NoError(t, err)

	expected := summary.SSF.Mul(decimal.NewFromFloat(3.0))
	assert.True(t, summary.AdjustedCMR.Equal(expected), "Adjusted margin should be SSF*CMR")
	assert.True(t, summary.Acceptable, "A margin of 3 comfortably passes ACMR10")

	req.CMR = 1.0
	summary, err = engine.RunAssessment(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, summary.Acceptable, "A margin of 1 fails ACMR10")
}

func TestAssessmentEngine_RunAssessment_PropagatesErrors(t *testing.T) {
	engine := NewAssessmentEngine()

	req := validRequest()
	req.Ratings.TestData = domain.UncertaintyRating("E")
	_, err := engine.RunAssessment(context.Background(), req)
	require.Error(t, err)

	var invalidErr *domain.InvalidArgumentError
	require.ErrorAs(t, err, &invalidErr)
	assert.Contains(t, invalidErr.Error(), "test data")

	req = validRequest()
	req.PeriodT = 5.0
	_, err = engine.RunAssessment(context.Background(), req)
	require.Error(t, err)

	var rangeErr *domain.OutOfRangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestAssessmentEngine_RunAssessment_CanceledContext(t *testing.T) {
	engine := NewAssessmentEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.RunAssessment(ctx, validRequest())
	assert.ErrorIs(t, err, context.Canceled)
}
