package domain

import "github.com/shopspring/decimal"

// UncertaintyRatings groups the three qualitative rating axes that feed the
// total system uncertainty.
type UncertaintyRatings struct {
	DesignRequirements UncertaintyRating `json:"designRequirements" yaml:"design_requirements"`
	TestData           UncertaintyRating `json:"testData" yaml:"test_data"`
	ModelQuality       UncertaintyRating `json:"modelQuality" yaml:"model_quality"`
}

// AssessmentRequest carries everything needed to assess one archetype: the
// design category, the fundamental period, the period-based ductility from
// pushover analysis, the three quality ratings, and the target collapse
// probability. CMR, when positive, is the computed collapse margin ratio
// from incremental dynamic analysis; the engine then also evaluates the
// adjusted margin against the acceptable value.
type AssessmentRequest struct {
	ArchetypeID         string
	Category            SeismicDesignCategory
	PeriodT             float64
	DuctilityMuT        float64
	Ratings             UncertaintyRatings
	CollapseProbability float64
	CMR                 float64
	RecordSet           RecordSet
}

// AssessmentSummary is the reporting-facing result of one archetype
// assessment. Metric fields are decimals so formatters can round and print
// without float artifacts; the raw engine math stays in float64.
type AssessmentSummary struct {
	ArchetypeID         string                `json:"archetypeId"`
	Category            SeismicDesignCategory `json:"seismicDesignCategory"`
	PeriodT             decimal.Decimal       `json:"periodT"`
	DuctilityMuT        decimal.Decimal       `json:"ductilityMuT"`
	Ratings             UncertaintyRatings    `json:"ratings"`
	CollapseProbability decimal.Decimal       `json:"collapseProbability"`

	SMT       decimal.Decimal `json:"smt"`       // MCE intensity at PeriodT
	SF1       decimal.Decimal `json:"sf1"`       // ground-motion scale factor
	SSF       decimal.Decimal `json:"ssf"`       // spectral shape factor
	BetaTotal decimal.Decimal `json:"betaTotal"` // total system uncertainty
	ACMR      decimal.Decimal `json:"acmr"`      // acceptable collapse margin ratio

	// Populated only when the request carried a computed CMR.
	CMR         decimal.Decimal `json:"cmr,omitempty"`
	AdjustedCMR decimal.Decimal `json:"adjustedCmr,omitempty"`
	Acceptable  bool            `json:"acceptable"`
}
