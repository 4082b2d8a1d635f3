package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mgrubisic/femap695/internal/domain"
)

// AssessmentConfig is the on-disk description of one archetype assessment.
type AssessmentConfig struct {
	Archetype  ArchetypeConfig    `yaml:"archetype"`
	Ratings    RatingsConfig      `yaml:"ratings"`
	Assessment AssessmentSettings `yaml:"assessment"`
}

// ArchetypeConfig identifies the structural archetype and the analysis
// results it brings along. Period and ductility come from upstream pushover
// analysis; CMR, when present, from incremental dynamic analysis.
type ArchetypeConfig struct {
	ID          string  `yaml:"id"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"seismic_design_category"`
	Period      float64 `yaml:"period"`
	Ductility   float64 `yaml:"ductility"`
	CMR         float64 `yaml:"cmr"`
}

// RatingsConfig carries the three qualitative quality ratings as raw
// tokens; enum parsing happens during validation.
type RatingsConfig struct {
	DesignRequirements string `yaml:"design_requirements"`
	TestData           string `yaml:"test_data"`
	ModelQuality       string `yaml:"model_quality"`
}

// AssessmentSettings holds the optional knobs of the assessment itself.
// Zero values mean "use the default": 10% collapse probability, the
// far-field record set, and the standard solver settings.
type AssessmentSettings struct {
	CollapseProbability float64        `yaml:"collapse_probability"`
	RecordSet           string         `yaml:"record_set"`
	Solver              SolverSettings `yaml:"solver"`
}

// SolverSettings mirrors the collapse-margin solver options so tests and
// unusual archetypes can override them from the input file.
type SolverSettings struct {
	MaxIterations int     `yaml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance"`
	InitialGuess  float64 `yaml:"initial_guess"`
}

// DefaultCollapseProbability is the individual-archetype acceptance target.
const DefaultCollapseProbability = 0.10

// InputParser handles parsing of assessment input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates an assessment configuration from a YAML
// file.
func (ip *InputParser) LoadFromFile(filename string) (*AssessmentConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates an assessment configuration from raw YAML.
func (ip *InputParser) Parse(data []byte) (*AssessmentConfig, error) {
	var cfg AssessmentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ValidateConfiguration validates the loaded configuration without applying
// defaults; required fields must be present and well-formed.
func (ip *InputParser) ValidateConfiguration(cfg *AssessmentConfig) error {
	if cfg.Archetype.ID == "" {
		return fmt.Errorf("archetype id is required")
	}
	if cfg.Archetype.Period <= 0 {
		return fmt.Errorf("archetype period must be positive, got %g", cfg.Archetype.Period)
	}
	if cfg.Archetype.Ductility < 1 {
		return fmt.Errorf("archetype ductility must be at least 1, got %g", cfg.Archetype.Ductility)
	}
	if cfg.Archetype.CMR < 0 {
		return fmt.Errorf("archetype cmr must not be negative, got %g", cfg.Archetype.CMR)
	}

	if _, err := domain.ParseSeismicDesignCategory(cfg.Archetype.Category); err != nil {
		return err
	}
	if _, err := domain.ParseUncertaintyRating("design requirements", cfg.Ratings.DesignRequirements); err != nil {
		return err
	}
	if _, err := domain.ParseUncertaintyRating("test data", cfg.Ratings.TestData); err != nil {
		return err
	}
	if _, err := domain.ParseUncertaintyRating("model quality", cfg.Ratings.ModelQuality); err != nil {
		return err
	}

	if p := cfg.Assessment.CollapseProbability; p != 0 && (p <= 0 || p >= 1) {
		return fmt.Errorf("collapse probability must be strictly between 0 and 1, got %g", p)
	}
	if cfg.Assessment.RecordSet != "" {
		if _, err := domain.ParseRecordSet(cfg.Assessment.RecordSet); err != nil {
			return err
		}
	}
	if s := cfg.Assessment.Solver; s.MaxIterations < 0 || s.Tolerance < 0 || s.InitialGuess < 0 {
		return fmt.Errorf("solver settings must not be negative")
	}

	return nil
}

// ToRequest converts a validated configuration into an assessment request,
// applying the documented defaults for the optional fields.
func (cfg *AssessmentConfig) ToRequest() (*domain.AssessmentRequest, error) {
	category, err := domain.ParseSeismicDesignCategory(cfg.Archetype.Category)
	if err != nil {
		return nil, err
	}
	dr, err := domain.ParseUncertaintyRating("design requirements", cfg.Ratings.DesignRequirements)
	if err != nil {
		return nil, err
	}
	td, err := domain.ParseUncertaintyRating("test data", cfg.Ratings.TestData)
	if err != nil {
		return nil, err
	}
	mdl, err := domain.ParseUncertaintyRating("model quality", cfg.Ratings.ModelQuality)
	if err != nil {
		return nil, err
	}

	rs := domain.FarField
	if cfg.Assessment.RecordSet != "" {
		rs, err = domain.ParseRecordSet(cfg.Assessment.RecordSet)
		if err != nil {
			return nil, err
		}
	}

	probability := cfg.Assessment.CollapseProbability
	if probability == 0 {
		probability = DefaultCollapseProbability
	}

	return &domain.AssessmentRequest{
		ArchetypeID:  cfg.Archetype.ID,
		Category:     category,
		PeriodT:      cfg.Archetype.Period,
		DuctilityMuT: cfg.Archetype.Ductility,
		Ratings: domain.UncertaintyRatings{
			DesignRequirements: dr,
			TestData:           td,
			ModelQuality:       mdl,
		},
		CollapseProbability: probability,
		CMR:                 cfg.Archetype.CMR,
		RecordSet:           rs,
	}, nil
}
