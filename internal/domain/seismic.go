package domain

import "strings"

// SeismicDesignCategory identifies the code-defined seismic design category
// of an archetype. Cmax and Dmin share mapped demand parameters, as do Bmax
// and Cmin, but the categories remain distinct values so reports can echo
// the caller's input.
type SeismicDesignCategory string

const (
	SDCDmax SeismicDesignCategory = "Dmax"
	SDCDmin SeismicDesignCategory = "Dmin"
	SDCCmax SeismicDesignCategory = "Cmax"
	SDCCmin SeismicDesignCategory = "Cmin"
	SDCBmax SeismicDesignCategory = "Bmax"
	SDCBmin SeismicDesignCategory = "Bmin"
)

// AllSeismicDesignCategories lists the accepted categories in descending
// seismic severity.
func AllSeismicDesignCategories() []SeismicDesignCategory {
	return []SeismicDesignCategory{SDCDmax, SDCDmin, SDCCmax, SDCCmin, SDCBmax, SDCBmin}
}

// ParseSeismicDesignCategory resolves a case-insensitive token to a design
// category. Unrecognized tokens fail with InvalidArgumentError; there is no
// default category.
func ParseSeismicDesignCategory(token string) (SeismicDesignCategory, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "dmax":
		return SDCDmax, nil
	case "dmin":
		return SDCDmin, nil
	case "cmax":
		return SDCCmax, nil
	case "cmin":
		return SDCCmin, nil
	case "bmax":
		return SDCBmax, nil
	case "bmin":
		return SDCBmin, nil
	default:
		return "", &InvalidArgumentError{
			Argument: "seismic design category",
			Value:    token,
			Valid:    "one of Dmax, Dmin, Cmax, Cmin, Bmax, Bmin",
		}
	}
}

func (sdc SeismicDesignCategory) String() string { return string(sdc) }

// UncertaintyRating is a qualitative quality rating (A best, D worst) on one
// of the three uncertainty axes: design requirements, test data, and model
// quality.
type UncertaintyRating string

const (
	RatingA UncertaintyRating = "A"
	RatingB UncertaintyRating = "B"
	RatingC UncertaintyRating = "C"
	RatingD UncertaintyRating = "D"
)

// ParseUncertaintyRating resolves a case-insensitive token to a rating. The
// axis name is carried into the error so a failure identifies which of the
// three ratings was malformed.
func ParseUncertaintyRating(axis, token string) (UncertaintyRating, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "a":
		return RatingA, nil
	case "b":
		return RatingB, nil
	case "c":
		return RatingC, nil
	case "d":
		return RatingD, nil
	default:
		return "", &InvalidArgumentError{
			Argument: axis + " rating",
			Value:    token,
			Valid:    "one of A, B, C, D",
		}
	}
}

func (r UncertaintyRating) String() string { return string(r) }

// RecordSet names a ground-motion record set used as the scaling reference
// spectrum.
type RecordSet string

const (
	FarField  RecordSet = "farfield"
	NearField RecordSet = "nearfield"
)

// ParseRecordSet resolves a case-insensitive token to a record set name.
// Both defined names parse successfully; whether a set is actually usable
// for scaling is decided by the calculator (the near-field set is
// recognized but has no reference spectrum yet).
func ParseRecordSet(token string) (RecordSet, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "farfield", "far-field", "far field":
		return FarField, nil
	case "nearfield", "near-field", "near field":
		return NearField, nil
	default:
		return "", &InvalidArgumentError{
			Argument: "record set",
			Value:    token,
			Valid:    "one of farfield, nearfield",
		}
	}
}

func (rs RecordSet) String() string { return string(rs) }

// CodeParameterSet holds the eight code-mapped seismic demand parameters for
// one design category. Values are fixed by the methodology; a set is never
// mutated after construction.
type CodeParameterSet struct {
	SS  float64 `json:"ss"`  // mapped short-period spectral acceleration
	S1  float64 `json:"s1"`  // mapped 1-second spectral acceleration
	Fa  float64 `json:"fa"`  // short-period site coefficient
	Fv  float64 `json:"fv"`  // long-period site coefficient
	SMS float64 `json:"sms"` // MCE short-period spectral acceleration
	SM1 float64 `json:"sm1"` // MCE 1-second spectral acceleration
	SDS float64 `json:"sds"` // design short-period spectral acceleration
	SD1 float64 `json:"sd1"` // design 1-second spectral acceleration
}

// TS returns the transition period SD1/SDS separating the constant-
// acceleration plateau from the descending branch of the design spectrum.
func (ps CodeParameterSet) TS() float64 {
	return ps.SD1 / ps.SDS
}
