package calculation

import (
	"strings"

	"github.com/mgrubisic/femap695/internal/domain"
)

// Code-mapped seismic demand parameters per design category. Cmax shares the
// Dmin set and Bmax shares the Cmin set, so four sets cover all six
// categories. Values are fixed by the methodology and never configurable.
var (
	codeParamsDmax = domain.CodeParameterSet{
		SS: 1.5, S1: 0.60, Fa: 1.0, Fv: 1.50, SMS: 1.5, SM1: 0.90, SDS: 1.0, SD1: 0.60,
	}
	codeParamsDminCmax = domain.CodeParameterSet{
		SS: 0.55, S1: 0.132, Fa: 1.36, Fv: 2.28, SMS: 0.75, SM1: 0.30, SDS: 0.50, SD1: 0.20,
	}
	codeParamsCminBmax = domain.CodeParameterSet{
		SS: 0.33, S1: 0.083, Fa: 1.53, Fv: 2.40, SMS: 0.50, SM1: 0.20, SDS: 0.33, SD1: 0.133,
	}
	codeParamsBmin = domain.CodeParameterSet{
		SS: 0.156, S1: 0.042, Fa: 1.60, Fv: 2.40, SMS: 0.25, SM1: 0.10, SDS: 0.167, SD1: 0.067,
	}
)

// CodeParameters resolves a design category to its full mapped parameter
// set.
func CodeParameters(sdc domain.SeismicDesignCategory) (domain.CodeParameterSet, error) {
	switch sdc {
	case domain.SDCDmax:
		return codeParamsDmax, nil
	case domain.SDCDmin, domain.SDCCmax:
		return codeParamsDminCmax, nil
	case domain.SDCCmin, domain.SDCBmax:
		return codeParamsCminBmax, nil
	case domain.SDCBmin:
		return codeParamsBmin, nil
	default:
		return domain.CodeParameterSet{}, &domain.InvalidArgumentError{
			Argument: "seismic design category",
			Value:    string(sdc),
			Valid:    "one of Dmax, Dmin, Cmax, Cmin, Bmax, Bmin",
		}
	}
}

// MappedValue returns one named demand parameter for a design category. The
// parameter name is case-insensitive. TS is derived as SD1/SDS rather than
// stored.
func MappedValue(param string, sdc domain.SeismicDesignCategory) (float64, error) {
	ps, err := CodeParameters(sdc)
	if err != nil {
		return 0, err
	}

	switch strings.ToLower(strings.TrimSpace(param)) {
	case "ss":
		return ps.SS, nil
	case "s1":
		return ps.S1, nil
	case "fa":
		return ps.Fa, nil
	case "fv":
		return ps.Fv, nil
	case "sms":
		return ps.SMS, nil
	case "sm1":
		return ps.SM1, nil
	case "sds":
		return ps.SDS, nil
	case "sd1":
		return ps.SD1, nil
	case "ts":
		return ps.TS(), nil
	default:
		return 0, &domain.InvalidArgumentError{
			Argument: "code parameter name",
			Value:    param,
			Valid:    "one of SS, S1, Fa, Fv, SMS, SM1, SDS, SD1, TS",
		}
	}
}
