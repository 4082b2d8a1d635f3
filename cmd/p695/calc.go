package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mgrubisic/femap695/internal/calculation"
	"github.com/mgrubisic/femap695/internal/domain"
)

// parseFloatArg converts one positional argument, aborting with a usable
// message on malformed input.
func parseFloatArg(name, raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("invalid %s %q: expected a number", name, raw)
	}
	return v
}

func parseCategoryArg(raw string) domain.SeismicDesignCategory {
	sdc, err := domain.ParseSeismicDesignCategory(raw)
	if err != nil {
		log.Fatal(err)
	}
	return sdc
}

var mappedValueCmd = &cobra.Command{
	Use:   "mapped-value [parameter] [category]",
	Short: "Look up a code-mapped seismic demand parameter",
	Long:  "Look up one of SS, S1, Fa, Fv, SMS, SM1, SDS, SD1, TS for a seismic design category",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		v, err := calculation.MappedValue(args[0], parseCategoryArg(args[1]))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%.6g\n", v)
	},
}

var paramsCmd = &cobra.Command{
	Use:   "params [category]",
	Short: "Print the full mapped parameter set for a design category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sdc := parseCategoryArg(args[0])
		ps, err := calculation.CodeParameters(sdc)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Mapped seismic demand parameters for SDC %s:\n", sdc)
		fmt.Printf("  SS  = %.6g\n", ps.SS)
		fmt.Printf("  S1  = %.6g\n", ps.S1)
		fmt.Printf("  Fa  = %.6g\n", ps.Fa)
		fmt.Printf("  Fv  = %.6g\n", ps.Fv)
		fmt.Printf("  SMS = %.6g\n", ps.SMS)
		fmt.Printf("  SM1 = %.6g\n", ps.SM1)
		fmt.Printf("  SDS = %.6g\n", ps.SDS)
		fmt.Printf("  SD1 = %.6g\n", ps.SD1)
		fmt.Printf("  TS  = %.6g\n", ps.TS())
	},
}

var smtCmd = &cobra.Command{
	Use:   "smt [period] [category]",
	Short: "Compute MCE spectral intensity at a period",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		v, err := calculation.SMT(parseFloatArg("period", args[0]), parseCategoryArg(args[1]))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%.6g\n", v)
	},
}

var sf1RecordSet string

var sf1Cmd = &cobra.Command{
	Use:   "sf1 [period] [category]",
	Short: "Compute the ground-motion scale factor at a period",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		rs, err := domain.ParseRecordSet(sf1RecordSet)
		if err != nil {
			log.Fatal(err)
		}
		v, err := calculation.SF1(parseFloatArg("period", args[0]), parseCategoryArg(args[1]), rs)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%.6g\n", v)
	},
}

var ssfCmd = &cobra.Command{
	Use:   "ssf [period] [ductility] [category]",
	Short: "Compute the spectral shape factor",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		v, err := calculation.SSF(
			parseFloatArg("period", args[0]),
			parseFloatArg("ductility", args[1]),
			parseCategoryArg(args[2]),
		)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%.6g\n", v)
	},
}

var betaCmd = &cobra.Command{
	Use:   "beta [rating-dr] [rating-td] [rating-mdl] [ductility]",
	Short: "Combine the uncertainty ratings into a total system uncertainty",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		dr, err := domain.ParseUncertaintyRating("design requirements", args[0])
		if err != nil {
			log.Fatal(err)
		}
		td, err := domain.ParseUncertaintyRating("test data", args[1])
		if err != nil {
			log.Fatal(err)
		}
		mdl, err := domain.ParseUncertaintyRating("model quality", args[2])
		if err != nil {
			log.Fatal(err)
		}

		v, err := calculation.BetaTotal(dr, td, mdl, parseFloatArg("ductility", args[3]))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%.3f\n", v)
	},
}

var (
	acmrGuess         float64
	acmrMaxIterations int
	acmrTolerance     float64
)

var acmrCmd = &cobra.Command{
	Use:   "acmr [beta-total] [collapse-probability]",
	Short: "Solve for the acceptable collapse margin ratio",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		solver := calculation.NewCollapseMarginSolver(calculation.SolverOptions{
			MaxIterations: acmrMaxIterations,
			Tolerance:     acmrTolerance,
			InitialGuess:  acmrGuess,
		})

		v, err := solver.ACMR(
			parseFloatArg("beta-total", args[0]),
			parseFloatArg("collapse-probability", args[1]),
		)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%.6g\n", v)
	},
}

func init() {
	sf1Cmd.Flags().StringVar(&sf1RecordSet, "record-set", "farfield", "Ground-motion record set (farfield)")

	acmrCmd.Flags().Float64Var(&acmrGuess, "guess", 0, "Newton initial guess (default 0.622)")
	acmrCmd.Flags().IntVar(&acmrMaxIterations, "max-iterations", 0, "Newton iteration cap (default 100)")
	acmrCmd.Flags().Float64Var(&acmrTolerance, "tolerance", 0, "Newton convergence tolerance (default 1e-9)")

	rootCmd.AddCommand(mappedValueCmd)
	rootCmd.AddCommand(paramsCmd)
	rootCmd.AddCommand(smtCmd)
	rootCmd.AddCommand(sf1Cmd)
	rootCmd.AddCommand(ssfCmd)
	rootCmd.AddCommand(betaCmd)
	rootCmd.AddCommand(acmrCmd)
}
