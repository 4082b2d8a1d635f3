package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/mgrubisic/femap695/internal/calculation"
	"github.com/mgrubisic/femap695/internal/config"
	"github.com/mgrubisic/femap695/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "p695",
	Short: "FEMA P695 collapse performance assessment CLI",
	Long:  "Seismic performance-assessment metrics for structural archetypes following the FEMA P695 methodology",
}

var (
	assessFormat  string
	assessVerbose bool
)

var assessCmd = &cobra.Command{
	Use:   "assess [input-file]",
	Short: "Run a full archetype assessment from a YAML input file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		req, err := cfg.ToRequest()
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewAssessmentEngine()
		engine.Solver = calculation.NewCollapseMarginSolver(calculation.SolverOptions{
			MaxIterations: cfg.Assessment.Solver.MaxIterations,
			Tolerance:     cfg.Assessment.Solver.Tolerance,
			InitialGuess:  cfg.Assessment.Solver.InitialGuess,
		})
		if assessVerbose {
			engine.SetLogger(simpleCLILogger{})
		}

		summary, err := engine.RunAssessment(context.Background(), req)
		if err != nil {
			log.Fatal(err)
		}

		report, err := output.NewReportGenerator().Generate(summary, assessFormat)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Fprint(os.Stdout, string(report))
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "p695 %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func init() {
	assessCmd.Flags().StringVar(&assessFormat, "format", "console", "Report format (console, json, csv)")
	assessCmd.Flags().BoolVar(&assessVerbose, "verbose", false, "Log intermediate calculation steps")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
