package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/mgrubisic/femap695/internal/domain"
)

// Console styling. The report stays readable when styles are stripped by a
// non-TTY writer, so styling is decoration only.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(28)
	valueStyle = lipgloss.NewStyle().Bold(true)
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// ReportGenerator renders assessment summaries in the supported output
// formats.
type ReportGenerator struct{}

// NewReportGenerator creates a new report generator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// Generate renders a summary in the requested format: console, json, or
// csv.
func (rg *ReportGenerator) Generate(summary *domain.AssessmentSummary, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "console":
		return rg.generateConsole(summary), nil
	case "json":
		return rg.generateJSON(summary)
	case "csv":
		return rg.generateCSV(summary)
	default:
		return nil, fmt.Errorf("unsupported format: %s (expected console, json, or csv)", format)
	}
}

func (rg *ReportGenerator) generateConsole(summary *domain.AssessmentSummary) []byte {
	var b strings.Builder

	b.WriteString(titleStyle.Render("COLLAPSE PERFORMANCE ASSESSMENT") + "\n")
	b.WriteString(titleStyle.Render(strings.Repeat("=", 46)) + "\n\n")

	writeRow := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}

	writeRow("Archetype", summary.ArchetypeID)
	writeRow("Design category", summary.Category.String())
	writeRow("Period T", FormatPeriod(summary.PeriodT))
	writeRow("Ductility mu_T", FormatMetric(summary.DuctilityMuT))
	writeRow("Ratings (DR/TD/MDL)", fmt.Sprintf("%s/%s/%s",
		summary.Ratings.DesignRequirements,
		summary.Ratings.TestData,
		summary.Ratings.ModelQuality))
	writeRow("Collapse probability", FormatProbability(summary.CollapseProbability))
	b.WriteString("\n")

	writeRow("MCE intensity SMT", FormatMetric(summary.SMT))
	writeRow("Scale factor SF1", FormatMetric(summary.SF1))
	writeRow("Shape factor SSF", FormatMetric(summary.SSF))
	writeRow("Total uncertainty", summary.BetaTotal.StringFixed(3))
	writeRow("Acceptable CMR", FormatMetric(summary.ACMR))

	if !summary.CMR.IsZero() {
		b.WriteString("\n")
		writeRow("Computed CMR", FormatMetric(summary.CMR))
		writeRow("Adjusted CMR (SSF*CMR)", FormatMetric(summary.AdjustedCMR))

		verdict := failStyle.Render("FAIL")
		if summary.Acceptable {
			verdict = passStyle.Render("PASS")
		}
		writeRow("Acceptance check", verdict)
	}

	return []byte(b.String())
}

func (rg *ReportGenerator) generateJSON(summary *domain.AssessmentSummary) ([]byte, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (rg *ReportGenerator) generateCSV(summary *domain.AssessmentSummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Archetype", "Category", "PeriodT", "DuctilityMuT",
		"RatingDR", "RatingTD", "RatingMDL", "CollapseProbability",
		"SMT", "SF1", "SSF", "BetaTotal", "ACMR", "CMR", "AdjustedCMR", "Acceptable",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	row := []string{
		summary.ArchetypeID,
		summary.Category.String(),
		summary.PeriodT.StringFixed(4),
		summary.DuctilityMuT.StringFixed(4),
		string(summary.Ratings.DesignRequirements),
		string(summary.Ratings.TestData),
		string(summary.Ratings.ModelQuality),
		summary.CollapseProbability.StringFixed(4),
		summary.SMT.StringFixed(4),
		summary.SF1.StringFixed(4),
		summary.SSF.StringFixed(4),
		summary.BetaTotal.StringFixed(3),
		summary.ACMR.StringFixed(4),
		summary.CMR.StringFixed(4),
		summary.AdjustedCMR.StringFixed(4),
		fmt.Sprintf("%t", summary.Acceptable),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// FormatMetric formats a dimensionless metric to three decimals.
func FormatMetric(v decimal.Decimal) string {
	return v.StringFixed(3)
}

// FormatPeriod formats a period in seconds.
func FormatPeriod(v decimal.Decimal) string {
	return v.StringFixed(3) + " s"
}

// FormatProbability formats a probability as a percentage.
func FormatProbability(v decimal.Decimal) string {
	return v.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
