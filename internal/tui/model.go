package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgrubisic/femap695/internal/calculation"
	"github.com/mgrubisic/femap695/internal/domain"
)

// Focusable parameters, in navigation order.
const (
	focusCategory = iota
	focusPeriod
	focusDuctility
	focusRatingDR
	focusRatingTD
	focusRatingMDL
	focusProbability
	focusCMR
	focusCount
)

var ratingChoices = []domain.UncertaintyRating{
	domain.RatingA, domain.RatingB, domain.RatingC, domain.RatingD,
}

// metrics holds one recomputation of the live assessment panel.
type metrics struct {
	smt       float64
	sf1       float64
	ssf       float64
	betaTotal float64
	acmr      float64
	err       error
}

// Model is the interactive parameter explorer: adjust an archetype's inputs
// and watch every performance metric recompute.
type Model struct {
	width  int
	height int

	focus int

	categoryIndex int
	period        *parameterSlider
	ductility     *parameterSlider
	probability   *parameterSlider
	cmr           *parameterSlider
	ratingIndex   [3]int

	paramTable table.Model

	engine  *calculation.AssessmentEngine
	current metrics

	quitting bool
}

// NewModel creates the explorer with a representative archetype preloaded.
func NewModel() Model {
	m := Model{
		period:      newParameterSlider("Period T (s)", 1.00, 0.30, 4.90, 0.05),
		ductility:   newParameterSlider("Ductility mu_T", 3.0, 1.0, 10.0, 0.1),
		probability: newParameterSlider("Collapse prob.", 0.10, 0.02, 0.50, 0.01),
		cmr:         newParameterSlider("Computed CMR", 0.0, 0.0, 5.0, 0.05),
		ratingIndex: [3]int{1, 1, 2}, // B, B, C
		engine:      calculation.NewAssessmentEngine(),
	}
	m.paramTable = newParamTable()

	m.refreshTable()
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) category() domain.SeismicDesignCategory {
	return domain.AllSeismicDesignCategories()[m.categoryIndex]
}

func (m Model) ratings() domain.UncertaintyRatings {
	return domain.UncertaintyRatings{
		DesignRequirements: ratingChoices[m.ratingIndex[0]],
		TestData:           ratingChoices[m.ratingIndex[1]],
		ModelQuality:       ratingChoices[m.ratingIndex[2]],
	}
}

// recompute refreshes the metrics panel from the current inputs. The first
// failing calculation wins; its error replaces the panel until the inputs
// move back into range.
func (m *Model) recompute() {
	var res metrics
	sdc := m.category()
	r := m.ratings()

	res.smt, res.err = calculation.SMT(m.period.Value, sdc)
	if res.err == nil {
		res.sf1, res.err = calculation.SF1(m.period.Value, sdc, domain.FarField)
	}
	if res.err == nil {
		res.ssf, res.err = calculation.SSF(m.period.Value, m.ductility.Value, sdc)
	}
	if res.err == nil {
		res.betaTotal, res.err = calculation.BetaTotal(
			r.DesignRequirements, r.TestData, r.ModelQuality, m.ductility.Value)
	}
	if res.err == nil {
		res.acmr, res.err = m.engine.Solver.ACMR(res.betaTotal, m.probability.Value)
	}

	m.current = res
}

func newParamTable() table.Model {
	columns := []table.Column{
		{Title: "Param", Width: 6},
		{Title: "Value", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(9),
		table.WithFocused(false),
	)

	styles := table.DefaultStyles()
	styles.Selected = styles.Cell
	t.SetStyles(styles)
	return t
}

// refreshTable reloads the code-parameter table for the selected category.
func (m *Model) refreshTable() {
	ps, err := calculation.CodeParameters(m.category())
	if err != nil {
		m.paramTable.SetRows(nil)
		return
	}

	rows := []table.Row{
		{"SS", fmt.Sprintf("%.3f", ps.SS)},
		{"S1", fmt.Sprintf("%.3f", ps.S1)},
		{"Fa", fmt.Sprintf("%.3f", ps.Fa)},
		{"Fv", fmt.Sprintf("%.3f", ps.Fv)},
		{"SMS", fmt.Sprintf("%.3f", ps.SMS)},
		{"SM1", fmt.Sprintf("%.3f", ps.SM1)},
		{"SDS", fmt.Sprintf("%.3f", ps.SDS)},
		{"SD1", fmt.Sprintf("%.3f", ps.SD1)},
		{"TS", fmt.Sprintf("%.3f", ps.TS())},
	}
	m.paramTable.SetRows(rows)
}
