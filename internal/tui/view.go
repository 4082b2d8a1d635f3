package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("FEMA P695 PERFORMANCE EXPLORER") + "\n")

	left := m.renderInputs()
	right := m.renderSidebar()

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	b.WriteString(helpStyle.Render("\n↑/↓ select parameter · ←/→ adjust · q quit"))

	return appStyle.Render(b.String())
}

func (m Model) renderInputs() string {
	var rows []string

	rows = append(rows, m.renderChoice(focusCategory, "Design category", m.category().String()))
	rows = append(rows, m.period.render(m.focus == focusPeriod))
	rows = append(rows, m.ductility.render(m.focus == focusDuctility))
	rows = append(rows, m.renderChoice(focusRatingDR, "Design req. rating", ratingChoices[m.ratingIndex[0]].String()))
	rows = append(rows, m.renderChoice(focusRatingTD, "Test data rating", ratingChoices[m.ratingIndex[1]].String()))
	rows = append(rows, m.renderChoice(focusRatingMDL, "Model quality rating", ratingChoices[m.ratingIndex[2]].String()))
	rows = append(rows, m.probability.render(m.focus == focusProbability))
	rows = append(rows, m.cmr.render(m.focus == focusCMR))

	style := panelStyle
	if m.focus < focusCount {
		style = focusedPanelStyle
	}
	return style.Render(strings.Join(rows, "\n"))
}

func (m Model) renderChoice(focus int, label, value string) string {
	prefix := "  "
	if m.focus == focus {
		prefix = "› "
	}
	return paramLabelStyle.Render(prefix+label) + paramValueStyle.Render("◂ "+value+" ▸")
}

func (m Model) renderSidebar() string {
	metricsPanel := panelStyle.Render(m.renderMetrics())
	tablePanel := panelStyle.Render("SDC " + m.category().String() + "\n" + m.paramTable.View())
	return lipgloss.JoinVertical(lipgloss.Left, metricsPanel, tablePanel)
}

func (m Model) renderMetrics() string {
	if m.current.err != nil {
		return errorStyle.Render("⚠ " + m.current.err.Error())
	}

	row := func(label string, value float64) string {
		return metricLabelStyle.Render(fmt.Sprintf("%-18s", label)) +
			metricValueStyle.Render(fmt.Sprintf("%8.3f", value))
	}

	lines := []string{
		row("MCE intensity SMT", m.current.smt),
		row("Scale factor SF1", m.current.sf1),
		row("Shape factor SSF", m.current.ssf),
		row("Total uncertainty", m.current.betaTotal),
		row("Acceptable CMR", m.current.acmr),
	}

	if m.cmr.Value > 0 {
		adjusted := m.current.ssf * m.cmr.Value
		lines = append(lines, row("Adjusted CMR", adjusted))

		verdict := failStyle.Render("FAIL")
		if adjusted >= m.current.acmr {
			verdict = passStyle.Render("PASS")
		}
		lines = append(lines, metricLabelStyle.Render(fmt.Sprintf("%-18s", "Acceptance"))+verdict)
	}

	return strings.Join(lines, "\n")
}
