package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgrubisic/femap695/internal/domain"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			m.focus = (m.focus + focusCount - 1) % focusCount
			return m, nil

		case "down", "j", "tab":
			m.focus = (m.focus + 1) % focusCount
			return m, nil

		case "left", "h":
			m.adjust(-1)
			return m, nil

		case "right", "l":
			m.adjust(+1)
			return m, nil
		}
	}

	return m, nil
}

// adjust moves the focused parameter one step in the given direction and
// recomputes the metrics panel.
func (m *Model) adjust(direction int) {
	switch m.focus {
	case focusCategory:
		n := len(domain.AllSeismicDesignCategories())
		m.categoryIndex = (m.categoryIndex + direction + n) % n
		m.refreshTable()

	case focusPeriod:
		if direction > 0 {
			m.period.increment()
		} else {
			m.period.decrement()
		}

	case focusDuctility:
		if direction > 0 {
			m.ductility.increment()
		} else {
			m.ductility.decrement()
		}

	case focusRatingDR, focusRatingTD, focusRatingMDL:
		i := m.focus - focusRatingDR
		n := len(ratingChoices)
		m.ratingIndex[i] = (m.ratingIndex[i] + direction + n) % n

	case focusProbability:
		if direction > 0 {
			m.probability.increment()
		} else {
			m.probability.decrement()
		}

	case focusCMR:
		if direction > 0 {
			m.cmr.increment()
		} else {
			m.cmr.decrement()
		}
	}

	m.recompute()
}
