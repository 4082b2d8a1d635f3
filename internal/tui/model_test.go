package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrubisic/femap695/internal/domain"
)

func TestNewModel_ComputesInitialMetrics(t *testing.T) {
	m := NewModel()

	require.NoError(t, m.current.err)
	assert.Greater(t, m.current.smt, 0.0)
	assert.Greater(t, m.current.acmr, 1.0)
	assert.Equal(t, domain.SDCDmax, m.category())
	assert.NotEmpty(t, m.paramTable.Rows())
}

func TestModel_AdjustCategoryWraps(t *testing.T) {
	m := NewModel()
	m.focus = focusCategory

	n := len(domain.AllSeismicDesignCategories())
	m.adjust(-1)
	assert.Equal(t, domain.AllSeismicDesignCategories()[n-1], m.category())

	m.adjust(+1)
	assert.Equal(t, domain.SDCDmax, m.category())
}

func TestModel_AdjustRecomputes(t *testing.T) {
	m := NewModel()
	before := m.current.smt

	m.focus = focusPeriod
	for i := 0; i < 20; i++ {
		m.adjust(+1)
	}

	assert.NoError(t, m.current.err)
	assert.Less(t, m.current.smt, before, "Longer period should reduce MCE intensity")
}

func TestModel_UpdateKeys(t *testing.T) {
	m := NewModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, focusPeriod, m.focus)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(Model)
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
}

func TestModel_ViewRendersMetrics(t *testing.T) {
	m := NewModel()

	view := m.View()
	assert.Contains(t, view, "PERFORMANCE EXPLORER")
	assert.Contains(t, view, "Total uncertainty")
}
