package tui

import (
	"fmt"
	"strings"
)

// parameterSlider is an adjustable numeric parameter with a visual track.
type parameterSlider struct {
	Label  string
	Value  float64
	Min    float64
	Max    float64
	Step   float64
	Format string
	Width  int
}

func newParameterSlider(label string, value, min, max, step float64) *parameterSlider {
	return &parameterSlider{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.2f",
		Width:  24,
	}
}

func (p *parameterSlider) increment() {
	if v := p.Value + p.Step; v <= p.Max+1e-9 {
		p.Value = v
	}
}

func (p *parameterSlider) decrement() {
	if v := p.Value - p.Step; v >= p.Min-1e-9 {
		p.Value = v
	}
}

func (p *parameterSlider) percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

func (p *parameterSlider) render(focused bool) string {
	filled := int(p.percentage() * float64(p.Width))
	if filled > p.Width {
		filled = p.Width
	}

	track := sliderFillStyle.Render(strings.Repeat("█", filled)) +
		sliderTrackStyle.Render(strings.Repeat("░", p.Width-filled))

	label := p.Label
	if focused {
		label = "› " + label
	} else {
		label = "  " + label
	}

	value := fmt.Sprintf(p.Format, p.Value)
	return paramLabelStyle.Render(label) + track + " " + paramValueStyle.Render(value)
}
