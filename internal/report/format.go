package report

import (
	"github.com/charmbracelet/lipgloss"

	"kpfits/internal/engine"
)

// severityTag renders the fixed-width severity prefix for a finding line.
func severityTag(severity engine.Severity, noColor bool) string {
	return stylize(severityLabel(severity), severity, noColor)
}

// severityLabel maps severities to display labels. All labels are four
// characters so finding lines stay column-aligned.
func severityLabel(severity engine.Severity) string {
	switch severity {
	case engine.Pass:
		return "PASS"
	case engine.Fail:
		return "FAIL"
	case engine.Warning:
		return "WARN"
	default:
		return string(severity)
	}
}

// stylize applies severity coloring when enabled.
func stylize(text string, severity engine.Severity, noColor bool) string {
	if noColor {
		return text
	}
	return severityStyle(severity).Render(text)
}

// severityStyle selects a style for a given severity.
func severityStyle(severity engine.Severity) lipgloss.Style {
	color := lipgloss.Color("246")
	switch severity {
	case engine.Pass:
		color = lipgloss.Color("42")
	case engine.Fail:
		color = lipgloss.Color("196")
	case engine.Warning:
		color = lipgloss.Color("220")
	}
	return lipgloss.NewStyle().Foreground(color)
}
