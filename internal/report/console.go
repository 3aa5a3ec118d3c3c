package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/uxforge/uxlint/internal/pattern"
	"github.com/uxforge/uxlint/internal/validate"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F5A623"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)

	bandStyles = map[string]lipgloss.Style{
		validate.BandExcellent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E")),
		validate.BandGood:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#84CC16")),
		validate.BandFair:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B")),
		validate.BandPoor:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
	}
)

// RenderText writes the run summary as plain lines for pipes and logs.
func RenderText(a Artifact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "uxlint %s\n", a.ScaffoldPath)
	fmt.Fprintf(&b, "score %d (%s)\n", a.Score.Score, a.Score.Band)
	for _, res := range a.Summary.Patterns {
		fmt.Fprintf(&b, "%s  must %d/%d  should %d/%d\n",
			res.Pattern,
			res.MustPassed, res.MustPassed+res.MustFailed,
			res.ShouldPassed, res.ShouldPassed+res.ShouldFailed)
		for _, iss := range res.Issues {
			fmt.Fprintf(&b, "  %s %s%s: %s\n", iss.Severity, iss.ID, nodeRef(iss), iss.Message)
			if iss.Suggestion != "" {
				fmt.Fprintf(&b, "    fix: %s\n", iss.Suggestion)
			}
		}
	}
	fmt.Fprintf(&b, "coverage %v%% (%d/%d activated)\n", a.Coverage.Percent, a.Coverage.Activated, a.Coverage.NTotal)
	for _, gap := range a.Coverage.Gaps {
		fmt.Fprintf(&b, "gap %s: %s\n", gap.Pattern, gap.Reason)
	}
	return b.String()
}

// RenderPretty writes the run summary with terminal styling.
func RenderPretty(a Artifact) string {
	band, ok := bandStyles[a.Score.Band]
	if !ok {
		band = dimStyle
	}

	lines := []string{
		titleStyle.Render("uxlint") + " " + dimStyle.Render(a.ScaffoldPath),
		"score " + band.Render(fmt.Sprintf("%d · %s", a.Score.Score, a.Score.Band)),
		"",
	}
	for _, res := range a.Summary.Patterns {
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			titleStyle.Render(res.Pattern),
			fmt.Sprintf("must %d/%d", res.MustPassed, res.MustPassed+res.MustFailed),
			fmt.Sprintf("should %d/%d", res.ShouldPassed, res.ShouldPassed+res.ShouldFailed)))
		for _, iss := range res.Issues {
			sev := warnStyle
			if iss.Severity == pattern.SeverityError {
				sev = errorStyle
			}
			lines = append(lines, fmt.Sprintf("  %s %s%s: %s",
				sev.Render(string(iss.Severity)), iss.ID, nodeRef(iss), iss.Message))
			if iss.Suggestion != "" {
				lines = append(lines, dimStyle.Render("    fix: "+iss.Suggestion))
			}
		}
	}
	lines = append(lines, "",
		fmt.Sprintf("coverage %v%% (%d/%d activated)", a.Coverage.Percent, a.Coverage.Activated, a.Coverage.NTotal))
	for _, gap := range a.Coverage.Gaps {
		lines = append(lines, warnStyle.Render("gap ")+gap.Pattern+dimStyle.Render(": "+gap.Reason))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func nodeRef(iss pattern.Issue) string {
	if iss.NodeID == "" {
		return ""
	}
	return " node=" + iss.NodeID
}
