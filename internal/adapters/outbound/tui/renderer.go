package tui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openkraft/cleanuml/internal/domain"
)

// ── Warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	info      = lipgloss.Color("#8B949E") // soft blue-gray
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	statusColors = map[string]lipgloss.Color{
		domain.StatusPass: success,
		domain.StatusWarn: warning,
		domain.StatusFail: danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	highTagStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	medTagStyle   = lipgloss.NewStyle().Foreground(warning).Bold(true)
	lowTagStyle   = lipgloss.NewStyle().Foreground(info)
	newTagStyle   = lipgloss.NewStyle().Foreground(accent).Bold(true)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	kindNameStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderRun formats the outcome of one validation for terminal output.
func RenderRun(run *domain.RunResult) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("cleanuml")
	subtitle := dimStyle.Render("UML Model Validation")
	model := titleStyle.Render(filepath.Base(run.Model))
	if run.Revision != "" {
		model += "  " + faintStyle.Render(run.Revision)
	}
	status := lipgloss.NewStyle().
		Bold(true).
		Foreground(statusColor(run.Status)).
		Render(strings.ToUpper(run.Status))
	total := dimStyle.Render(fmt.Sprintf("%d issues", run.Counts.Total()))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + model + "\n" + status + "  " + total))
	b.WriteString("\n\n")

	// ── Kinds ──
	for _, k := range run.Kinds {
		renderKind(&b, k)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Issues ──
	issues := sortBySeverity(run.Issues)
	if len(issues) > 0 {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Issues"))
		b.WriteString("  ")
		renderCounts(&b, run.Counts)
		if run.NewIssues > 0 {
			b.WriteString(newTagStyle.Render(fmt.Sprintf("%d new", run.NewIssues)))
		}
		b.WriteString("\n\n")

		for _, issue := range issues {
			renderIssue(&b, issue)
		}
	} else {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
	}

	if run.ReportPath != "" {
		b.WriteString("\n  " + dimStyle.Render("report: ") + fileStyle.Render(run.ReportPath) + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderKind(b *strings.Builder, k domain.KindRun) {
	name := padRight(k.Kind, 18)

	if !k.Enabled {
		fmt.Fprintf(b, "  %s %s %s\n",
			skipStyle.Render("○"),
			skipStyle.Render(name),
			skipStyle.Render("skipped"),
		)
		return
	}

	icon := passStyle.Render("●")
	if k.Scoped == 0 {
		icon = warnStyle.Render("●")
	}
	objects := dimStyle.Render(padRight(fmt.Sprintf("%d/%d in scope", k.Scoped, k.Total), 18))
	rules := faintStyle.Render(fmt.Sprintf("%d/%d rules", k.Checked, k.Rules))
	fmt.Fprintf(b, "  %s %s %s %s\n", icon, kindNameStyle.Render(name), objects, rules)
}

func renderCounts(b *strings.Builder, c domain.SeverityCounts) {
	if c.High > 0 {
		b.WriteString(highTagStyle.Render(fmt.Sprintf("%d high", c.High)))
		b.WriteString("  ")
	}
	if c.Medium > 0 {
		b.WriteString(medTagStyle.Render(fmt.Sprintf("%d medium", c.Medium)))
		b.WriteString("  ")
	}
	if c.Low > 0 {
		b.WriteString(lowTagStyle.Render(fmt.Sprintf("%d low", c.Low)))
		b.WriteString("  ")
	}
}

func renderIssue(b *strings.Builder, issue domain.IssueRecord) {
	tag := severityTag(issue.Severity)
	rule := fileStyle.Render(issue.Rule)
	if issue.New {
		rule += " " + newTagStyle.Render("new")
	}

	fmt.Fprintf(b, "    %s %s\n", tag, rule)
	line := issue.Subject
	if issue.Evidence != "" {
		line += ": " + issue.Evidence
	}
	fmt.Fprintf(b, "         %s\n", dimStyle.Render(line))
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityHigh:
		return highTagStyle.Render("high ")
	case domain.SeverityMedium:
		return medTagStyle.Render("med  ")
	default:
		return lowTagStyle.Render("low  ")
	}
}

var severityOrder = map[string]int{
	domain.SeverityHigh:   0,
	domain.SeverityMedium: 1,
	domain.SeverityLow:    2,
}

// sortBySeverity returns a copy ordered by severity, keeping rule order
// within a severity.
func sortBySeverity(issues []domain.IssueRecord) []domain.IssueRecord {
	out := append([]domain.IssueRecord(nil), issues...)
	sort.SliceStable(out, func(i, j int) bool {
		return severityOrder[out[i].Severity] < severityOrder[out[j].Severity]
	})
	return out
}

func statusColor(status string) lipgloss.Color {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats run history for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		rev := e.Revision
		if rev == "" {
			rev = "·······"
		}
		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		statusStyled := lipgloss.NewStyle().
			Foreground(statusColor(e.Status)).
			Render(padRight(e.Status, 4))

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(padRight(rev, 13)),
			statusStyled,
			fmt.Sprintf("%d issues", e.Total()),
		)

		if i > 0 {
			diff := e.Total() - entries[i-1].Total()
			if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			} else if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
