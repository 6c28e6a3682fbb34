package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openkraft/cleanuml/internal/domain"
)

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderRules lists the rule catalog grouped by element kind, in the order
// the rules run.
func RenderRules(rules []domain.RuleInfo) string {
	if len(rules) == 0 {
		return "  " + dimStyle.Render("No rules match.") + "\n"
	}

	var b strings.Builder
	var kind string
	var count int
	for _, r := range rules {
		if r.Kind != kind {
			kind = r.Kind
			count = 0
			for _, o := range rules {
				if o.Kind == kind {
					count++
				}
			}
			b.WriteString("\n")
			fmt.Fprintf(&b, "  %s %s\n",
				sectionHeaderStyle.Render(kind),
				dimStyle.Render(fmt.Sprintf("(%d)", count)),
			)
		}
		renderRule(&b, r)
	}

	b.WriteString("\n")
	b.WriteString("  " + hintStyle.Render("Skip a rule with skip.rules in .cleanuml.yaml."))
	b.WriteString("\n")
	return b.String()
}

func renderRule(b *strings.Builder, r domain.RuleInfo) {
	icon := passStyle.Render("●")
	name := r.ID
	if !r.Checked {
		icon = skipStyle.Render("○")
		name = skipStyle.Render(name)
	}
	fmt.Fprintf(b, "    %s %s %s  %s\n",
		icon,
		severityTag(r.Severity),
		name,
		faintStyle.Render(r.Category),
	)
	fmt.Fprintf(b, "            %s\n", dimStyle.Render(r.Hypothesis+": "+r.HowToFix))
	if len(r.Natures) == 1 {
		fmt.Fprintf(b, "            %s\n", faintStyle.Render(r.Natures[0]+" only"))
	}
}
