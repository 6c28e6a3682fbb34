package tui_test

import (
	"strings"
	"testing"

	"github.com/openkraft/cleanuml/internal/adapters/outbound/tui"
	"github.com/openkraft/cleanuml/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleRun() *domain.RunResult {
	return &domain.RunResult{
		Model:    "/models/grid.eap",
		Revision: "abc1234",
		Status:   domain.StatusFail,
		Kinds: []domain.KindRun{
			{Kind: "package", Enabled: true, Scoped: 3, Total: 4, Rules: 10, Checked: 10},
			{Kind: "class", Enabled: true, Scoped: 0, Total: 2, Rules: 15, Checked: 14},
			{Kind: "diagram", Enabled: false, Total: 1, Rules: 7},
		},
		Counts: domain.SeverityCounts{High: 1, Low: 1},
		Issues: []domain.IssueRecord{
			{Rule: "ClassesWithBadDocEnd", Severity: domain.SeverityLow, Subject: "class Switch"},
			{Rule: "ClassesWithSameName", Severity: domain.SeverityHigh, Subject: "class Breaker", Evidence: "also TC57CIM::Breaker", New: true},
		},
		NewIssues:  1,
		ReportPath: "/models/problemsReport-grid.csv",
	}
}

func TestRenderRun_Header(t *testing.T) {
	output := tui.RenderRun(sampleRun())
	assert.Contains(t, output, "cleanuml")
	assert.Contains(t, output, "grid.eap")
	assert.Contains(t, output, "abc1234")
	assert.Contains(t, output, "FAIL")
	assert.Contains(t, output, "2 issues")
}

func TestRenderRun_Kinds(t *testing.T) {
	output := tui.RenderRun(sampleRun())
	assert.Contains(t, output, "3/4 in scope")
	assert.Contains(t, output, "14/15 rules")
	assert.Contains(t, output, "○", "skipped kinds use ○")
	assert.Contains(t, output, "skipped")
}

func TestRenderRun_IssuesHighFirst(t *testing.T) {
	output := tui.RenderRun(sampleRun())
	high := strings.Index(output, "ClassesWithSameName")
	low := strings.Index(output, "ClassesWithBadDocEnd")
	assert.True(t, high >= 0 && low >= 0)
	assert.Less(t, high, low, "high severity issues come first")
	assert.Contains(t, output, "class Breaker: also TC57CIM::Breaker")
}

func TestRenderRun_SummaryCounts(t *testing.T) {
	output := tui.RenderRun(sampleRun())
	assert.Contains(t, output, "1 high")
	assert.Contains(t, output, "1 low")
	assert.NotContains(t, output, "0 medium")
	assert.Contains(t, output, "1 new")
}

func TestRenderRun_ReportPath(t *testing.T) {
	output := tui.RenderRun(sampleRun())
	assert.Contains(t, output, "problemsReport-grid.csv")
}

func TestRenderRun_NoIssues(t *testing.T) {
	run := &domain.RunResult{Model: "grid.eap", Status: domain.StatusPass}
	output := tui.RenderRun(run)
	assert.Contains(t, output, "No issues found.")
	assert.Contains(t, output, "PASS")
}

func TestRenderRun_DoesNotReorderInput(t *testing.T) {
	run := sampleRun()
	tui.RenderRun(run)
	assert.Equal(t, "ClassesWithBadDocEnd", run.Issues[0].Rule)
}

func TestRenderHistory(t *testing.T) {
	entries := []domain.RunEntry{
		{Timestamp: "2026-02-25T10:00:00Z", Revision: "abc1234", Model: "grid.eap", Status: domain.StatusFail, High: 4},
		{Timestamp: "2026-02-26T10:00:00Z", Model: "grid.eap", Status: domain.StatusWarn, Low: 1},
		{Timestamp: "2026-02-27T10:00:00Z", Model: "grid.eap", Status: domain.StatusWarn, Low: 3},
	}

	output := tui.RenderHistory(entries)
	assert.Contains(t, output, "Run History")
	assert.Contains(t, output, "2026-02-25")
	assert.Contains(t, output, "abc1234")
	assert.Contains(t, output, "·······")
	assert.Contains(t, output, "↓3")
	assert.Contains(t, output, "↑2")
}

func TestRenderHistory_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil), "No run history found.")
}
