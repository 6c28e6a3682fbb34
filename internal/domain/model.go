package domain

import "time"

// Rule severities.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Run statuses.
const (
	StatusPass = "pass"
	StatusWarn = "warn"
	StatusFail = "fail"
)

// RunResult is the outcome of validating one model.
type RunResult struct {
	Model      string         `json:"model"`
	Revision   string         `json:"revision,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	Status     string         `json:"status"`
	Kinds      []KindRun      `json:"kinds"`
	Counts     SeverityCounts `json:"counts"`
	Issues     []IssueRecord  `json:"issues"`
	NewIssues  int            `json:"new_issues"`
	ReportPath string         `json:"report_path,omitempty"`
}

// KindRun describes how one element kind was validated.
type KindRun struct {
	Kind    string `json:"kind"`
	Enabled bool   `json:"enabled"`
	Scoped  int    `json:"scoped"`
	Total   int    `json:"total"`
	Rules   int    `json:"rules"`
	Checked int    `json:"checked"`
}

// SeverityCounts tallies issues per rule severity.
type SeverityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

func (c SeverityCounts) Total() int { return c.High + c.Medium + c.Low }

// Add counts one issue of the given severity.
func (c *SeverityCounts) Add(severity string) {
	switch severity {
	case SeverityHigh:
		c.High++
	case SeverityMedium:
		c.Medium++
	case SeverityLow:
		c.Low++
	}
}

// StatusFor maps counts to a run status: any high-severity issue fails,
// any other issue warns.
func StatusFor(c SeverityCounts) string {
	switch {
	case c.High > 0:
		return StatusFail
	case c.Medium > 0 || c.Low > 0:
		return StatusWarn
	default:
		return StatusPass
	}
}

// IssueRecord is the serializable form of one issue.
type IssueRecord struct {
	Rule          string `json:"rule"`
	Category      string `json:"category"`
	Severity      string `json:"severity"`
	Kind          string `json:"kind"`
	Owner         string `json:"owner"`
	Subject       string `json:"subject"`
	QualifiedName string `json:"qualified_name"`
	Evidence      string `json:"evidence,omitempty"`
	GroupTag      string `json:"group_tag,omitempty"`
	Hypothesis    string `json:"hypothesis"`
	HowToFix      string `json:"how_to_fix"`
	New           bool   `json:"new,omitempty"`
}

// Fingerprint identifies an issue across runs of the same model. Grouped
// issues are keyed by their group tag: their evidence names the other
// members and changes whenever the group grows.
func (r IssueRecord) Fingerprint() string {
	if r.GroupTag != "" {
		return r.Rule + "|" + r.QualifiedName + "|#" + r.GroupTag
	}
	return r.Rule + "|" + r.QualifiedName + "|" + r.Evidence
}

// RuleInfo documents one rule of the catalog.
type RuleInfo struct {
	ID         string   `json:"id"`
	Kind       string   `json:"kind"`
	Category   string   `json:"category"`
	Severity   string   `json:"severity"`
	Hypothesis string   `json:"hypothesis"`
	HowToFix   string   `json:"how_to_fix"`
	Natures    []string `json:"natures"`
	Checked    bool     `json:"checked"`
}

// RunEntry is one line of the run history.
type RunEntry struct {
	Timestamp string `json:"timestamp"`
	Revision  string `json:"revision,omitempty"`
	Model     string `json:"model"`
	Status    string `json:"status"`
	High      int    `json:"high"`
	Medium    int    `json:"medium"`
	Low       int    `json:"low"`
}

func (e RunEntry) Total() int { return e.High + e.Medium + e.Low }
