package validation

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/openkraft/cleanuml/internal/domain"
	"github.com/openkraft/cleanuml/internal/domain/uml"
)

// CSVHeader is the first row of every problems report.
var CSVHeader = []string{
	"SubjectOwner", "Severity", "GroupTag", "SubjectDescription", "Evidence",
	"Hypothesis", "HowToFix", "RuleName", "Category", "SubjectQName", "SubjectKind",
}

// Issue is one rule violation found on a subject. It is immutable once
// created.
type Issue struct {
	subject     uml.Object
	rule        Rule
	description string
	evidence    string
	groupTag    string

	diagOnce sync.Once
	diag     string
}

// IssueOption customizes an Issue at creation.
type IssueOption func(*Issue)

// WithEvidence attaches the text that proves the violation.
func WithEvidence(evidence string) IssueOption {
	return func(i *Issue) { i.evidence = evidence }
}

// WithDescription replaces the default subject description.
func WithDescription(desc string) IssueOption {
	return func(i *Issue) { i.description = desc }
}

// WithGroupTag clusters mutually related issues, such as every member of a
// group of duplicates.
func WithGroupTag(tag string) IssueOption {
	return func(i *Issue) { i.groupTag = tag }
}

// NewIssue panics on a nil subject or rule.
func NewIssue(subject uml.Object, rule Rule, opts ...IssueOption) *Issue {
	if isNil(subject) {
		panic("validation: issue subject must not be nil")
	}
	if rule == nil {
		panic("validation: issue rule must not be nil")
	}
	i := &Issue{subject: subject, rule: rule}
	for _, opt := range opts {
		opt(i)
	}
	if i.description == "" {
		i.description = subject.String()
	}
	return i
}

func (i *Issue) Subject() uml.Object { return i.subject }
func (i *Issue) Rule() Rule { return i.rule }
func (i *Issue) Description() string { return i.description }
func (i *Issue) Evidence() string { return i.evidence }
func (i *Issue) GroupTag() string { return i.groupTag }

// DiagnosisItem renders "[groupTag ]description[ : evidence]". The result is
// computed once.
func (i *Issue) DiagnosisItem() string {
	i.diagOnce.Do(func() {
		var b strings.Builder
		if i.groupTag != "" {
			b.WriteString(i.groupTag)
			b.WriteByte(' ')
		}
		b.WriteString(i.description)
		if i.evidence != "" {
			b.WriteString(" : ")
			b.WriteString(i.evidence)
		}
		i.diag = b.String()
	})
	return i.diag
}

// CSVRecord returns the report fields in CSVHeader order.
func (i *Issue) CSVRecord() []string {
	return []string{
		string(i.subject.Owner()),
		string(i.rule.Severity()),
		i.groupTag,
		i.description,
		i.evidence,
		i.rule.Hypothesis(),
		i.rule.HowToFix(),
		i.rule.ID(),
		string(i.rule.Category()),
		i.subject.QualifiedName(),
		string(i.subject.Kind()),
	}
}

// AsCSV renders the issue as one escaped CSV line without line terminator.
func (i *Issue) AsCSV() string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(i.CSVRecord())
	w.Flush()
	return strings.TrimRight(buf.String(), "\n")
}

// Record converts the issue to its serializable form.
func (i *Issue) Record() domain.IssueRecord {
	return domain.IssueRecord{
		Rule:          i.rule.ID(),
		Category:      string(i.rule.Category()),
		Severity:      string(i.rule.Severity()),
		Kind:          string(i.subject.Kind()),
		Owner:         string(i.subject.Owner()),
		Subject:       i.description,
		QualifiedName: i.subject.QualifiedName(),
		Evidence:      i.evidence,
		GroupTag:      i.groupTag,
		Hypothesis:    i.rule.Hypothesis(),
		HowToFix:      i.rule.HowToFix(),
	}
}

func (i *Issue) String() string {
	return fmt.Sprintf("%s: %s", i.rule.ID(), i.DiagnosisItem())
}

// Issues collects every issue of one validation run. Add is the only
// mutation, so the indices never disagree.
type Issues struct {
	all            []*Issue
	bySubject      map[uml.Object][]*Issue
	subjectsByRule map[string][]uml.Object
	byRule         map[string][]*Issue
}

func NewIssues() *Issues {
	return &Issues{
		bySubject:      make(map[uml.Object][]*Issue),
		subjectsByRule: make(map[string][]uml.Object),
		byRule:         make(map[string][]*Issue),
	}
}

// Add records issue for subject. It panics on nil arguments.
func (s *Issues) Add(subject uml.Object, issue *Issue) {
	if isNil(subject) {
		panic("validation: subject must not be nil")
	}
	if issue == nil {
		panic("validation: issue must not be nil")
	}
	id := issue.rule.ID()

	s.all = append(s.all, issue)
	s.bySubject[subject] = append(s.bySubject[subject], issue)
	if !containsObject(s.subjectsByRule[id], subject) {
		s.subjectsByRule[id] = append(s.subjectsByRule[id], subject)
	}
	s.byRule[id] = append(s.byRule[id], issue)
}

// All returns every issue in insertion order.
func (s *Issues) All() []*Issue { return append([]*Issue(nil), s.all...) }

func (s *Issues) Len() int { return len(s.all) }

// For returns the issues recorded for subject.
func (s *Issues) For(subject uml.Object) []*Issue {
	return append([]*Issue(nil), s.bySubject[subject]...)
}

// SubjectsWithProblem returns, without duplicates, the subjects the rule
// found issues on.
func (s *Issues) SubjectsWithProblem(ruleID string) []uml.Object {
	return append([]uml.Object(nil), s.subjectsByRule[ruleID]...)
}

// ForRule returns the issues the rule found, in insertion order.
func (s *Issues) ForRule(ruleID string) []*Issue {
	return append([]*Issue(nil), s.byRule[ruleID]...)
}

func (s *Issues) CountBySeverity() domain.SeverityCounts {
	var c domain.SeverityCounts
	for _, i := range s.all {
		c.Add(string(i.rule.Severity()))
	}
	return c
}

// Records converts every issue to its serializable form.
func (s *Issues) Records() []domain.IssueRecord {
	out := make([]domain.IssueRecord, 0, len(s.all))
	for _, i := range s.all {
		out = append(out, i.Record())
	}
	return out
}

// WriteCSV writes the header and one row per issue.
func (s *Issues) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, i := range s.all {
		if err := cw.Write(i.CSVRecord()); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AsCSV renders the whole report.
func (s *Issues) AsCSV() string {
	var buf bytes.Buffer
	_ = s.WriteCSV(&buf)
	return buf.String()
}

func containsObject(objs []uml.Object, o uml.Object) bool {
	for _, x := range objs {
		if x == o {
			return true
		}
	}
	return false
}
