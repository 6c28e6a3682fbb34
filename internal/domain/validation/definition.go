package validation

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/openkraft/cleanuml/internal/domain/uml"
)

// Definition holds the descriptive part shared by all rules and renders
// their diagnosis. Concrete rules embed it.
type Definition struct {
	id         string
	category   Category
	severity   Severity
	hypothesis string
	howToFix   string
	natures    []uml.Nature
	level      zapcore.Level
	levelSet   bool
}

// DefinitionOption customizes a Definition.
type DefinitionOption func(*Definition)

func WithCategory(c Category) DefinitionOption {
	return func(d *Definition) { d.category = c }
}

func WithSeverity(s Severity) DefinitionOption {
	return func(d *Definition) { d.severity = s }
}

// WithLevel overrides the level derived from the severity.
func WithLevel(l zapcore.Level) DefinitionOption {
	return func(d *Definition) {
		d.level = l
		d.levelSet = true
	}
}

// ForNatures restricts the rule to objects of the given natures.
func ForNatures(natures ...uml.Nature) DefinitionOption {
	return func(d *Definition) { d.natures = append([]uml.Nature(nil), natures...) }
}

// Define creates a rule definition. It panics when id, hypothesis or
// howToFix is empty: that is a bug in the rule, not in the model.
func Define(id, hypothesis, howToFix string, opts ...DefinitionOption) Definition {
	if strings.TrimSpace(id) == "" {
		panic("validation: rule id must not be empty")
	}
	if strings.TrimSpace(hypothesis) == "" {
		panic(fmt.Sprintf("validation: rule %s: hypothesis must not be empty", id))
	}
	if strings.TrimSpace(howToFix) == "" {
		panic(fmt.Sprintf("validation: rule %s: howToFix must not be empty", id))
	}
	d := Definition{
		id:         id,
		category:   ModellingRule,
		severity:   High,
		hypothesis: hypothesis,
		howToFix:   howToFix,
		natures:    append([]uml.Nature(nil), uml.Natures...),
	}
	for _, opt := range opts {
		opt(&d)
	}
	if !d.levelSet {
		d.level = d.severity.defaultLevel()
	}
	return d
}

func (d *Definition) ID() string { return d.id }
func (d *Definition) Category() Category { return d.category }
func (d *Definition) Severity() Severity { return d.severity }
func (d *Definition) Hypothesis() string { return d.hypothesis }
func (d *Definition) HowToFix() string { return d.howToFix }
func (d *Definition) Level() zapcore.Level { return d.level }

func (d *Definition) Natures() []uml.Nature {
	return append([]uml.Nature(nil), d.natures...)
}

func (d *Definition) AppliesTo(n uml.Nature) bool {
	for _, x := range d.natures {
		if x == n {
			return true
		}
	}
	return false
}

// NewIssue creates an issue for subject with this rule as its owner.
func (d *Definition) NewIssue(subject uml.Object, opts ...IssueOption) *Issue {
	return NewIssue(subject, d, opts...)
}

// Summary renders "Found N <hypothesis> - <howToFix>" terminated by a colon
// when issue lines follow and by a period otherwise.
func (d *Definition) Summary(count int) string {
	end := "."
	if count > 0 {
		end = ":"
	}
	return fmt.Sprintf("Found %d %s - %s%s", count, d.hypothesis, strings.TrimRight(d.howToFix, "."), end)
}

// DiagnosisLevel is the level of the summary line for count issues.
func (d *Definition) DiagnosisLevel(count int, verbose bool) zapcore.Level {
	switch {
	case count > 0:
		return d.level
	case verbose:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func (d *Definition) LogDiagnosis(log *zap.Logger, verbose bool, issues *Issues) {
	found := issues.ForRule(d.id)
	level := d.DiagnosisLevel(len(found), verbose)
	if ce := log.Check(level, d.Summary(len(found))); ce != nil {
		ce.Write(zap.String("rule", d.id))
	}
	for _, is := range found {
		log.Log(level, "  "+is.DiagnosisItem())
	}
}
