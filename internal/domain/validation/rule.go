// Package validation checks UML model objects against a catalog of
// independent rules and collects the violations as issues.
package validation

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/openkraft/cleanuml/internal/domain"
	"github.com/openkraft/cleanuml/internal/domain/uml"
)

// Category classifies the origin of a rule violation.
type Category string

const (
	LegacyTool        Category = "legacyTool"
	PermissiveTool    Category = "permissiveTool"
	NamingRule        Category = "namingRule"
	ModellingRule     Category = "modellingRule"
	DocumentationRule Category = "documentationRule"
	Formatting        Category = "formatting"
)

// Severity ranks how much a violation harms the model.
type Severity string

const (
	High   Severity = domain.SeverityHigh
	Medium Severity = domain.SeverityMedium
	Low    Severity = domain.SeverityLow
)

// defaultLevel maps a severity to the level its diagnosis is logged at.
func (s Severity) defaultLevel() zapcore.Level {
	switch s {
	case Medium:
		return zapcore.WarnLevel
	case Low:
		return zapcore.InfoLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Rule is the contract every rule satisfies. The ID is stable across
// releases: it is the key used to disable the rule in configuration.
type Rule interface {
	ID() string
	Category() Category
	Severity() Severity
	Hypothesis() string
	HowToFix() string
	Natures() []uml.Nature
	AppliesTo(n uml.Nature) bool
	Level() zapcore.Level

	// LogDiagnosis logs a summary line for the rule followed by one line per
	// issue it collected.
	LogDiagnosis(log *zap.Logger, verbose bool, issues *Issues)
}

// SimpleRule checks one object at a time.
type SimpleRule[T uml.Object] interface {
	Rule
	Validate(obj T, issues *Issues)
}

// CrossRule checks relationships across the whole scoped collection.
type CrossRule[T uml.Object] interface {
	Rule
	ValidateAll(scoped []T, issues *Issues)

	// ObjectsToTestAgainst is the unscoped reference collection, so that
	// objects in scope can be compared with objects outside it.
	ObjectsToTestAgainst() []T
}
