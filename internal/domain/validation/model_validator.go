package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/openkraft/cleanuml/internal/domain"
	"github.com/openkraft/cleanuml/internal/domain/uml"
)

// ReportPrefix starts the file name of every problems report.
const ReportPrefix = "problemsReport-"

// modelExtensions are the model file types a report can be derived from.
var modelExtensions = []string{".eap", ".eapx", ".qea", ".qeax", ".xmi", ".xml", ".yaml", ".yml"}

// ModelValidator validates a whole model: one validator per kind, run in a
// fixed order, sharing one issue collection.
type ModelValidator struct {
	model      *uml.Model
	cfg        domain.Config
	issues     *Issues
	log        *zap.Logger
	validators []KindValidator
}

func NewModelValidator(model *uml.Model, cfg domain.Config, log *zap.Logger) *ModelValidator {
	if log == nil {
		log = zap.NewNop()
	}
	ctx := ruleContext{model: model, cfg: cfg, issues: NewIssues(), log: log}
	mv := &ModelValidator{model: model, cfg: cfg, issues: ctx.issues, log: log}
	for _, entry := range kindTable {
		mv.validators = append(mv.validators, entry.build(ctx))
	}
	return mv
}

// Validate runs every validator. Calling it twice records issues twice.
func (mv *ModelValidator) Validate() {
	for _, v := range mv.validators {
		v.Validate()
	}
	c := mv.issues.CountBySeverity()
	mv.log.Info("validation done",
		zap.Int("issues", mv.issues.Len()),
		zap.Int("high", c.High),
		zap.Int("medium", c.Medium),
		zap.Int("low", c.Low))
}

func (mv *ModelValidator) Issues() *Issues { return mv.issues }

func (mv *ModelValidator) Validators() []KindValidator {
	return append([]KindValidator(nil), mv.validators...)
}

// Runs summarizes every validator in validation order.
func (mv *ModelValidator) Runs() []domain.KindRun {
	out := make([]domain.KindRun, 0, len(mv.validators))
	for _, v := range mv.validators {
		out = append(out, v.Run())
	}
	return out
}

// RuleSummaries documents the whole catalog.
func (mv *ModelValidator) RuleSummaries() []domain.RuleInfo {
	var out []domain.RuleInfo
	for _, v := range mv.validators {
		out = append(out, v.RuleSummaries()...)
	}
	return out
}

// RuleSummariesFor documents the rules applying to nature n.
func (mv *ModelValidator) RuleSummariesFor(n uml.Nature) []domain.RuleInfo {
	var out []domain.RuleInfo
	for _, v := range mv.validators {
		out = append(out, v.RuleSummariesFor(n)...)
	}
	return out
}

func (mv *ModelValidator) KnownRuleIDs() []string {
	var ids []string
	for _, v := range mv.validators {
		ids = append(ids, v.RuleIDs()...)
	}
	return ids
}

// UnknownSkippedRules returns the configured rule IDs that name no rule.
func (mv *ModelValidator) UnknownSkippedRules() []string {
	known := make(map[string]bool)
	for _, id := range mv.KnownRuleIDs() {
		known[id] = true
	}
	var unknown []string
	for _, id := range mv.cfg.Skip.Rules {
		if !known[id] {
			unknown = append(unknown, id)
		}
	}
	return unknown
}

// SaveReport writes the CSV report next to the model file, or in dir when
// set, and returns its path. Nothing is written without issues. Failures are
// logged as warnings, with the report content at debug level, and yield "".
func (mv *ModelValidator) SaveReport(w domain.ReportWriter, dir string) string {
	if mv.issues.Len() == 0 {
		return ""
	}
	path, err := ReportPath(mv.model.FilePath(), dir)
	if err != nil {
		mv.log.Warn("report not saved", zap.Error(err))
		return ""
	}
	content := mv.issues.AsCSV()
	if err := w.Write(path, []byte(content)); err != nil {
		mv.log.Warn("report not saved", zap.String("path", path), zap.Error(err))
		mv.log.Debug("report content\n" + content)
		return ""
	}
	mv.log.Info("report saved", zap.String("path", path), zap.Int("issues", mv.issues.Len()))
	return path
}

// ReportPath derives "problemsReport-<model base name>.csv" from the model
// file path. dir, when set, replaces the directory of the model file.
func ReportPath(modelFile, dir string) (string, error) {
	if strings.TrimSpace(modelFile) == "" {
		return "", fmt.Errorf("model file path unknown")
	}
	ext := strings.ToLower(filepath.Ext(modelFile))
	if !containsFold(modelExtensions, ext) {
		return "", fmt.Errorf("unexpected model file extension %q in %s", ext, modelFile)
	}
	base := strings.TrimSuffix(filepath.Base(modelFile), filepath.Ext(modelFile))
	if dir == "" {
		dir = filepath.Dir(modelFile)
	}
	return filepath.Join(dir, ReportPrefix+base+".csv"), nil
}
