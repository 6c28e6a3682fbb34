package validation_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/openkraft/cleanuml/internal/domain"
	"github.com/openkraft/cleanuml/internal/domain/uml"
	"github.com/openkraft/cleanuml/internal/domain/validation"
)

// fixture is a small model with one package per nature.
type fixture struct {
	model *uml.Model
	cim   *uml.Package
	iec   *uml.Package
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	m := uml.NewModel("/models/grid.eap")
	cim := m.AddPackage(nil, uml.Spec{Name: "TC57CIM", Nature: uml.CIM, Owner: uml.WG13, Doc: "CIM root."})
	iec := m.AddPackage(nil, uml.Spec{Name: "IEC61850", Nature: uml.IEC61850, Owner: uml.WG10, Doc: "IEC root."})
	return fixture{model: m, cim: cim, iec: iec}
}

func (f fixture) class(pkg *uml.Package, name, doc string, stereotypes ...string) *uml.Class {
	return f.model.AddClass(pkg, uml.ClassSpec{Spec: uml.Spec{Name: name, Doc: doc, Stereotypes: stereotypes}})
}

func observedLogger(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}

func defaultConfig() domain.Config { return domain.DefaultConfig() }

func testRule(id string) validation.Definition {
	return validation.Define(id, "objects under test", "fix them")
}

func issueRuleIDs(issues *validation.Issues) []string {
	var ids []string
	for _, i := range issues.All() {
		ids = append(ids, i.Rule().ID())
	}
	return ids
}
