package validation

import (
	"github.com/openkraft/cleanuml/internal/domain/uml"
)

func newDependencyValidator(ctx ruleContext) KindValidator {
	v := NewValidator(uml.KindDependency, "dependencies", ctx.model.Dependencies(), ctx.cfg, ctx.issues, ctx.log)
	return register(v, dependencyRules(), dependencyCrossRules(ctx))
}

func dependencyRules() []SimpleRule[*uml.Dependency] {
	return []SimpleRule[*uml.Dependency]{
		UnallowedStereotype[*uml.Dependency](
			Define("DependenciesWithUnallowedStereotype",
				"dependencies with unallowed stereotype",
				"remove the stereotype or ask for it to be allowed",
				WithCategory(PermissiveTool), WithSeverity(Low)),
			allowedFor([]string{"import"}, []string{"import"})),

		NewCheck(
			Define("DependenciesWithUnresolvedEnd",
				"dependencies with an end missing from the model",
				"remove the dependency or fix the name of its end",
				WithCategory(LegacyTool)),
			func(d *uml.Dependency) (string, bool) {
				switch {
				case d.Source() == nil:
					return d.SourceName(), true
				case d.Target() == nil:
					return d.TargetName(), true
				}
				return "", false
			}),

		NewCheck(
			Define("DependenciesToSelf",
				"dependencies of an element on itself",
				"remove the dependency"),
			func(d *uml.Dependency) (string, bool) {
				return "", d.Source() != nil && d.Source() == d.Target()
			}),

		NewCheck(
			Define("DependenciesNormativeOnInformative",
				"normative elements depending on informative ones",
				"remove the dependency or make the source informative"),
			func(d *uml.Dependency) (string, bool) {
				s, t := d.Source(), d.Target()
				if s == nil || t == nil {
					return "", false
				}
				return t.QualifiedName(), !s.IsInformative() && t.IsInformative()
			}),

		NewCheck(
			Define("DependenciesFromCIMToIEC61850",
				"CIM elements depending on IEC61850 elements",
				"invert the dependency: IEC61850 may use CIM, not the reverse",
				WithSeverity(Medium)),
			func(d *uml.Dependency) (string, bool) {
				s, t := d.Source(), d.Target()
				if s == nil || t == nil {
					return "", false
				}
				return t.QualifiedName(), s.Nature() == uml.CIM && t.Nature() == uml.IEC61850
			}),
	}
}

func dependencyCrossRules(ctx ruleContext) []CrossRule[*uml.Dependency] {
	return []CrossRule[*uml.Dependency]{
		DuplicateNames(
			Define("DependenciesDuplicated",
				"duplicated dependencies",
				"remove the duplicate dependency",
				WithCategory(LegacyTool), WithSeverity(Low)),
			ctx.model.Dependencies(),
			func(d *uml.Dependency) string {
				if d.Source() == nil || d.Target() == nil {
					return ""
				}
				return d.Source().QualifiedName() + " -> " + d.Target().QualifiedName()
			}),
	}
}
