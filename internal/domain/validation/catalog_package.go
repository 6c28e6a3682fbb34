package validation

import (
	"github.com/openkraft/cleanuml/internal/domain/uml"
)

var packageTags = map[uml.Nature][]string{
	uml.CIM:      {"nsuri", "nsprefix"},
	uml.IEC61850: {"nsName", "nsVersion", "nsRevision", "nsRelease", "nsUri", "nsPrefix", "tissues"},
}

func newPackageValidator(ctx ruleContext) KindValidator {
	v := NewValidator(uml.KindPackage, "packages", ctx.model.Packages(), ctx.cfg, ctx.issues, ctx.log)
	return register(v, packageRules(ctx), packageCrossRules(ctx))
}

func packageRules(ctx ruleContext) []SimpleRule[*uml.Package] {
	return []SimpleRule[*uml.Package]{
		UnallowedStereotype[*uml.Package](
			Define("PackagesWithUnallowedStereotype",
				"packages with unallowed stereotype",
				"remove the stereotype or ask for it to be allowed",
				WithCategory(PermissiveTool), WithSeverity(Medium)),
			allowedFor(nil, []string{"nsPackage"})),

		UnallowedTagNames[*uml.Package](
			Define("PackagesWithUnallowedTagNames",
				"packages with unallowed tag names",
				"remove or rename the tag",
				WithCategory(PermissiveTool), WithSeverity(Low)),
			packageTags),

		MissingDoc[*uml.Package](
			Define("PackagesMissingDoc",
				"normative packages without description",
				"describe the package",
				WithCategory(DocumentationRule), WithSeverity(Medium))),

		BadDocStart[*uml.Package](
			Define("PackagesWithBadDocStart",
				"packages with description starting with lower case",
				"start the description with an upper-case letter",
				WithCategory(Formatting), WithSeverity(Low))),

		BadDocEnd[*uml.Package](
			Define("PackagesWithBadDocEnd",
				"packages with description not ending with a period",
				"end the description with '.'",
				WithCategory(Formatting), WithSeverity(Low))),

		BadCharacterInName[*uml.Package](
			Define("PackagesWithBadCharacterInName",
				"packages with invalid characters in name",
				"use only letters, digits, '_' and '-' in package names",
				WithCategory(NamingRule)),
			StrictUnderscoreDash),

		NewCheck(
			Define("PackagesWithLeadingLowerCase",
				"packages with name starting with lower case",
				"start the package name with an upper-case letter",
				WithCategory(NamingRule), WithSeverity(Low)),
			func(p *uml.Package) (string, bool) {
				return "", startsWithLower(p.Name())
			}),

		NewCheck(
			Define("PackagesEmpty",
				"empty packages",
				"remove the package or add content to it",
				WithCategory(LegacyTool), WithSeverity(Low)),
			func(p *uml.Package) (string, bool) {
				return "", p.IsEmpty()
			}),

		NewCheck(
			Define("PackagesMissingVersionClass",
				"version packages without version class",
				"add the <Package>Version class holding the version attributes",
				WithSeverity(Medium)),
			func(p *uml.Package) (string, bool) {
				if !ctx.cfg.IsVersionPackage(p.Nature(), p.Name()) {
					return "", false
				}
				want := p.Name() + "Version"
				return "expected class " + want, p.Class(want) == nil
			}),
	}
}

func packageCrossRules(ctx ruleContext) []CrossRule[*uml.Package] {
	return []CrossRule[*uml.Package]{
		DuplicateNames(
			Define("PackagesWithSameName",
				"sibling packages with the same name",
				"rename or merge the packages"),
			ctx.model.Packages(),
			func(p *uml.Package) string { return p.QualifiedName() }),
	}
}
