package validation

import (
	"strings"

	"github.com/openkraft/cleanuml/internal/domain/uml"
)

var classTags = map[uml.Nature][]string{
	uml.CIM:      {"GUIDBasedOn"},
	uml.IEC61850: {"rsName", "dsdName", "deprecated", "moveAfter"},
}

func newClassValidator(ctx ruleContext) KindValidator {
	v := NewValidator(uml.KindClass, "classes", ctx.model.Classes(), ctx.cfg, ctx.issues, ctx.log)
	return register(v, classRules(ctx), classCrossRules(ctx))
}

func classRules(ctx ruleContext) []SimpleRule[*uml.Class] {
	return []SimpleRule[*uml.Class]{
		UnallowedStereotype[*uml.Class](
			Define("ClassesWithUnallowedStereotype",
				"classes with unallowed stereotype",
				"remove the stereotype or ask for it to be allowed",
				WithCategory(PermissiveTool), WithSeverity(Medium)),
			allowedFor(
				[]string{uml.StereoEnumeration, uml.StereoPrimitive, uml.StereoCIMDatatype, uml.StereoDatatype, uml.StereoCompound},
				[]string{uml.StereoEnumeration, uml.StereoEnum, uml.StereoPrimitive, "basic", "cdc", "lnclass", "admin"})),

		UnallowedTagNames[*uml.Class](
			Define("ClassesWithUnallowedTagNames",
				"classes with unallowed tag names",
				"remove or rename the tag",
				WithCategory(PermissiveTool), WithSeverity(Low)),
			classTags),

		MissingDoc[*uml.Class](
			Define("ClassesMissingDoc",
				"normative classes without description",
				"describe the class",
				WithCategory(DocumentationRule))),

		BadDocStart[*uml.Class](
			Define("ClassesWithBadDocStart",
				"classes with description starting with lower case",
				"start the description with an upper-case letter",
				WithCategory(Formatting), WithSeverity(Low))),

		BadDocEnd[*uml.Class](
			Define("ClassesWithBadDocEnd",
				"classes with description not ending with a period",
				"end the description with '.'",
				WithCategory(Formatting), WithSeverity(Low))),

		BadCharacterInName[*uml.Class](
			Define("ClassesWithBadCharacterInName",
				"classes with invalid characters in name",
				"use only letters and digits in class names",
				WithCategory(NamingRule)),
			Strict),

		NewCheck(
			Define("ClassesWithLeadingLowerCase",
				"classes with name starting with lower case",
				"start the class name with an upper-case letter",
				WithCategory(NamingRule), WithSeverity(Medium)),
			func(c *uml.Class) (string, bool) {
				return "", startsWithLower(c.Name())
			}),

		NewCheck(
			Define("ClassesWithSelfInheritance",
				"classes inheriting from themselves",
				"break the inheritance cycle"),
			func(c *uml.Class) (string, bool) {
				return "cycle through " + qnames(c.Superclasses()), c.InheritsFromItself()
			}),

		NewCheck(
			Define("ClassesWithMultipleSuperclasses",
				"classes with multiple superclasses",
				"keep a single superclass"),
			func(c *uml.Class) (string, bool) {
				return qnames(c.Superclasses()), len(c.SuperclassNames()) > 1
			}),

		NewCheck(
			Define("ClassesWithUnresolvedSuperclass",
				"classes with superclass missing from the model",
				"add the superclass to the model or fix its name",
				WithCategory(LegacyTool)),
			func(c *uml.Class) (string, bool) {
				var missing []string
				for _, n := range c.SuperclassNames() {
					if ctx.model.FindClass(n) == nil {
						missing = append(missing, n)
					}
				}
				return strings.Join(missing, ", "), len(missing) > 0
			}),

		NewCheck(
			Define("EnumerationsWithoutLiterals",
				"enumerations without literals",
				"add the literals or change the class into a plain class",
				WithSeverity(Medium)),
			func(c *uml.Class) (string, bool) {
				return "", c.IsEnumeration() && len(c.Attributes()) == 0
			}),

		NewCheck(
			Define("PrimitivesWithAttributes",
				"primitive classes with attributes",
				"remove the attributes or the primitive stereotype",
				WithSeverity(Medium)),
			func(c *uml.Class) (string, bool) {
				return attributeNames(c.Attributes()), c.IsPrimitive() && len(c.Attributes()) > 0
			}),

		NewInspection(
			Define("ClassesWithShadowedAttributes",
				"classes with attributes hiding inherited ones",
				"rename the attribute or remove it from one of the classes"),
			func(c *uml.Class, report Reporter) {
				inherited := make(map[string]*uml.Attribute)
				for _, a := range c.InheritedAttributes() {
					if _, ok := inherited[a.Name()]; !ok {
						inherited[a.Name()] = a
					}
				}
				for _, a := range c.Attributes() {
					if h, ok := inherited[a.Name()]; ok {
						report(c, WithEvidence(a.Name()+" hides "+h.QualifiedName()))
					}
				}
			}),

		NewInspection(
			Define("ClassesWithDuplicateAttributeNames",
				"classes with several attributes of the same name",
				"rename or remove the duplicate attributes"),
			func(c *uml.Class, report Reporter) {
				count := make(map[string]int)
				var order []string
				for _, a := range c.Attributes() {
					if count[a.Name()] == 0 {
						order = append(order, a.Name())
					}
					count[a.Name()]++
				}
				for _, n := range order {
					if count[n] > 1 {
						report(c, WithEvidence(n))
					}
				}
			}),
	}
}

func classCrossRules(ctx ruleContext) []CrossRule[*uml.Class] {
	return []CrossRule[*uml.Class]{
		DuplicateNames(
			Define("ClassesWithSameName",
				"classes with the same name",
				"rename the classes so that names are unique in the model"),
			ctx.model.Classes(),
			func(c *uml.Class) string { return c.Name() }),
	}
}

func attributeNames(attrs []*uml.Attribute) string {
	names := make([]string, 0, len(attrs))
	for _, a := range attrs {
		names = append(names, a.Name())
	}
	return strings.Join(names, ", ")
}
