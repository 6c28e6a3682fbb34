package validation

import (
	"strings"

	"github.com/fatih/camelcase"

	"github.com/openkraft/cleanuml/internal/domain/uml"
)

var attributeTags = map[uml.Nature][]string{
	uml.CIM:      {"moveAfter"},
	uml.IEC61850: {"moveAfter", presCondTag, "presCondArgs", "fc", "dchg", "qchg", "dupd", "trgOp"},
}

const presCondTag = "presCond"

// presenceConditions are the IEC61850 presence condition names; some take an
// argument in parentheses, such as "AtLeastOne(1)".
var presenceConditions = []string{
	"M", "O", "F", "na", "Mmulti", "Omulti", "MF", "OF", "MO", "OM",
	"AtLeastOne", "AllOrNonePerGroup", "AllOnlyOneGroup", "AllAtLeastOneGroup",
	"MOcond", "MFcond", "OFcond", "MOrootLD", "MOln0", "MOsbo", "MOenhanced",
}

func newAttributeValidator(ctx ruleContext) KindValidator {
	v := NewValidator(uml.KindAttribute, "attributes", ctx.model.Attributes(), ctx.cfg, ctx.issues, ctx.log)
	return register(v, attributeRules(), nil)
}

func attributeRules() []SimpleRule[*uml.Attribute] {
	return []SimpleRule[*uml.Attribute]{
		UnallowedStereotype[*uml.Attribute](
			Define("AttributesWithUnallowedStereotype",
				"attributes with unallowed stereotype",
				"remove the stereotype or ask for it to be allowed",
				WithCategory(PermissiveTool), WithSeverity(Medium)),
			allowedFor(nil, []string{uml.StereoEnum})),

		UnallowedTagNames[*uml.Attribute](
			Define("AttributesWithUnallowedTagNames",
				"attributes with unallowed tag names",
				"remove or rename the tag",
				WithCategory(PermissiveTool), WithSeverity(Low)),
			attributeTags),

		MissingDoc[*uml.Attribute](
			Define("AttributesMissingDoc",
				"normative attributes and literals without description",
				"describe the attribute",
				WithCategory(DocumentationRule), WithSeverity(Medium))),

		BadDocStart[*uml.Attribute](
			Define("AttributesWithBadDocStart",
				"attributes with description starting with lower case",
				"start the description with an upper-case letter",
				WithCategory(Formatting), WithSeverity(Low))),

		BadDocEnd[*uml.Attribute](
			Define("AttributesWithBadDocEnd",
				"attributes with description not ending with a period",
				"end the description with '.'",
				WithCategory(Formatting), WithSeverity(Low))),

		BadCharacterInName[*uml.Attribute](
			Define("AttributesWithBadCharacterInName",
				"attributes with invalid characters in name",
				"use only letters and digits in attribute names",
				WithCategory(NamingRule)),
			Strict,
			SkipWhen(func(a *uml.Attribute) bool {
				return a.IsLiteral() || a.Visibility() == uml.Private
			})),

		BadCharacterInName[*uml.Attribute](
			Define("EnumLiteralsWithBadCharacterInName",
				"enumeration literals with invalid characters in name",
				"use only letters, digits and '_' in literal names",
				WithCategory(NamingRule)),
			Literal,
			SkipWhen(func(a *uml.Attribute) bool { return !a.IsLiteral() })),

		NewCheck(
			Define("AttributesWithLeadingUpperCase",
				"attributes with name starting with upper case",
				"start the attribute name with a lower-case letter",
				WithCategory(NamingRule), WithSeverity(Medium)),
			func(a *uml.Attribute) (string, bool) {
				if a.IsLiteral() || a.Visibility() == uml.Private || (a.IsStatic() && a.IsConst()) {
					return "", false
				}
				return "", startsWithUpper(a.Name())
			}),

		NewCheck(
			Define("AttributesRepeatingClassName",
				"attributes whose name repeats the class name",
				"drop the class name from the attribute name",
				WithCategory(NamingRule), WithSeverity(Low)),
			func(a *uml.Attribute) (string, bool) {
				if a.IsLiteral() || a.Class() == nil {
					return "", false
				}
				prefix, ok := repeatsName(a.Name(), a.Class().Name())
				return prefix, ok
			}),

		NewCheck(
			Define("AttributesWithoutType",
				"attributes without type",
				"set the attribute type",
				WithCategory(LegacyTool)),
			func(a *uml.Attribute) (string, bool) {
				return "", !a.IsLiteral() && strings.TrimSpace(a.TypeName()) == ""
			}),

		NewCheck(
			Define("AttributesWithUnresolvedType",
				"attributes with type missing from the model",
				"add the type to the model or fix the type name",
				WithCategory(LegacyTool)),
			func(a *uml.Attribute) (string, bool) {
				if a.IsLiteral() || a.TypeName() == "" {
					return "", false
				}
				return a.TypeName(), a.Type() == nil
			}),

		NewCheck(
			Define("AttributesTypedByInformativeClass",
				"normative attributes typed by an informative class",
				"use a normative type or make the attribute informative",
				WithSeverity(Medium)),
			func(a *uml.Attribute) (string, bool) {
				t := a.Type()
				if a.IsLiteral() || t == nil || a.IsInformative() {
					return "", false
				}
				return t.QualifiedName(), t.IsInformative()
			}),

		NewCheck(
			Define("AttributesWithInvalidMultiplicity",
				"attributes with invalid multiplicity",
				"use bounds such as 0..1, 1..1 or 0..*"),
			func(a *uml.Attribute) (string, bool) {
				m := a.Multiplicity()
				return m.Lower + ".." + m.Upper, !m.IsValid()
			}),

		NewCheck(
			Define("AttributesStaticButNotConst",
				"static attributes that are not constant",
				"make the attribute const or non-static",
				WithSeverity(Medium)),
			func(a *uml.Attribute) (string, bool) {
				return "", !a.IsLiteral() && a.IsStatic() && !a.IsConst()
			}),

		NewCheck(
			Define("AttributesConstWithoutInitValue",
				"constant attributes without initial value",
				"set the initial value of the constant",
				WithSeverity(Medium)),
			func(a *uml.Attribute) (string, bool) {
				return "", a.IsConst() && strings.TrimSpace(a.InitValue()) == ""
			}),

		NewCheck(
			Define("AttributesWithUnknownPresenceCondition",
				"attributes with unknown presence condition",
				"use one of the presence conditions of IEC 61850-7-3",
				ForNatures(uml.IEC61850), WithSeverity(Medium)),
			func(a *uml.Attribute) (string, bool) {
				for _, t := range a.Tags() {
					if t.Name == presCondTag && !isPresenceCondition(t.Value) {
						return t.Value, true
					}
				}
				return "", false
			}),
	}
}

// repeatsName reports whether the leading camel-case words of name spell
// owner, returning those words.
func repeatsName(name, owner string) (string, bool) {
	words := camelcase.Split(name)
	for n := 1; n < len(words); n++ {
		prefix := strings.Join(words[:n], "")
		if strings.EqualFold(prefix, owner) {
			return prefix, true
		}
		if len(prefix) >= len(owner) {
			break
		}
	}
	return "", false
}

func isPresenceCondition(value string) bool {
	v := strings.TrimSpace(value)
	if i := strings.IndexByte(v, '('); i > 0 && strings.HasSuffix(v, ")") {
		v = v[:i]
	}
	for _, p := range presenceConditions {
		if v == p {
			return true
		}
	}
	return false
}
