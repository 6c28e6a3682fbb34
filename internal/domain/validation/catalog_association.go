package validation

import (
	"sort"
	"strings"

	"github.com/openkraft/cleanuml/internal/domain/uml"
)

func newAssociationValidator(ctx ruleContext) KindValidator {
	v := NewValidator(uml.KindAssociation, "associations", ctx.model.Associations(), ctx.cfg, ctx.issues, ctx.log)
	return register(v, associationRules(), associationCrossRules(ctx))
}

// namedEnds returns the ends carrying a role name.
func namedEnds(a *uml.Association) []uml.Object {
	var out []uml.Object
	for _, e := range a.Ends() {
		if e.Name() != "" {
			out = append(out, e)
		}
	}
	return out
}

func associationRules() []SimpleRule[*uml.Association] {
	return []SimpleRule[*uml.Association]{
		UnallowedStereotype[*uml.Association](
			Define("AssociationsWithUnallowedStereotype",
				"associations with unallowed stereotype",
				"remove the stereotype or ask for it to be allowed",
				WithCategory(PermissiveTool), WithSeverity(Medium)),
			allowedFor(nil, nil)),

		MissingDoc[*uml.Association](
			Define("AssociationEndsMissingDoc",
				"normative association ends without description",
				"describe the role",
				WithCategory(DocumentationRule), WithSeverity(Medium)),
			WithSubObjects(namedEnds),
			SkipWhen(always[*uml.Association])),

		BadDocEnd[*uml.Association](
			Define("AssociationEndsWithBadDocEnd",
				"association ends with description not ending with a period",
				"end the description with '.'",
				WithCategory(Formatting), WithSeverity(Low)),
			WithSubObjects(namedEnds),
			SkipWhen(always[*uml.Association])),

		BadCharacterInName[*uml.Association](
			Define("AssociationEndsWithBadCharacterInName",
				"association ends with invalid characters in role name",
				"use only letters and digits in role names",
				WithCategory(NamingRule)),
			Strict,
			WithSubObjects(namedEnds),
			SkipWhen(always[*uml.Association])),

		NewInspection(
			Define("AssociationEndsWithLeadingLowerCase",
				"association ends with role name starting with lower case",
				"start the role name with an upper-case letter",
				WithCategory(NamingRule), WithSeverity(Medium), ForNatures(uml.CIM)),
			func(a *uml.Association, report Reporter) {
				for _, e := range a.Ends() {
					if startsWithLower(e.Name()) {
						report(e, WithEvidence(e.Name()))
					}
				}
			}),

		NewInspection(
			Define("AssociationEndsWithInvalidMultiplicity",
				"association ends with missing or invalid multiplicity",
				"use bounds such as 0..1, 1..1 or 0..*"),
			func(a *uml.Association, report Reporter) {
				for _, e := range a.Ends() {
					m := e.Multiplicity()
					switch {
					case m.IsUnspecified():
						report(e, WithEvidence("unspecified"))
					case !m.IsValid():
						report(e, WithEvidence(m.Lower+".."+m.Upper))
					}
				}
			}),

		NewInspection(
			Define("AssociationsWithUnresolvedEndType",
				"associations with end type missing from the model",
				"add the type to the model or fix the type name",
				WithCategory(LegacyTool)),
			func(a *uml.Association, report Reporter) {
				for _, e := range a.Ends() {
					if e.Type() == nil {
						report(a, WithEvidence(e.TypeName()))
					}
				}
			}),

		NewCheck(
			Define("AssociationsWithoutNavigableEnd",
				"associations without navigable end",
				"make at least one end navigable",
				WithCategory(LegacyTool), WithSeverity(Low)),
			func(a *uml.Association) (string, bool) {
				return "", !a.Source().IsNavigable() && !a.Target().IsNavigable()
			}),

		NewCheck(
			Define("AssociationsWithAggregation",
				"CIM associations with aggregation or composition",
				"use plain associations in CIM",
				ForNatures(uml.CIM), WithSeverity(Medium)),
			func(a *uml.Association) (string, bool) {
				var kinds []string
				for _, e := range a.Ends() {
					if e.Aggregation() != uml.AggregationNone {
						kinds = append(kinds, e.TypeLabel()+" "+string(e.Aggregation()))
					}
				}
				return strings.Join(kinds, ", "), len(kinds) > 0
			}),
	}
}

func associationCrossRules(ctx ruleContext) []CrossRule[*uml.Association] {
	return []CrossRule[*uml.Association]{
		DuplicateNames(
			Define("AssociationsDuplicated",
				"associations connecting the same roles twice",
				"remove the duplicate association",
				WithSeverity(Medium)),
			ctx.model.Associations(),
			associationKey),
	}
}

// associationKey ignores end order, so A-B and B-A collide.
func associationKey(a *uml.Association) string {
	ends := make([]string, 0, 2)
	for _, e := range a.Ends() {
		ends = append(ends, e.TypeLabel()+"."+e.Name())
	}
	sort.Strings(ends)
	return strings.Join(ends, "-")
}
