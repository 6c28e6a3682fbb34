package validation

import (
	"github.com/openkraft/cleanuml/internal/domain/uml"
)

// diagramKinds are the diagram types meaningful in an information model.
var diagramKinds = []string{"Class", "Package", "Logical", "Object"}

func newDiagramValidator(ctx ruleContext) KindValidator {
	v := NewValidator(uml.KindDiagram, "diagrams", ctx.model.Diagrams(), ctx.cfg, ctx.issues, ctx.log)
	return register(v, diagramRules(), diagramCrossRules(ctx))
}

func diagramRules() []SimpleRule[*uml.Diagram] {
	return []SimpleRule[*uml.Diagram]{
		UnallowedStereotype[*uml.Diagram](
			Define("DiagramsWithUnallowedStereotype",
				"diagrams with unallowed stereotype",
				"remove the stereotype",
				WithCategory(PermissiveTool), WithSeverity(Low)),
			allowedFor(nil, nil)),

		BadDocStart[*uml.Diagram](
			Define("DiagramsWithBadDocStart",
				"diagrams with note starting with lower case",
				"start the note with an upper-case letter",
				WithCategory(Formatting), WithSeverity(Low))),

		BadDocEnd[*uml.Diagram](
			Define("DiagramsWithBadDocEnd",
				"diagrams with note not ending with a period",
				"end the note with '.'",
				WithCategory(Formatting), WithSeverity(Low))),

		BadCharacterInName[*uml.Diagram](
			Define("DiagramsWithBadCharacterInName",
				"diagrams with invalid characters in name",
				"use only letters, digits, '_', '-' and blanks in diagram names",
				WithCategory(NamingRule), WithSeverity(Medium)),
			StrictSpaces),

		NewCheck(
			Define("DiagramsEmpty",
				"empty diagrams",
				"remove the diagram or show elements on it",
				WithCategory(LegacyTool), WithSeverity(Low)),
			func(d *uml.Diagram) (string, bool) {
				return "", d.ElementCount() == 0
			}),

		NewCheck(
			Define("DiagramsOfUnexpectedType",
				"diagrams of a type unused in information models",
				"use class or package diagrams",
				WithCategory(LegacyTool), WithSeverity(Low)),
			func(d *uml.Diagram) (string, bool) {
				if d.DiagramKind() == "" {
					return "", false
				}
				return d.DiagramKind(), !containsFold(diagramKinds, d.DiagramKind())
			}),
	}
}

func diagramCrossRules(ctx ruleContext) []CrossRule[*uml.Diagram] {
	return []CrossRule[*uml.Diagram]{
		DuplicateNames(
			Define("DiagramsWithSameName",
				"diagrams of one container with the same name",
				"rename the diagrams",
				WithSeverity(Medium)),
			ctx.model.Diagrams(),
			func(d *uml.Diagram) string { return d.QualifiedName() }),
	}
}
