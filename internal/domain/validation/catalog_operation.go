package validation

import (
	"fmt"

	"github.com/openkraft/cleanuml/internal/domain/uml"
)

func newOperationValidator(ctx ruleContext) KindValidator {
	v := NewValidator(uml.KindOperation, "operations", ctx.model.Operations(), ctx.cfg, ctx.issues, ctx.log)
	return register(v, operationRules(), operationCrossRules(ctx))
}

func parameters(o *uml.Operation) []uml.Object {
	out := make([]uml.Object, 0, len(o.Parameters()))
	for _, p := range o.Parameters() {
		if p.Direction() != uml.Return {
			out = append(out, p)
		}
	}
	return out
}

func operationRules() []SimpleRule[*uml.Operation] {
	return []SimpleRule[*uml.Operation]{
		UnallowedStereotype[*uml.Operation](
			Define("OperationsWithUnallowedStereotype",
				"operations with unallowed stereotype",
				"remove the stereotype or ask for it to be allowed",
				WithCategory(PermissiveTool), WithSeverity(Medium)),
			allowedFor(nil, nil)),

		MissingDoc[*uml.Operation](
			Define("OperationsMissingDoc",
				"normative operations without description",
				"describe the operation",
				WithCategory(DocumentationRule), WithSeverity(Medium))),

		BadDocEnd[*uml.Operation](
			Define("OperationsWithBadDocEnd",
				"operations with description not ending with a period",
				"end the description with '.'",
				WithCategory(Formatting), WithSeverity(Low))),

		BadCharacterInName[*uml.Operation](
			Define("OperationsWithBadCharacterInName",
				"operations with invalid characters in name",
				"use only letters and digits in operation names",
				WithCategory(NamingRule)),
			Strict),

		NewCheck(
			Define("OperationsWithLeadingUpperCase",
				"operations with name starting with upper case",
				"start the operation name with a lower-case letter",
				WithCategory(NamingRule), WithSeverity(Medium)),
			func(o *uml.Operation) (string, bool) {
				return "", startsWithUpper(o.Name())
			}),

		MissingDoc[*uml.Operation](
			Define("OperationParametersMissingDoc",
				"normative operation parameters without description",
				"describe the parameter",
				WithCategory(DocumentationRule), WithSeverity(Low)),
			WithSubObjects(parameters),
			SkipWhen(always[*uml.Operation])),

		BadCharacterInName[*uml.Operation](
			Define("OperationParametersWithBadCharacterInName",
				"operation parameters with invalid characters in name",
				"use only letters and digits in parameter names",
				WithCategory(NamingRule)),
			Strict,
			WithSubObjects(parameters),
			SkipWhen(always[*uml.Operation])),

		NewCheck(
			Define("OperationsWithMultipleReturnParameters",
				"operations with more than one return parameter",
				"keep a single return parameter"),
			func(o *uml.Operation) (string, bool) {
				n := 0
				for _, p := range o.Parameters() {
					if p.Direction() == uml.Return {
						n++
					}
				}
				return fmt.Sprintf("%d return parameters", n), n > 1
			}),
	}
}

func operationCrossRules(ctx ruleContext) []CrossRule[*uml.Operation] {
	return []CrossRule[*uml.Operation]{
		DuplicateNames(
			Define("OperationsWithSameName",
				"operations of one class with the same name",
				"rename the operations; overloading is not supported",
				WithSeverity(Medium)),
			ctx.model.Operations(),
			func(o *uml.Operation) string { return o.QualifiedName() }),
	}
}
