package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/openkraft/cleanuml/internal/domain"
	"github.com/openkraft/cleanuml/internal/domain/uml"
)

// ruleContext carries what rule constructors may depend on.
type ruleContext struct {
	model  *uml.Model
	cfg    domain.Config
	issues *Issues
	log    *zap.Logger
}

// kindTable wires one validator per validated kind, in validation order.
// Adding a rule means appending it to the rule list of its kind.
var kindTable = []struct {
	kind  uml.Kind
	build func(ctx ruleContext) KindValidator
}{
	{uml.KindPackage, newPackageValidator},
	{uml.KindClass, newClassValidator},
	{uml.KindAttribute, newAttributeValidator},
	{uml.KindOperation, newOperationValidator},
	{uml.KindAssociation, newAssociationValidator},
	{uml.KindDependency, newDependencyValidator},
	{uml.KindDiagram, newDiagramValidator},
}

func register[T uml.Object](v *Validator[T], simple []SimpleRule[T], cross []CrossRule[T]) *Validator[T] {
	for _, r := range simple {
		v.AddSimpleRule(r)
	}
	for _, r := range cross {
		v.AddCrossRule(r)
	}
	return v
}

// Stereotypes accepted on any kind.
var commonStereotypes = []string{uml.StereoInformative, uml.StereoDeprecated}

func allowedFor(cim, iec []string) map[uml.Nature][]string {
	return map[uml.Nature][]string{
		uml.CIM:      append(append([]string(nil), commonStereotypes...), cim...),
		uml.IEC61850: append(append([]string(nil), commonStereotypes...), iec...),
	}
}

func startsWithUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func startsWithLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLower(r)
}

func qnames[T uml.Object](objs []T) string {
	names := make([]string, 0, len(objs))
	for _, o := range objs {
		names = append(names, o.QualifiedName())
	}
	return strings.Join(names, ", ")
}

func always[T any](T) bool { return true }
