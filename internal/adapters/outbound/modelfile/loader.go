// Package modelfile reads UML models described in YAML.
package modelfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/openkraft/cleanuml/internal/domain/uml"
)

// YAMLLoader implements domain.ModelLoader.
type YAMLLoader struct{}

func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the model file at path and resolves its references. References
// that match nothing stay unresolved for the rules to report.
func (l *YAMLLoader) Load(path string) (*uml.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model: %w", err)
	}
	return Parse(path, data)
}

// Parse builds a model from YAML content; path is recorded as its source.
func Parse(path string, data []byte) (*uml.Model, error) {
	var f modelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	if len(f.Packages) == 0 {
		return nil, fmt.Errorf("%s: model has no packages", filepath.Base(path))
	}

	b := builder{model: uml.NewModel(path)}
	for _, p := range f.Packages {
		if err := b.addPackage(nil, p); err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
	}
	b.model.Resolve()
	return b.model, nil
}

type builder struct {
	model *uml.Model
}

func (b *builder) addPackage(parent *uml.Package, pf packageFile) error {
	spec, err := pf.spec()
	if err != nil {
		return fmt.Errorf("package %q: %w", pf.Name, err)
	}
	p := b.model.AddPackage(parent, spec)

	for _, sub := range pf.Packages {
		if err := b.addPackage(p, sub); err != nil {
			return err
		}
	}
	for _, cf := range pf.Classes {
		if err := b.addClass(p, cf); err != nil {
			return err
		}
	}
	for _, af := range pf.Associations {
		if err := b.addAssociation(p, af); err != nil {
			return err
		}
	}
	for _, df := range pf.Dependencies {
		spec, err := df.spec()
		if err != nil {
			return fmt.Errorf("dependency %s -> %s: %w", df.Source, df.Target, err)
		}
		b.model.AddDependency(p, uml.DependencySpec{Spec: spec, Source: df.Source, Target: df.Target})
	}
	return b.addDiagrams(p, pf.Diagrams)
}

func (b *builder) addClass(p *uml.Package, cf classFile) error {
	spec, err := cf.spec()
	if err != nil {
		return fmt.Errorf("class %q: %w", cf.Name, err)
	}
	c := b.model.AddClass(p, uml.ClassSpec{Spec: spec, Abstract: cf.Abstract, Superclasses: cf.Superclasses})

	for _, af := range append(append([]attributeFile(nil), cf.Attributes...), cf.Literals...) {
		spec, err := af.spec()
		if err != nil {
			return fmt.Errorf("attribute %s.%s: %w", cf.Name, af.Name, err)
		}
		b.model.AddAttribute(c, uml.AttributeSpec{
			Spec:         spec,
			Type:         af.Type,
			Multiplicity: uml.ParseMultiplicity(af.Multiplicity),
			Static:       af.Static,
			Const:        af.Const,
			InitValue:    af.Init,
		})
	}

	for _, of := range cf.Operations {
		spec, err := of.spec()
		if err != nil {
			return fmt.Errorf("operation %s.%s: %w", cf.Name, of.Name, err)
		}
		op := b.model.AddOperation(c, uml.OperationSpec{Spec: spec, ReturnType: of.Return, Static: of.Static, Abstract: of.Abstract})
		for _, pf := range of.Parameters {
			spec, err := pf.spec()
			if err != nil {
				return fmt.Errorf("parameter %s.%s(%s): %w", cf.Name, of.Name, pf.Name, err)
			}
			dir, err := parseDirection(pf.Direction)
			if err != nil {
				return fmt.Errorf("parameter %s.%s(%s): %w", cf.Name, of.Name, pf.Name, err)
			}
			b.model.AddParameter(op, uml.ParameterSpec{Spec: spec, Type: pf.Type, Direction: dir})
		}
	}
	return b.addDiagrams(c, cf.Diagrams)
}

func (b *builder) addAssociation(p *uml.Package, af associationFile) error {
	spec, err := af.spec()
	if err != nil {
		return fmt.Errorf("association %q: %w", af.Name, err)
	}
	src, err := af.Source.endSpec()
	if err != nil {
		return fmt.Errorf("association %q source: %w", af.Name, err)
	}
	tgt, err := af.Target.endSpec()
	if err != nil {
		return fmt.Errorf("association %q target: %w", af.Name, err)
	}
	b.model.AddAssociation(p, uml.AssociationSpec{Spec: spec, Source: src, Target: tgt})
	return nil
}

func (b *builder) addDiagrams(container uml.Object, diagrams []diagramFile) error {
	for _, df := range diagrams {
		spec, err := df.spec()
		if err != nil {
			return fmt.Errorf("diagram %q: %w", df.Name, err)
		}
		b.model.AddDiagram(container, uml.DiagramSpec{Spec: spec, DiagramKind: df.Kind, ElementCount: df.Elements})
	}
	return nil
}

func parseVisibility(s string) (uml.Visibility, error) {
	switch v := uml.Visibility(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return "", nil
	case uml.Public, uml.Protected, uml.Private, uml.Internal:
		return v, nil
	default:
		return "", fmt.Errorf("unknown visibility %q", s)
	}
}

func parseDirection(s string) (uml.Direction, error) {
	switch d := uml.Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return uml.In, nil
	case uml.In, uml.Out, uml.InOut, uml.Return:
		return d, nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}

func parseAggregation(s string) (uml.Aggregation, error) {
	switch a := uml.Aggregation(strings.ToLower(strings.TrimSpace(s))); a {
	case "":
		return uml.AggregationNone, nil
	case uml.AggregationNone, uml.AggregationShared, uml.AggregationComposite:
		return a, nil
	default:
		return "", fmt.Errorf("unknown aggregation %q", s)
	}
}
