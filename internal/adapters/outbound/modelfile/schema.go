package modelfile

import (
	"github.com/openkraft/cleanuml/internal/domain/uml"
)

type modelFile struct {
	Packages []packageFile `yaml:"packages"`
}

// elementFile holds the fields every model object accepts.
type elementFile struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Alias       string    `yaml:"alias"`
	Doc         string    `yaml:"doc"`
	Stereotypes []string  `yaml:"stereotypes"`
	Tags        []tagFile `yaml:"tags"`
	Visibility  string    `yaml:"visibility"`
	Nature      string    `yaml:"nature"`
	Owner       string    `yaml:"owner"`
}

type tagFile struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type packageFile struct {
	elementFile  `yaml:",inline"`
	Packages     []packageFile     `yaml:"packages"`
	Classes      []classFile       `yaml:"classes"`
	Associations []associationFile `yaml:"associations"`
	Dependencies []dependencyFile  `yaml:"dependencies"`
	Diagrams     []diagramFile     `yaml:"diagrams"`
}

type classFile struct {
	elementFile  `yaml:",inline"`
	Abstract     bool            `yaml:"abstract"`
	Superclasses []string        `yaml:"superclasses"`
	Attributes   []attributeFile `yaml:"attributes"`
	// Literals is an alias of Attributes that reads better for enumerations.
	Literals   []attributeFile `yaml:"literals"`
	Operations []operationFile `yaml:"operations"`
	Diagrams   []diagramFile   `yaml:"diagrams"`
}

type attributeFile struct {
	elementFile  `yaml:",inline"`
	Type         string `yaml:"type"`
	Multiplicity string `yaml:"multiplicity"`
	Static       bool   `yaml:"static"`
	Const        bool   `yaml:"const"`
	Init         string `yaml:"init"`
}

type operationFile struct {
	elementFile `yaml:",inline"`
	Return      string          `yaml:"return"`
	Static      bool            `yaml:"static"`
	Abstract    bool            `yaml:"abstract"`
	Parameters  []parameterFile `yaml:"parameters"`
}

type parameterFile struct {
	elementFile `yaml:",inline"`
	Type        string `yaml:"type"`
	Direction   string `yaml:"direction"`
}

type associationFile struct {
	elementFile `yaml:",inline"`
	Source      endFile `yaml:"source"`
	Target      endFile `yaml:"target"`
}

// endFile names the role with Name, or with Role for readability.
type endFile struct {
	elementFile  `yaml:",inline"`
	Role         string `yaml:"role"`
	Type         string `yaml:"type"`
	Multiplicity string `yaml:"multiplicity"`
	Navigable    bool   `yaml:"navigable"`
	Aggregation  string `yaml:"aggregation"`
}

type dependencyFile struct {
	elementFile `yaml:",inline"`
	Source      string `yaml:"source"`
	Target      string `yaml:"target"`
}

type diagramFile struct {
	elementFile `yaml:",inline"`
	Kind        string `yaml:"kind"`
	Elements    int    `yaml:"elements"`
}

// spec converts the shared fields, rejecting unknown natures, owners and
// visibilities.
func (e elementFile) spec() (uml.Spec, error) {
	s := uml.Spec{
		ID:          e.ID,
		Name:        e.Name,
		Alias:       e.Alias,
		Doc:         e.Doc,
		Stereotypes: e.Stereotypes,
	}
	for _, t := range e.Tags {
		s.Tags = append(s.Tags, uml.Tag{Name: t.Name, Value: t.Value})
	}

	var err error
	if s.Visibility, err = parseVisibility(e.Visibility); err != nil {
		return uml.Spec{}, err
	}
	if e.Nature != "" {
		if s.Nature, err = uml.ParseNature(e.Nature); err != nil {
			return uml.Spec{}, err
		}
	}
	if e.Owner != "" {
		if s.Owner, err = uml.ParseOwningGroup(e.Owner); err != nil {
			return uml.Spec{}, err
		}
	}
	return s, nil
}

func (e endFile) endSpec() (uml.EndSpec, error) {
	spec, err := e.spec()
	if err != nil {
		return uml.EndSpec{}, err
	}
	if spec.Name == "" {
		spec.Name = e.Role
	}
	agg, err := parseAggregation(e.Aggregation)
	if err != nil {
		return uml.EndSpec{}, err
	}
	return uml.EndSpec{
		Spec:         spec,
		Type:         e.Type,
		Multiplicity: uml.ParseMultiplicity(e.Multiplicity),
		Navigable:    e.Navigable,
		Aggregation:  agg,
	}, nil
}
