package uml

import "strings"

// ClassSpec describes a class to add to a model.
type ClassSpec struct {
	Spec
	Abstract bool
	// Superclasses are class names, simple or qualified, bound by Resolve.
	Superclasses []string
}

// AttributeSpec describes an attribute or enumeration literal.
type AttributeSpec struct {
	Spec
	Type         string
	Multiplicity Multiplicity
	Static       bool
	Const        bool
	InitValue    string
}

// OperationSpec describes an operation.
type OperationSpec struct {
	Spec
	ReturnType string
	Static     bool
	Abstract   bool
}

// ParameterSpec describes an operation parameter.
type ParameterSpec struct {
	Spec
	Type      string
	Direction Direction
}

// EndSpec describes one association end; Name is the role name.
type EndSpec struct {
	Spec
	Type         string
	Multiplicity Multiplicity
	Navigable    bool
	Aggregation  Aggregation
}

// AssociationSpec describes an association and its two ends.
type AssociationSpec struct {
	Spec
	Source EndSpec
	Target EndSpec
}

// DependencySpec describes a dependency by the qualified names of its ends.
type DependencySpec struct {
	Spec
	Source string
	Target string
}

// DiagramSpec describes a diagram.
type DiagramSpec struct {
	Spec
	DiagramKind  string
	ElementCount int
}

// Model owns every object of one UML model and exposes the full, unscoped
// collections per kind in creation order. Build it with the Add methods,
// then call Resolve once; afterwards it is treated as read-only.
type Model struct {
	path         string
	top          []*Package
	packages     []*Package
	classes      []*Class
	attributes   []*Attribute
	operations   []*Operation
	parameters   []*Parameter
	associations []*Association
	dependencies []*Dependency
	diagrams     []*Diagram
	byQName      map[string]Object
	bySimpleName map[string][]*Class
}

// NewModel creates an empty model read from path (may be empty).
func NewModel(path string) *Model {
	return &Model{
		path:         path,
		byQName:      make(map[string]Object),
		bySimpleName: make(map[string][]*Class),
	}
}

// FilePath is the source file of the model, empty when unknown.
func (m *Model) FilePath() string { return m.path }

func (m *Model) TopPackages() []*Package { return m.top }
func (m *Model) Packages() []*Package { return m.packages }
func (m *Model) Classes() []*Class { return m.classes }
func (m *Model) Attributes() []*Attribute { return m.attributes }
func (m *Model) Operations() []*Operation { return m.operations }
func (m *Model) Parameters() []*Parameter { return m.parameters }
func (m *Model) Associations() []*Association { return m.associations }
func (m *Model) Dependencies() []*Dependency { return m.dependencies }
func (m *Model) Diagrams() []*Diagram { return m.diagrams }

// AssociationEnds returns both ends of every association.
func (m *Model) AssociationEnds() []*AssociationEnd {
	out := make([]*AssociationEnd, 0, 2*len(m.associations))
	for _, a := range m.associations {
		out = append(out, a.source, a.target)
	}
	return out
}

// Lookup finds a package or class by qualified name ("Top::Sub::Class").
func (m *Model) Lookup(qname string) Object {
	return m.byQName[qname]
}

// FindClass finds a class by qualified name, or by simple name when that is
// unambiguous enough: the first declared class of that name wins.
func (m *Model) FindClass(name string) *Class {
	if strings.Contains(name, "::") {
		c, _ := m.byQName[name].(*Class)
		return c
	}
	if cs := m.bySimpleName[name]; len(cs) > 0 {
		return cs[0]
	}
	return nil
}

// AddPackage adds a package under parent, or a top-level package when parent
// is nil.
func (m *Model) AddPackage(parent *Package, s Spec) *Package {
	var container Object
	if parent != nil {
		container = parent
	}
	p := &Package{element: newElement(s, container), parent: parent}
	if parent == nil {
		m.top = append(m.top, p)
	} else {
		parent.packages = append(parent.packages, p)
	}
	m.packages = append(m.packages, p)
	m.byQName[p.QualifiedName()] = p
	return p
}

// AddClass adds a class to pkg.
func (m *Model) AddClass(pkg *Package, s ClassSpec) *Class {
	c := &Class{
		element:    newElement(s.Spec, pkg),
		pkg:        pkg,
		abstract:   s.Abstract,
		superNames: append([]string(nil), s.Superclasses...),
	}
	pkg.classes = append(pkg.classes, c)
	m.classes = append(m.classes, c)
	m.byQName[c.QualifiedName()] = c
	m.bySimpleName[c.name] = append(m.bySimpleName[c.name], c)
	return c
}

// AddAttribute adds an attribute (or literal, for enumerations) to c.
func (m *Model) AddAttribute(c *Class, s AttributeSpec) *Attribute {
	a := &Attribute{
		element:      newElement(s.Spec, c),
		class:        c,
		typeName:     s.Type,
		multiplicity: s.Multiplicity,
		static:       s.Static,
		constant:     s.Const,
		initValue:    s.InitValue,
	}
	c.attributes = append(c.attributes, a)
	m.attributes = append(m.attributes, a)
	return a
}

// AddOperation adds an operation to c.
func (m *Model) AddOperation(c *Class, s OperationSpec) *Operation {
	o := &Operation{
		element:    newElement(s.Spec, c),
		class:      c,
		returnType: s.ReturnType,
		static:     s.Static,
		abstract:   s.Abstract,
	}
	c.operations = append(c.operations, o)
	m.operations = append(m.operations, o)
	return o
}

// AddParameter adds a parameter to o.
func (m *Model) AddParameter(o *Operation, s ParameterSpec) *Parameter {
	dir := s.Direction
	if dir == "" {
		dir = In
	}
	p := &Parameter{
		element:   newElement(s.Spec, o),
		op:        o,
		typeName:  s.Type,
		direction: dir,
	}
	o.params = append(o.params, p)
	m.parameters = append(m.parameters, p)
	return p
}

// AddAssociation adds an association with its two ends to pkg.
func (m *Model) AddAssociation(pkg *Package, s AssociationSpec) *Association {
	a := &Association{element: newElement(s.Spec, pkg), pkg: pkg}
	a.source = newEnd(a, s.Source)
	a.target = newEnd(a, s.Target)
	pkg.associations = append(pkg.associations, a)
	m.associations = append(m.associations, a)
	return a
}

func newEnd(a *Association, s EndSpec) *AssociationEnd {
	agg := s.Aggregation
	if agg == "" {
		agg = AggregationNone
	}
	return &AssociationEnd{
		element:      newElement(s.Spec, a),
		assoc:        a,
		typeName:     s.Type,
		multiplicity: s.Multiplicity,
		navigable:    s.Navigable,
		aggregation:  agg,
	}
}

// AddDependency adds a dependency to pkg; its ends are bound by Resolve.
func (m *Model) AddDependency(pkg *Package, s DependencySpec) *Dependency {
	d := &Dependency{
		element:    newElement(s.Spec, pkg),
		pkg:        pkg,
		sourceName: s.Source,
		targetName: s.Target,
	}
	pkg.dependencies = append(pkg.dependencies, d)
	m.dependencies = append(m.dependencies, d)
	return d
}

// AddDiagram adds a diagram to a package or a class.
func (m *Model) AddDiagram(container Object, s DiagramSpec) *Diagram {
	d := &Diagram{
		element:      newElement(s.Spec, container),
		container:    container,
		diagramKind:  s.DiagramKind,
		elementCount: s.ElementCount,
	}
	if p, ok := container.(*Package); ok {
		p.diagrams = append(p.diagrams, d)
	}
	m.diagrams = append(m.diagrams, d)
	return d
}

// Resolve binds superclasses, attribute and end types, and dependency ends
// by name. Names that match nothing stay unbound.
func (m *Model) Resolve() {
	for _, c := range m.classes {
		c.superclasses = c.superclasses[:0]
		for _, n := range c.superNames {
			if s := m.FindClass(n); s != nil {
				c.superclasses = append(c.superclasses, s)
			}
		}
	}
	for _, a := range m.attributes {
		if a.typeName != "" {
			a.typ = m.FindClass(a.typeName)
		}
	}
	for _, as := range m.associations {
		for _, e := range as.Ends() {
			if e.typeName != "" {
				e.typ = m.FindClass(e.typeName)
			}
		}
	}
	for _, d := range m.dependencies {
		d.source = m.lookupEnd(d.sourceName)
		d.target = m.lookupEnd(d.targetName)
	}
}

func (m *Model) lookupEnd(name string) Object {
	if o := m.Lookup(name); o != nil {
		return o
	}
	if c := m.FindClass(name); c != nil {
		return c
	}
	return nil
}
