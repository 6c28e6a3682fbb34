package uml

// Dependency is a directed dependency between two packages or classes.
// Either end may be unresolved when the model refers to a missing object.
type Dependency struct {
	element
	pkg        *Package
	sourceName string
	targetName string
	source     Object
	target     Object
}

func (d *Dependency) Kind() Kind { return KindDependency }

func (d *Dependency) Package() *Package { return d.pkg }
func (d *Dependency) Source() Object { return d.source }
func (d *Dependency) Target() Object { return d.target }
func (d *Dependency) SourceName() string { return d.sourceName }
func (d *Dependency) TargetName() string { return d.targetName }

func (d *Dependency) IsInformative() bool { return informative(d) }

func (d *Dependency) label() string {
	src, tgt := d.sourceName, d.targetName
	if d.source != nil {
		src = d.source.Name()
	}
	if d.target != nil {
		tgt = d.target.Name()
	}
	return src + " -> " + tgt
}

func (d *Dependency) QualifiedName() string {
	return qualify(d.Container(), "::", d.label())
}

func (d *Dependency) String() string { return "dependency " + d.label() }

// Diagram is a diagram held by a package or a class.
type Diagram struct {
	element
	container    Object
	diagramKind  string
	elementCount int
}

func (d *Diagram) Kind() Kind { return KindDiagram }

func (d *Diagram) Container() Object { return d.container }
func (d *Diagram) DiagramKind() string { return d.diagramKind }
func (d *Diagram) ElementCount() int { return d.elementCount }

func (d *Diagram) IsInformative() bool { return informative(d) }

func (d *Diagram) QualifiedName() string {
	return qualify(d.Container(), "/", d.name)
}

func (d *Diagram) String() string {
	if d.container == nil {
		return "diagram " + d.name
	}
	return "diagram " + d.container.Name() + ":" + d.name
}

func (d *Dependency) Container() Object {
	if d.pkg == nil {
		return nil
	}
	return d.pkg
}
