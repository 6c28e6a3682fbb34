package uml

// Package is a UML package. Top-level packages have no parent.
type Package struct {
	element
	parent       *Package
	packages     []*Package
	classes      []*Class
	associations []*Association
	dependencies []*Dependency
	diagrams     []*Diagram
}

func (p *Package) Kind() Kind { return KindPackage }

func (p *Package) Parent() *Package { return p.parent }

func (p *Package) Container() Object {
	if p.parent == nil {
		return nil
	}
	return p.parent
}

func (p *Package) Packages() []*Package { return p.packages }
func (p *Package) Classes() []*Class { return p.classes }
func (p *Package) Associations() []*Association { return p.associations }
func (p *Package) Dependencies() []*Dependency { return p.dependencies }
func (p *Package) Diagrams() []*Diagram { return p.diagrams }

// Depth is 0 for top-level packages.
func (p *Package) Depth() int {
	d := 0
	for q := p.parent; q != nil; q = q.parent {
		d++
	}
	return d
}

// IsEmpty reports whether the package holds neither packages, classes nor
// diagrams.
func (p *Package) IsEmpty() bool {
	return len(p.packages) == 0 && len(p.classes) == 0 && len(p.diagrams) == 0
}

// Class returns the direct class with the given name, or nil.
func (p *Package) Class(name string) *Class {
	for _, c := range p.classes {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (p *Package) IsInformative() bool { return informative(p) }

func (p *Package) QualifiedName() string {
	return qualify(p.Container(), "::", p.name)
}

func (p *Package) String() string { return "package " + p.name }
