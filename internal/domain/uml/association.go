package uml

// Association is a binary association between two classes.
type Association struct {
	element
	pkg    *Package
	source *AssociationEnd
	target *AssociationEnd
}

func (a *Association) Kind() Kind { return KindAssociation }

func (a *Association) Package() *Package { return a.pkg }
func (a *Association) Source() *AssociationEnd { return a.source }
func (a *Association) Target() *AssociationEnd { return a.target }

// Ends returns source and target.
func (a *Association) Ends() []*AssociationEnd {
	return []*AssociationEnd{a.source, a.target}
}

func (a *Association) IsInformative() bool { return informative(a) }

// Label is the association name, or "Source-Target" for unnamed ones.
func (a *Association) Label() string {
	if a.name != "" {
		return a.name
	}
	return a.source.TypeLabel() + "-" + a.target.TypeLabel()
}

func (a *Association) QualifiedName() string {
	return qualify(a.Container(), "::", a.Label())
}

func (a *Association) String() string { return "association " + a.Label() }

// AssociationEnd is one end of an association; its name is the role name.
type AssociationEnd struct {
	element
	assoc        *Association
	typeName     string
	typ          *Class
	multiplicity Multiplicity
	navigable    bool
	aggregation  Aggregation
}

func (e *AssociationEnd) Kind() Kind { return KindAssociationEnd }

func (e *AssociationEnd) Association() *Association { return e.assoc }

func (e *AssociationEnd) TypeName() string { return e.typeName }
func (e *AssociationEnd) Type() *Class { return e.typ }
func (e *AssociationEnd) Multiplicity() Multiplicity { return e.multiplicity }
func (e *AssociationEnd) IsNavigable() bool { return e.navigable }
func (e *AssociationEnd) Aggregation() Aggregation { return e.aggregation }

// TypeLabel is the resolved class name, falling back to the raw type name.
func (e *AssociationEnd) TypeLabel() string {
	if e.typ != nil {
		return e.typ.name
	}
	return e.typeName
}

func (e *AssociationEnd) IsInformative() bool { return informative(e) }

func (e *AssociationEnd) QualifiedName() string {
	return qualify(e.Container(), ".", e.name)
}

func (e *AssociationEnd) String() string {
	return "association end " + e.TypeLabel() + "." + e.name
}

func (a *Association) Container() Object {
	if a.pkg == nil {
		return nil
	}
	return a.pkg
}

func (e *AssociationEnd) Container() Object {
	if e.assoc == nil {
		return nil
	}
	return e.assoc
}
