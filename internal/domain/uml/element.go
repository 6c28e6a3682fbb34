package uml

// Object is the read-only view every model object offers to validation.
type Object interface {
	Kind() Kind
	ID() string
	Name() string
	Alias() string
	Doc() string
	Stereotype() Stereotype
	Tags() []Tag
	TagNames() []string
	Visibility() Visibility
	Nature() Nature
	Owner() OwningGroup

	// Container returns the enclosing object, or nil for top-level packages.
	Container() Object
	IsInformative() bool
	QualifiedName() string
	String() string
}

// Spec carries the attributes shared by all model objects when building a
// model. Zero Nature and Owner are inherited from the container.
type Spec struct {
	ID          string
	Name        string
	Alias       string
	Doc         string
	Stereotypes []string
	Tags        []Tag
	Visibility  Visibility
	Nature      Nature
	Owner       OwningGroup
}

type element struct {
	id         string
	name       string
	alias      string
	doc        string
	stereotype Stereotype
	tags       []Tag
	visibility Visibility
	nature     Nature
	owner      OwningGroup
}

func newElement(s Spec, container Object) element {
	e := element{
		id:         s.ID,
		name:       s.Name,
		alias:      s.Alias,
		doc:        s.Doc,
		stereotype: NewStereotype(s.Stereotypes...),
		tags:       append([]Tag(nil), s.Tags...),
		visibility: s.Visibility,
		nature:     s.Nature,
		owner:      s.Owner,
	}
	if e.visibility == "" {
		e.visibility = Public
	}
	if e.nature == "" {
		e.nature = CIM
		if container != nil {
			e.nature = container.Nature()
		}
	}
	if e.owner == "" {
		e.owner = DefaultOwner(e.nature)
		if container != nil && container.Nature() == e.nature {
			e.owner = container.Owner()
		}
	}
	return e
}

func (e *element) ID() string { return e.id }
func (e *element) Name() string { return e.name }
func (e *element) Alias() string { return e.alias }
func (e *element) Doc() string { return e.doc }
func (e *element) Stereotype() Stereotype { return e.stereotype }
func (e *element) Visibility() Visibility { return e.visibility }
func (e *element) Nature() Nature { return e.nature }
func (e *element) Owner() OwningGroup { return e.owner }

func (e *element) Tags() []Tag {
	return append([]Tag(nil), e.tags...)
}

func (e *element) TagNames() []string {
	names := make([]string, 0, len(e.tags))
	for _, t := range e.tags {
		names = append(names, t.Name)
	}
	return names
}

// informative walks o and its containers looking for the informative token.
func informative(o Object) bool {
	for c := o; c != nil; c = c.Container() {
		if c.Stereotype().Contains(StereoInformative) {
			return true
		}
	}
	return false
}

func qualify(container Object, sep, name string) string {
	if container == nil {
		return name
	}
	return container.QualifiedName() + sep + name
}
