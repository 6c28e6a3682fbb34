package uml

// Class is a UML class, including enumerations, primitives and datatypes,
// which are told apart by stereotype.
type Class struct {
	element
	pkg          *Package
	abstract     bool
	superNames   []string
	superclasses []*Class
	attributes   []*Attribute
	operations   []*Operation
}

func (c *Class) Kind() Kind { return KindClass }

func (c *Class) Package() *Package { return c.pkg }
func (c *Class) Container() Object {
	if c.pkg == nil {
		return nil
	}
	return c.pkg
}

func (c *Class) IsAbstract() bool { return c.abstract }
func (c *Class) Superclasses() []*Class { return c.superclasses }
func (c *Class) Attributes() []*Attribute { return c.attributes }
func (c *Class) Operations() []*Operation { return c.operations }
func (c *Class) SuperclassNames() []string { return c.superNames }

func (c *Class) IsEnumeration() bool {
	return c.stereotype.Contains(StereoEnumeration, StereoEnum)
}

func (c *Class) IsPrimitive() bool { return c.stereotype.Contains(StereoPrimitive) }
func (c *Class) IsCompound() bool { return c.stereotype.Contains(StereoCompound) }

func (c *Class) IsDatatype() bool {
	return c.stereotype.Contains(StereoCIMDatatype, StereoDatatype)
}

// AllSuperclasses returns every ancestor once, nearest first. Inheritance
// cycles are tolerated.
func (c *Class) AllSuperclasses() []*Class {
	seen := map[*Class]bool{c: true}
	var out []*Class
	queue := append([]*Class(nil), c.superclasses...)
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		queue = append(queue, s.superclasses...)
	}
	return out
}

// InheritsFromItself reports whether c is among its own ancestors.
func (c *Class) InheritsFromItself() bool {
	seen := make(map[*Class]bool)
	queue := append([]*Class(nil), c.superclasses...)
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if s == c {
			return true
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		queue = append(queue, s.superclasses...)
	}
	return false
}

// InheritedAttributes returns the attributes of all ancestors.
func (c *Class) InheritedAttributes() []*Attribute {
	var out []*Attribute
	for _, s := range c.AllSuperclasses() {
		out = append(out, s.attributes...)
	}
	return out
}

func (c *Class) IsInformative() bool { return informative(c) }

func (c *Class) QualifiedName() string {
	return qualify(c.Container(), "::", c.name)
}

func (c *Class) String() string {
	if c.IsEnumeration() {
		return "enumeration " + c.name
	}
	return "class " + c.name
}
