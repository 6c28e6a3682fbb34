package uml

// Operation is a class operation.
type Operation struct {
	element
	class      *Class
	params     []*Parameter
	returnType string
	static     bool
	abstract   bool
}

func (o *Operation) Kind() Kind { return KindOperation }

func (o *Operation) Class() *Class { return o.class }
func (o *Operation) Container() Object {
	if o.class == nil {
		return nil
	}
	return o.class
}

func (o *Operation) Parameters() []*Parameter { return o.params }
func (o *Operation) ReturnType() string { return o.returnType }
func (o *Operation) IsStatic() bool { return o.static }
func (o *Operation) IsAbstract() bool { return o.abstract }

func (o *Operation) IsInformative() bool { return informative(o) }

func (o *Operation) QualifiedName() string {
	return qualify(o.Container(), ".", o.name)
}

func (o *Operation) String() string {
	if o.class == nil {
		return "operation " + o.name + "()"
	}
	return "operation " + o.class.name + "." + o.name + "()"
}

// Parameter is one operation parameter.
type Parameter struct {
	element
	op        *Operation
	typeName  string
	direction Direction
}

func (p *Parameter) Kind() Kind { return KindParameter }

func (p *Parameter) Operation() *Operation { return p.op }
func (p *Parameter) TypeName() string { return p.typeName }
func (p *Parameter) Direction() Direction { return p.direction }

func (p *Parameter) IsInformative() bool { return informative(p) }

func (p *Parameter) QualifiedName() string {
	return qualify(p.Container(), ".", p.name)
}

func (p *Parameter) String() string {
	if p.op == nil {
		return "parameter " + p.name
	}
	owner := p.op.name
	if p.op.class != nil {
		owner = p.op.class.name + "." + owner
	}
	return "parameter " + owner + "(" + p.name + ")"
}

func (p *Parameter) Container() Object {
	if p.op == nil {
		return nil
	}
	return p.op
}
