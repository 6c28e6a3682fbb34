package uml

import (
	"strconv"
	"strings"
)

// Multiplicity bounds as written in the model; "*" is unbounded.
// Both bounds empty means unspecified.
type Multiplicity struct {
	Lower string
	Upper string
}

// ParseMultiplicity reads "0..1", "1", "0..*" or "*".
func ParseMultiplicity(s string) Multiplicity {
	s = strings.TrimSpace(s)
	if s == "" {
		return Multiplicity{}
	}
	if lo, hi, ok := strings.Cut(s, ".."); ok {
		return Multiplicity{Lower: strings.TrimSpace(lo), Upper: strings.TrimSpace(hi)}
	}
	if s == "*" {
		return Multiplicity{Lower: "0", Upper: "*"}
	}
	return Multiplicity{Lower: s, Upper: s}
}

func (m Multiplicity) IsUnspecified() bool { return m.Lower == "" && m.Upper == "" }

// IsValid reports whether the bounds are well formed and ordered.
func (m Multiplicity) IsValid() bool {
	if m.IsUnspecified() {
		return true
	}
	lo, err := strconv.Atoi(m.Lower)
	if err != nil || lo < 0 {
		return false
	}
	if m.Upper == "*" {
		return true
	}
	hi, err := strconv.Atoi(m.Upper)
	if err != nil || hi < 1 {
		return false
	}
	return lo <= hi
}

func (m Multiplicity) String() string {
	if m.IsUnspecified() {
		return ""
	}
	return "[" + m.Lower + ".." + m.Upper + "]"
}

// Attribute is a class attribute or an enumeration literal.
type Attribute struct {
	element
	class        *Class
	typeName     string
	typ          *Class
	multiplicity Multiplicity
	static       bool
	constant     bool
	initValue    string
}

func (a *Attribute) Kind() Kind { return KindAttribute }

func (a *Attribute) Class() *Class { return a.class }
func (a *Attribute) Container() Object {
	if a.class == nil {
		return nil
	}
	return a.class
}

func (a *Attribute) TypeName() string { return a.typeName }
func (a *Attribute) Type() *Class { return a.typ }
func (a *Attribute) Multiplicity() Multiplicity { return a.multiplicity }
func (a *Attribute) IsStatic() bool { return a.static }
func (a *Attribute) IsConst() bool { return a.constant }
func (a *Attribute) InitValue() string { return a.initValue }

// IsLiteral reports whether the attribute is a literal of an enumeration.
func (a *Attribute) IsLiteral() bool {
	return a.class != nil && a.class.IsEnumeration()
}

func (a *Attribute) IsInformative() bool { return informative(a) }

func (a *Attribute) QualifiedName() string {
	return qualify(a.Container(), ".", a.name)
}

func (a *Attribute) String() string {
	kind := "attribute "
	if a.IsLiteral() {
		kind = "literal "
	}
	if a.class == nil {
		return kind + a.name
	}
	return kind + a.class.name + "." + a.name
}
