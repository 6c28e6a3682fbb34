package uml

import "strings"

// Well-known stereotype tokens.
const (
	StereoInformative = "informative"
	StereoDeprecated  = "deprecated"
	StereoEnumeration = "enumeration"
	StereoEnum        = "enum"
	StereoPrimitive   = "primitive"
	StereoCIMDatatype = "cimdatatype"
	StereoDatatype    = "datatype"
	StereoCompound    = "compound"
)

// Stereotype is an ordered set of classification tokens. Comparisons ignore
// letter case; the spelling of the first occurrence is kept.
type Stereotype struct {
	tokens []string
}

// NewStereotype builds a stereotype from raw tokens, dropping blanks and
// duplicates.
func NewStereotype(tokens ...string) Stereotype {
	var s Stereotype
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" || s.Contains(t) {
			continue
		}
		s.tokens = append(s.tokens, t)
	}
	return s
}

// Tokens returns a copy of the tokens in declaration order.
func (s Stereotype) Tokens() []string {
	return append([]string(nil), s.tokens...)
}

func (s Stereotype) IsEmpty() bool { return len(s.tokens) == 0 }

// Contains reports whether any token equals one of names, ignoring case.
func (s Stereotype) Contains(names ...string) bool {
	for _, t := range s.tokens {
		for _, n := range names {
			if strings.EqualFold(t, n) {
				return true
			}
		}
	}
	return false
}

// TokensOutside returns the tokens not present in allowed.
func (s Stereotype) TokensOutside(allowed []string) []string {
	var out []string
	for _, t := range s.tokens {
		found := false
		for _, a := range allowed {
			if strings.EqualFold(t, a) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, t)
		}
	}
	return out
}

func (s Stereotype) String() string {
	return strings.Join(s.tokens, ", ")
}

// Tag is one tagged value.
type Tag struct {
	Name  string
	Value string
}
