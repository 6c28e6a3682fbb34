package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NamePattern describes the characters allowed in a name.
type NamePattern struct {
	label        string
	allowed      *regexp.Regexp
	leadingDigit bool
}

var (
	// Strict allows ASCII letters and digits, not starting with a digit.
	Strict = NamePattern{label: "letters and digits", allowed: regexp.MustCompile(`[A-Za-z0-9]`)}

	// StrictUnderscoreDash also allows '_' and '-'.
	StrictUnderscoreDash = NamePattern{label: "letters, digits, '_' and '-'", allowed: regexp.MustCompile(`[A-Za-z0-9_-]`)}

	// StrictSpaces also allows blanks, for diagram names.
	StrictSpaces = NamePattern{label: "letters, digits, '_', '-' and blanks", allowed: regexp.MustCompile(`[A-Za-z0-9_ -]`)}

	// Literal is for enumeration literals, which may start with a digit.
	Literal = NamePattern{label: "letters, digits and '_'", allowed: regexp.MustCompile(`[A-Za-z0-9_]`), leadingDigit: true}
)

func (p NamePattern) String() string { return p.label }

// InvalidCharacters returns a description of every character of name the
// pattern rejects, or "" when the name is fine. Empty names are fine: they
// are the concern of other rules.
func (p NamePattern) InvalidCharacters(name string) string {
	if name == "" {
		return ""
	}
	seen := make(map[rune]bool)
	var bad []string
	for i, r := range name {
		ok := p.allowed.MatchString(string(r))
		if ok && i == 0 && !p.leadingDigit && unicode.IsDigit(r) {
			bad = append(bad, fmt.Sprintf("leading digit '%c'", r))
			continue
		}
		if ok || seen[r] {
			continue
		}
		seen[r] = true
		bad = append(bad, describeRune(r))
	}
	return strings.Join(bad, ", ")
}

// describeRune names a rejected rune. Accented letters show their base
// letter, so "é" reads as "'é' (accented e)".
func describeRune(r rune) string {
	switch {
	case r == ' ':
		return "blank"
	case unicode.IsSpace(r):
		return fmt.Sprintf("whitespace %U", r)
	}
	decomposed := norm.NFD.String(string(r))
	if base := []rune(decomposed); len(base) > 1 && base[0] < unicode.MaxASCII {
		return fmt.Sprintf("'%c' (accented %c)", r, base[0])
	}
	return fmt.Sprintf("'%c'", r)
}

// sortedKeys returns map keys in a stable order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
